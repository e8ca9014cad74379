package list_lots

import "github.com/m04kA/SMC-ParkingService/internal/domain"

type LotCatalog interface {
	Lots() []domain.ParkingLot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
