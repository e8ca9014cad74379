package get_lot

import "github.com/m04kA/SMC-ParkingService/internal/domain"

type LotCatalog interface {
	Lot(lotID string) (domain.ParkingLot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
