package nearby

import "github.com/m04kA/SMC-ParkingService/internal/domain"

// LotProvider интерфейс источника парковок
type LotProvider interface {
	Lots() []domain.ParkingLot
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
