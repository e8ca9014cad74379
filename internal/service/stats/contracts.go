package stats

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/storage/archive"
)

// LotProvider интерфейс источника парковок
type LotProvider interface {
	Lots() []domain.ParkingLot
}

// ReservationSource интерфейс источника всех резерваций
type ReservationSource interface {
	All() []domain.Reservation
}

// RevenueArchive интерфейс архива для исторической выручки по парковкам
type RevenueArchive interface {
	RevenueByLot(ctx context.Context) ([]archive.LotRevenue, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
