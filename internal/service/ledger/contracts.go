package ledger

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SnapshotStore интерфейс blob-хранилища снапшота резерваций
type SnapshotStore interface {
	LoadReservations(ctx context.Context) ([]domain.Reservation, error)
	SaveReservations(ctx context.Context, reservations []domain.Reservation) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
