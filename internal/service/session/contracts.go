package session

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// CatalogReader интерфейс каталога для чтения актуального состояния
// парковок и мест
type CatalogReader interface {
	Lot(lotID string) (domain.ParkingLot, error)
	Spot(lotID, spotID string) (domain.ParkingSpot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
