package get_nearby_lots

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/nearby"
)

type NearbyService interface {
	FindNearby(position domain.Coordinate, limit int) []nearby.Lot
}

// PositionProvider отдаёт позицию устройства с fallback на дефолтную
// координату; никогда не возвращает ошибку
type PositionProvider interface {
	CurrentPositionWithFallback(ctx context.Context) domain.Coordinate
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
