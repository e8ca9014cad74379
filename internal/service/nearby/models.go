package nearby

import "github.com/m04kA/SMC-ParkingService/internal/domain"

// Lot результат поиска: парковка с эфемерной проекцией расстояния и ETA.
// Расстояние не хранится на сущности парковки - оно живёт только в
// результате поиска.
type Lot struct {
	domain.ParkingLot
	DistanceKm float64
	ETAMinutes int
}
