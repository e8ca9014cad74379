package nearby

import (
	"sort"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/geokit"
)

// Service поиск ближайших парковок к заданной координате
type Service struct {
	lots LotProvider
	log  Logger
}

// NewService создает новый экземпляр сервиса поиска
func NewService(lots LotProvider, log Logger) *Service {
	return &Service{lots: lots, log: log}
}

// FindNearby возвращает не более limit парковок, отсортированных по
// возрастанию расстояния до position. При равных расстояниях сохраняется
// исходный порядок каталога. Пустой каталог - пустой результат.
func (s *Service) FindNearby(position domain.Coordinate, limit int) []Lot {
	if limit <= 0 {
		limit = domain.DefaultNearbyLimit
	}

	lots := s.lots.Lots()
	result := make([]Lot, 0, len(lots))
	for _, lot := range lots {
		distance := geokit.DistanceKm(position.Latitude, position.Longitude, lot.Latitude, lot.Longitude)
		result = append(result, Lot{
			ParkingLot: lot,
			DistanceKm: distance,
			ETAMinutes: geokit.ETAMinutes(distance),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DistanceKm < result[j].DistanceKm
	})

	if len(result) > limit {
		result = result[:limit]
	}

	s.log.Info("FindNearby: position=(%.4f, %.4f), returning %d of %d lots",
		position.Latitude, position.Longitude, len(result), len(lots))

	return result
}
