package catalog

import (
	"fmt"
	"math/rand"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// lotSeed статическое описание парковки без сгенерированных мест
type lotSeed struct {
	id           string
	name         string
	address      string
	latitude     float64
	longitude    float64
	pricePerHour float64
	totalSpots   int
}

// Seed-данные: центральные, пригородные и загородные районы Бангалора
var lotSeeds = []lotSeed{
	// Central
	{"lot_mg_road", "MG Road Lot", "MG Road, Bengaluru", 12.9758, 77.6045, 20, 10},
	{"lot_brigade_road", "Brigade Road Parking Complex", "Brigade Road, Bengaluru", 12.9719, 77.6074, 25, 40},
	{"lot_cubbon_park", "Cubbon Park Parking", "Kasturba Road, Bengaluru", 12.9763, 77.5929, 15, 60},
	{"lot_majestic", "Majestic Multilevel Parking", "Kempegowda Bus Station, Bengaluru", 12.9774, 77.5708, 10, 120},
	// Suburban
	{"lot_koramangala", "Koramangala Forum Parking", "Forum Mall, Koramangala, Bengaluru", 12.9345, 77.6111, 30, 80},
	{"lot_indiranagar", "Indiranagar 100ft Road Parking", "100 Feet Road, Indiranagar, Bengaluru", 12.9784, 77.6408, 25, 35},
	{"lot_jayanagar", "Jayanagar Shopping Complex Parking", "Jayanagar 4th Block, Bengaluru", 12.9254, 77.5831, 15, 50},
	{"lot_whitefield", "Whitefield Phoenix Parking", "Phoenix Marketcity, Whitefield, Bengaluru", 12.9972, 77.6962, 20, 150},
	// Rural
	{"lot_devanahalli", "Devanahalli Town Parking", "Devanahalli, Bengaluru Rural", 13.2437, 77.7172, 5, 25},
	{"lot_nelamangala", "Nelamangala Market Parking", "Nelamangala, Bengaluru Rural", 13.0997, 77.3906, 5, 20},
}

// GenerateSpots генерирует места 1..totalSpots для парковки.
// Примерно 60% мест помечаются доступными (как в исходных seed-данных).
func GenerateSpots(totalSpots int, rnd *rand.Rand) []domain.ParkingSpot {
	spots := make([]domain.ParkingSpot, 0, totalSpots)
	for i := 1; i <= totalSpots; i++ {
		spots = append(spots, domain.ParkingSpot{
			ID:         fmt.Sprintf("spot_%d", i),
			SpotNumber: i,
			Available:  rnd.Float64() > 0.4,
		})
	}
	return spots
}

// SeedLots возвращает стартовый набор парковок с сгенерированными местами
func SeedLots(rnd *rand.Rand) []domain.ParkingLot {
	lots := make([]domain.ParkingLot, 0, len(lotSeeds))
	for _, s := range lotSeeds {
		lots = append(lots, domain.ParkingLot{
			ID:           s.id,
			Name:         s.name,
			Address:      s.address,
			Latitude:     s.latitude,
			Longitude:    s.longitude,
			PricePerHour: s.pricePerHour,
			TotalSpots:   s.totalSpots,
			Spots:        GenerateSpots(s.totalSpots, rnd),
		})
	}
	return lots
}
