package get_nearby_lots

import "github.com/m04kA/SMC-ParkingService/internal/service/nearby"

// NearbyLotResponse HTTP response model парковки с расстоянием и ETA
type NearbyLotResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	PricePerHour   float64 `json:"pricePerHour"`
	TotalSpots     int     `json:"totalSpots"`
	AvailableSpots int     `json:"availableSpots"`
	DistanceKm     float64 `json:"distanceKm"`
	ETAMinutes     int     `json:"etaMinutes"`
}

// FromService конвертирует результат поиска в HTTP response
func FromService(lot *nearby.Lot) *NearbyLotResponse {
	return &NearbyLotResponse{
		ID:             lot.ID,
		Name:           lot.Name,
		Address:        lot.Address,
		Latitude:       lot.Latitude,
		Longitude:      lot.Longitude,
		PricePerHour:   lot.PricePerHour,
		TotalSpots:     lot.TotalSpots,
		AvailableSpots: lot.AvailableCount(),
		DistanceKm:     lot.DistanceKm,
		ETAMinutes:     lot.ETAMinutes,
	}
}
