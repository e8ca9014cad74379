package list_lots

import "github.com/m04kA/SMC-ParkingService/internal/domain"

// SpotResponse HTTP response model места
type SpotResponse struct {
	ID         string `json:"id"`
	SpotNumber int    `json:"spotNumber"`
	Available  bool   `json:"available"`
}

// LotResponse HTTP response model парковки
type LotResponse struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Address        string         `json:"address"`
	Latitude       float64        `json:"latitude"`
	Longitude      float64        `json:"longitude"`
	PricePerHour   float64        `json:"pricePerHour"`
	TotalSpots     int            `json:"totalSpots"`
	AvailableSpots int            `json:"availableSpots"`
	Spots          []SpotResponse `json:"spots"`
}

// FromDomain конвертирует доменную парковку в HTTP response
func FromDomain(lot *domain.ParkingLot) *LotResponse {
	response := &LotResponse{
		ID:             lot.ID,
		Name:           lot.Name,
		Address:        lot.Address,
		Latitude:       lot.Latitude,
		Longitude:      lot.Longitude,
		PricePerHour:   lot.PricePerHour,
		TotalSpots:     lot.TotalSpots,
		AvailableSpots: lot.AvailableCount(),
		Spots:          make([]SpotResponse, 0, len(lot.Spots)),
	}
	for _, spot := range lot.Spots {
		response.Spots = append(response.Spots, SpotResponse{
			ID:         spot.ID,
			SpotNumber: spot.SpotNumber,
			Available:  spot.Available,
		})
	}
	return response
}
