package session

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SpotView JSON-представление места
type SpotView struct {
	ID         string `json:"id"`
	SpotNumber int    `json:"spotNumber"`
	Available  bool   `json:"available"`
}

// LotView JSON-представление парковки внутри сессии
type LotView struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Address        string     `json:"address"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	PricePerHour   float64    `json:"pricePerHour"`
	TotalSpots     int        `json:"totalSpots"`
	AvailableSpots int        `json:"availableSpots"`
	Spots          []SpotView `json:"spots"`
}

// View JSON-представление сессии бронирования для API
type View struct {
	ID            string                 `json:"id"`
	UserID        string                 `json:"userId"`
	State         State                  `json:"state"`
	Lot           *LotView               `json:"lot,omitempty"`
	Spot          *SpotView              `json:"spot,omitempty"`
	StartTime     *time.Time             `json:"startTime,omitempty"`
	DurationHours int                    `json:"durationHours,omitempty"`
	Vehicle       *domain.VehicleDetails `json:"vehicleDetails,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// NewLotView строит представление парковки
func NewLotView(lot *domain.ParkingLot) *LotView {
	view := &LotView{
		ID:             lot.ID,
		Name:           lot.Name,
		Address:        lot.Address,
		Latitude:       lot.Latitude,
		Longitude:      lot.Longitude,
		PricePerHour:   lot.PricePerHour,
		TotalSpots:     lot.TotalSpots,
		AvailableSpots: lot.AvailableCount(),
		Spots:          make([]SpotView, 0, len(lot.Spots)),
	}
	for _, spot := range lot.Spots {
		view.Spots = append(view.Spots, SpotView{
			ID:         spot.ID,
			SpotNumber: spot.SpotNumber,
			Available:  spot.Available,
		})
	}
	return view
}

// NewView строит представление сессии
func NewView(s Session) View {
	view := View{
		ID:            s.ID,
		UserID:        s.UserID,
		State:         s.State,
		DurationHours: s.DurationHours,
		Vehicle:       s.Vehicle,
		CreatedAt:     s.CreatedAt,
	}
	if s.Lot != nil {
		view.Lot = NewLotView(s.Lot)
	}
	if s.Spot != nil {
		view.Spot = &SpotView{
			ID:         s.Spot.ID,
			SpotNumber: s.Spot.SpotNumber,
			Available:  s.Spot.Available,
		}
	}
	if !s.StartTime.IsZero() {
		start := s.StartTime
		view.StartTime = &start
	}
	return view
}
