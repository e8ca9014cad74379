package commit_reservation

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	commitReservation "github.com/m04kA/SMC-ParkingService/internal/usecase/commit_reservation"
)

// CommitReservationRequest HTTP request model
type CommitReservationRequest struct {
	PaymentMethod string `json:"paymentMethod"` // "card" | "upi" | "netbanking" | "wallet"
}

// ReservationResponse HTTP response model созданной резервации
type ReservationResponse struct {
	ID             string                 `json:"id"`
	ParkingLotID   string                 `json:"parkingLotId"`
	ParkingLotName string                 `json:"parkingLotName"`
	SpotID         string                 `json:"spotId"`
	SpotNumber     int                    `json:"spotNumber"`
	UserID         string                 `json:"userId"`
	StartTime      time.Time              `json:"startTime"`
	EndTime        time.Time              `json:"endTime"`
	Price          float64                `json:"price"`
	PaymentMethod  string                 `json:"paymentMethod"`
	Timestamp      time.Time              `json:"timestamp"`
	VehicleDetails *domain.VehicleDetails `json:"vehicleDetails,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *commitReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:             resp.ID,
		ParkingLotID:   resp.LotID,
		ParkingLotName: resp.LotName,
		SpotID:         resp.SpotID,
		SpotNumber:     resp.SpotNumber,
		UserID:         resp.UserID,
		StartTime:      resp.StartTime,
		EndTime:        resp.EndTime,
		Price:          resp.Price,
		PaymentMethod:  string(resp.Payment),
		Timestamp:      resp.Timestamp,
		VehicleDetails: resp.Vehicle,
	}
}
