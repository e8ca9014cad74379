package get_user_reservations

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ReservationResponse HTTP response model резервации со статусом
type ReservationResponse struct {
	domain.Reservation
	Status domain.ReservationStatus `json:"status"`
}

// UserReservationsResponse HTTP response model: резервации пользователя,
// разделённые на активные и истёкшие
type UserReservationsResponse struct {
	Active  []ReservationResponse `json:"active"`
	Expired []ReservationResponse `json:"expired"`
}

// BuildResponse классифицирует резервации относительно момента now
func BuildResponse(reservations []domain.Reservation, now time.Time) *UserReservationsResponse {
	response := &UserReservationsResponse{
		Active:  []ReservationResponse{},
		Expired: []ReservationResponse{},
	}
	for _, r := range reservations {
		item := ReservationResponse{Reservation: r, Status: r.Status(now)}
		if item.Status == domain.ReservationActive {
			response.Active = append(response.Active, item)
		} else {
			response.Expired = append(response.Expired, item)
		}
	}
	return response
}
