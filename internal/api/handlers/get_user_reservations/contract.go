package get_user_reservations

import "github.com/m04kA/SMC-ParkingService/internal/domain"

type ReservationLedger interface {
	ListByUser(userID string) []domain.Reservation
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
