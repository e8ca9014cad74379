package domain

import "time"

// PaymentMethod is an enumerated payment tag. It is never validated against a
// real processor; payment processing is simulated.
type PaymentMethod string

const (
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodNetBanking PaymentMethod = "netbanking"
	PaymentMethodWallet     PaymentMethod = "wallet"
)

// IsValidPaymentMethod returns true if the value is one of the known payment tags
func IsValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCard, PaymentMethodUPI, PaymentMethodNetBanking, PaymentMethodWallet:
		return true
	}
	return false
}

// ReservationStatus classifies a reservation relative to a point in time
type ReservationStatus string

const (
	ReservationActive  ReservationStatus = "active"
	ReservationExpired ReservationStatus = "expired"
)

// Reservation represents a committed parking reservation. Reservations are
// created only through a successful commit, never mutated and never deleted:
// past reservations remain as history.
type Reservation struct {
	ID         string          `json:"id"`
	LotID      string          `json:"parkingLotId"`
	LotName    string          `json:"parkingLotName"` // denormalized for display
	SpotID     string          `json:"spotId"`
	SpotNumber int             `json:"spotNumber"` // denormalized for display
	UserID     string          `json:"userId"`
	StartTime  time.Time       `json:"startTime"`
	EndTime    time.Time       `json:"endTime"`
	Price      float64         `json:"price"`
	Payment    PaymentMethod   `json:"paymentMethod"`
	Timestamp  time.Time       `json:"timestamp"`
	Vehicle    *VehicleDetails `json:"vehicleDetails,omitempty"`
}

// Status classifies the reservation as active or expired at the given instant
func (r *Reservation) Status(now time.Time) ReservationStatus {
	if now.After(r.EndTime) {
		return ReservationExpired
	}
	return ReservationActive
}

// DurationHours returns the reservation length in whole hours
func (r *Reservation) DurationHours() int {
	return int(r.EndTime.Sub(r.StartTime).Hours())
}
