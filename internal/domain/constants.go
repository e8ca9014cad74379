package domain

// Reservation duration limits (whole hours)
const (
	MinReservationHours = 1
	MaxReservationHours = 24
)

// NearbySearch defaults
const (
	DefaultNearbyLimit = 5
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)
