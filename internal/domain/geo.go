package domain

// Coordinate represents a geographic point
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// DefaultCoordinate is the fallback position used when the device position
// is unavailable (Bengaluru city center).
var DefaultCoordinate = Coordinate{
	Latitude:  12.9716,
	Longitude: 77.5946,
}
