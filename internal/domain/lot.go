package domain

// ParkingSpot represents an individually reservable slot within a lot
type ParkingSpot struct {
	ID           string
	SpotNumber   int // unique within the lot, 1..TotalSpots
	Available    bool
	ReservedByID *string
}

// ParkingLot represents a physical parking facility owning its spots
type ParkingLot struct {
	ID           string
	Name         string
	Address      string
	Latitude     float64
	Longitude    float64
	PricePerHour float64
	TotalSpots   int
	Spots        []ParkingSpot
}

// Coordinate returns the geographic position of the lot
func (l *ParkingLot) Coordinate() Coordinate {
	return Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
}

// AvailableCount returns the number of spots currently available
func (l *ParkingLot) AvailableCount() int {
	count := 0
	for _, s := range l.Spots {
		if s.Available {
			count++
		}
	}
	return count
}

// OccupiedCount returns the number of spots currently held
func (l *ParkingLot) OccupiedCount() int {
	return len(l.Spots) - l.AvailableCount()
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (l *ParkingLot) OccupancyRate() float64 {
	if len(l.Spots) == 0 {
		return 0
	}
	return float64(l.OccupiedCount()) / float64(len(l.Spots)) * 100
}

// Spot returns the spot with the given ID, if it belongs to the lot
func (l *ParkingLot) Spot(spotID string) (ParkingSpot, bool) {
	for _, s := range l.Spots {
		if s.ID == spotID {
			return s, true
		}
	}
	return ParkingSpot{}, false
}

// Clone returns a deep copy of the lot with its own spots slice
func (l *ParkingLot) Clone() ParkingLot {
	clone := *l
	clone.Spots = make([]ParkingSpot, len(l.Spots))
	copy(clone.Spots, l.Spots)
	return clone
}
