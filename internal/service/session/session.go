package session

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// State состояние сессии бронирования
type State string

const (
	StateNoSelection    State = "no_selection"
	StateLotSelected    State = "lot_selected"
	StateSpotSelected   State = "spot_selected"
	StateTimeChosen     State = "time_chosen"
	StateVehicleEntered State = "vehicle_entered"
	StateCommitted      State = "committed" // терминальное состояние
)

// stateOrder позиция состояния в жизненном цикле сессии
var stateOrder = map[State]int{
	StateNoSelection:    0,
	StateLotSelected:    1,
	StateSpotSelected:   2,
	StateTimeChosen:     3,
	StateVehicleEntered: 4,
	StateCommitted:      5,
}

// reached проверяет, что сессия дошла как минимум до указанного состояния
func (s State) reached(target State) bool {
	return stateOrder[s] >= stateOrder[target]
}

// CommitOutcome результат завершения коммита сессии
type CommitOutcome int

const (
	// CommitSucceeded коммит успешен, сессия завершена
	CommitSucceeded CommitOutcome = iota
	// CommitFailed коммит не удался по внутренней причине, выбор сохраняется
	CommitFailed
	// CommitConflict место было занято другой сессией между выбором и
	// коммитом; сессия возвращается к SpotSelected, конфликтное место
	// отображается занятым
	CommitConflict
)

// Session сессия бронирования одного пользователя. Выбранные парковка и
// место - transient-состояние сессии, оно не персистится. Все мутации
// проходят через Manager.
type Session struct {
	ID            string
	UserID        string
	State         State
	Lot           *domain.ParkingLot
	Spot          *domain.ParkingSpot
	StartTime     time.Time
	DurationHours int
	Vehicle       *domain.VehicleDetails
	CreatedAt     time.Time

	committing bool
}

// snapshot возвращает глубокую копию сессии для выдачи наружу
func (s *Session) snapshot() Session {
	copied := *s
	if s.Lot != nil {
		lot := s.Lot.Clone()
		copied.Lot = &lot
	}
	if s.Spot != nil {
		spot := *s.Spot
		copied.Spot = &spot
	}
	if s.Vehicle != nil {
		vehicle := *s.Vehicle
		copied.Vehicle = &vehicle
	}
	return copied
}

// HasSelection проверяет, что в сессии выбраны и парковка, и место
func (s *Session) HasSelection() bool {
	return s.Lot != nil && s.Spot != nil
}
