package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Manager владеет сессиями бронирования и реализует state machine:
// NoSelection -> LotSelected -> SpotSelected -> TimeChosen -> VehicleEntered
// -> Committed. Все операции синхронны и атомарны с точки зрения вызывающего.
// Неуспешный переход не меняет состояние сессии.
type Manager struct {
	mu           sync.Mutex
	sessions     map[string]*Session
	catalog      CatalogReader
	timeProvider TimeProvider
	log          Logger
}

// NewManager создает новый менеджер сессий
func NewManager(catalog CatalogReader, log Logger) *Manager {
	return &Manager{
		sessions:     map[string]*Session{},
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		log:          log,
	}
}

// Create начинает новую сессию бронирования в состоянии NoSelection
func (m *Manager) Create(userID string) Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		State:     StateNoSelection,
		CreatedAt: m.timeProvider.Now(),
	}
	m.sessions[s.ID] = s

	m.log.Info("Create: session id=%s for user=%s", s.ID, userID)
	return s.snapshot()
}

// WithTimeProvider подменяет источник времени (для тестирования)
func (m *Manager) WithTimeProvider(tp TimeProvider) *Manager {
	m.timeProvider = tp
	return m
}

// Get возвращает снимок сессии по ID
func (m *Manager) Get(sessionID string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.find(sessionID)
	if err != nil {
		return Session{}, err
	}
	return s.snapshot(), nil
}

// SelectLot выбирает парковку. Допустим из любого незавершённого состояния;
// при смене парковки ранее выбранное место сбрасывается.
func (m *Manager) SelectLot(sessionID, lotID string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.mutable(sessionID)
	if err != nil {
		return Session{}, err
	}

	lot, err := m.catalog.Lot(lotID)
	if err != nil {
		return Session{}, err
	}

	lotChanged := s.Lot == nil || s.Lot.ID != lotID
	s.Lot = &lot
	if lotChanged {
		s.Spot = nil
		s.State = StateLotSelected
	}

	return s.snapshot(), nil
}

// SelectSpot выбирает место. Валиден только для доступного места; повторный
// выбор того же места снимает выбор (SpotSelected <-> LotSelected).
// Выбор недоступного места отклоняется и не меняет состояние.
func (m *Manager) SelectSpot(sessionID, spotID string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.mutable(sessionID)
	if err != nil {
		return Session{}, err
	}
	if s.Lot == nil {
		return Session{}, ErrNoLotSelected
	}

	// Повторный выбор того же места - toggle off
	if s.Spot != nil && s.Spot.ID == spotID {
		s.Spot = nil
		s.State = StateLotSelected
		return s.snapshot(), nil
	}

	// Читаем актуальное состояние места из каталога
	spot, err := m.catalog.Spot(s.Lot.ID, spotID)
	if err != nil {
		return Session{}, err
	}
	if !spot.Available {
		return Session{}, ErrSpotUnavailable
	}

	s.Spot = &spot
	s.State = StateSpotSelected

	return s.snapshot(), nil
}

// ChooseTime задаёт время начала и длительность брони в целых часах.
// Длительность ограничена [1, 24], начало не может быть в прошлом.
// При ошибке состояние сессии не продвигается.
func (m *Manager) ChooseTime(sessionID string, start time.Time, durationHours int) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.mutable(sessionID)
	if err != nil {
		return Session{}, err
	}
	if s.Spot == nil {
		return Session{}, ErrNoSpotSelected
	}

	if durationHours < domain.MinReservationHours || durationHours > domain.MaxReservationHours {
		return Session{}, ErrInvalidDuration
	}
	if start.Before(m.timeProvider.Now()) {
		return Session{}, ErrPastReservationTime
	}

	s.StartTime = start
	s.DurationHours = durationHours
	if !s.State.reached(StateTimeChosen) {
		s.State = StateTimeChosen
	}

	return s.snapshot(), nil
}

// EnterVehicle сохраняет данные транспорта. Регистрационный номер обязан
// соответствовать фиксированному шаблону, номер нормализуется к верхнему
// регистру.
func (m *Manager) EnterVehicle(sessionID string, vehicle domain.VehicleDetails) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.mutable(sessionID)
	if err != nil {
		return Session{}, err
	}
	if !s.State.reached(StateTimeChosen) {
		return Session{}, ErrNoSpotSelected
	}

	if !domain.IsValidVehicleType(vehicle.Type) {
		return Session{}, ErrInvalidVehicleType
	}
	if !domain.IsValidVehicleNumber(vehicle.Number) {
		return Session{}, ErrInvalidVehicleNumber
	}

	s.Vehicle = &domain.VehicleDetails{
		Type:   vehicle.Type,
		Number: domain.NormalizeVehicleNumber(vehicle.Number),
	}
	if !s.State.reached(StateVehicleEntered) {
		s.State = StateVehicleEntered
	}

	return s.snapshot(), nil
}

// BeginCommit помечает сессию как коммитящуюся. Требует выбранных парковки
// и места; отклоняет повторный коммит, пока первый не завершился.
func (m *Manager) BeginCommit(sessionID string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.find(sessionID)
	if err != nil {
		return Session{}, err
	}
	if s.State == StateCommitted {
		return Session{}, ErrSessionCommitted
	}
	if s.committing {
		return Session{}, ErrCommitInProgress
	}
	if !s.HasSelection() {
		return Session{}, ErrNoActiveSelection
	}

	s.committing = true
	return s.snapshot(), nil
}

// FinishCommit завершает коммит с указанным исходом
func (m *Manager) FinishCommit(sessionID string, outcome CommitOutcome) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.find(sessionID)
	if err != nil {
		return
	}

	s.committing = false
	switch outcome {
	case CommitSucceeded:
		s.State = StateCommitted
	case CommitConflict:
		// Место заняли между выбором и коммитом: показываем его занятым
		// и возвращаемся к выбору места
		if s.Spot != nil {
			s.Spot.Available = false
		}
		s.State = StateSpotSelected
	case CommitFailed:
		// Выбор сохраняется, пользователь может повторить коммит сразу
	}
}

// Drop удаляет сессию (после завершения или по таймауту владельца)
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

// find ищет сессию; вызывается под мьютексом
func (m *Manager) find(sessionID string) (*Session, error) {
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// mutable ищет сессию, допускающую переходы выбора; вызывается под мьютексом
func (m *Manager) mutable(sessionID string) (*Session, error) {
	s, err := m.find(sessionID)
	if err != nil {
		return nil, err
	}
	if s.State == StateCommitted {
		return nil, ErrSessionCommitted
	}
	if s.committing {
		return nil, ErrCommitInProgress
	}
	return s, nil
}
