package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Service append-only журнал резерваций.
// Записи ссылаются на lot/spot, но не владеют ими; записи никогда не
// изменяются и не удаляются. После каждого добавления полный снапшот
// журнала пишется в blob-хранилище best-effort: ошибка записи логируется
// и не откатывает добавление.
type Service struct {
	mu           sync.RWMutex
	saveMu       sync.Mutex // порядок снапшотов совпадает с порядком добавлений
	store        SnapshotStore
	log          Logger
	reservations []domain.Reservation
	byID         map[string]struct{}
}

// NewService создает новый экземпляр журнала резерваций
func NewService(store SnapshotStore, log Logger) *Service {
	return &Service{
		store:        store,
		log:          log,
		reservations: []domain.Reservation{},
		byID:         map[string]struct{}{},
	}
}

// Load восстанавливает журнал из снапшота при старте процесса.
// Ошибка чтения хранилища деградирует до пустого состояния.
func (s *Service) Load(ctx context.Context) error {
	reservations, err := s.store.LoadReservations(ctx)
	if err != nil {
		s.log.Warn("Load: snapshot read failed, starting with empty ledger: %v", err)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reservations = make([]domain.Reservation, 0, len(reservations))
	s.byID = make(map[string]struct{}, len(reservations))
	for _, r := range reservations {
		if _, exists := s.byID[r.ID]; exists {
			s.log.Warn("Load: duplicate reservation id=%s in snapshot, skipping", r.ID)
			continue
		}
		s.reservations = append(s.reservations, r)
		s.byID[r.ID] = struct{}{}
	}

	s.log.Info("Load: restored %d reservations from snapshot", len(s.reservations))
	return nil
}

// Append добавляет резервацию в журнал и сохраняет снапшот
func (s *Service) Append(ctx context.Context, reservation domain.Reservation) error {
	// saveMu удерживается до конца записи снапшота: два параллельных
	// добавления не могут перезаписать свежий снапшот более старым
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()

	if _, exists := s.byID[reservation.ID]; exists {
		s.mu.Unlock()
		return ErrDuplicateID
	}

	s.reservations = append(s.reservations, reservation)
	s.byID[reservation.ID] = struct{}{}
	snapshot := make([]domain.Reservation, len(s.reservations))
	copy(snapshot, s.reservations)
	s.mu.Unlock()

	// Запись снапшота best-effort: ошибка не откатывает добавление
	if err := s.store.SaveReservations(ctx, snapshot); err != nil {
		s.log.Warn("Append: failed to persist snapshot after id=%s: %v", reservation.ID, err)
	}

	return nil
}

// ListByUser возвращает резервации пользователя в порядке добавления
func (s *Service) ListByUser(userID string) []domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Reservation, 0)
	for _, r := range s.reservations {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	return result
}

// All возвращает все резервации в порядке добавления
func (s *Service) All() []domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Reservation, len(s.reservations))
	copy(result, s.reservations)
	return result
}

// Count возвращает количество записей журнала
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reservations)
}

// TotalRevenue возвращает суммарную стоимость всех резерваций
func (s *Service) TotalRevenue() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, r := range s.reservations {
		total += r.Price
	}
	return total
}

// Classify классифицирует резервацию как активную или истёкшую
func (s *Service) Classify(reservation domain.Reservation, now time.Time) domain.ReservationStatus {
	return reservation.Status(now)
}
