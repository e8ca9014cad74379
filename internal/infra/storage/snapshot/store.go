package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Store key/value blob-хранилище состояния поверх redis.
// Используются два независимых ключа: сессия пользователя и снапшот
// резерваций. Снапшот пишется и читается целиком, без инкрементальных
// обновлений.
type Store struct {
	client          *redis.Client
	sessionKey      string
	reservationsKey string
	log             Logger
}

// NewStore создает хранилище снапшотов поверх redis-клиента
func NewStore(client *redis.Client, sessionKey, reservationsKey string, log Logger) *Store {
	return &Store{
		client:          client,
		sessionKey:      sessionKey,
		reservationsKey: reservationsKey,
		log:             log,
	}
}

// SaveReservations сериализует и записывает полный снапшот резерваций
func (s *Store) SaveReservations(ctx context.Context, reservations []domain.Reservation) error {
	data, err := json.Marshal(reservations)
	if err != nil {
		return fmt.Errorf("%w: SaveReservations: %v", ErrEncode, err)
	}

	if err := s.client.Set(ctx, s.reservationsKey, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: SaveReservations: %v", ErrWrite, err)
	}
	return nil
}

// LoadReservations читает снапшот резерваций целиком.
// Отсутствующий ключ - пустое состояние. Повреждённый снапшот отбрасывается:
// ключ удаляется, возвращается пустое состояние (а не ошибка).
func (s *Store) LoadReservations(ctx context.Context) ([]domain.Reservation, error) {
	data, err := s.client.Get(ctx, s.reservationsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.Reservation{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: LoadReservations: %v", ErrRead, err)
	}

	var reservations []domain.Reservation
	if err := json.Unmarshal(data, &reservations); err != nil {
		s.log.Warn("LoadReservations: corrupt snapshot under key %q, discarding: %v", s.reservationsKey, err)
		if delErr := s.client.Del(ctx, s.reservationsKey).Err(); delErr != nil {
			s.log.Warn("LoadReservations: failed to delete corrupt snapshot: %v", delErr)
		}
		return []domain.Reservation{}, nil
	}

	return reservations, nil
}

// SaveUserSession записывает сессию пользователя под её собственным ключом
func (s *Store) SaveUserSession(ctx context.Context, session domain.UserSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: SaveUserSession: %v", ErrEncode, err)
	}

	if err := s.client.Set(ctx, s.sessionKey, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: SaveUserSession: %v", ErrWrite, err)
	}
	return nil
}

// LoadUserSession читает сохранённую сессию пользователя
func (s *Store) LoadUserSession(ctx context.Context) (*domain.UserSession, error) {
	data, err := s.client.Get(ctx, s.sessionKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: LoadUserSession: %v", ErrRead, err)
	}

	var session domain.UserSession
	if err := json.Unmarshal(data, &session); err != nil {
		s.log.Warn("LoadUserSession: corrupt session under key %q, discarding: %v", s.sessionKey, err)
		if delErr := s.client.Del(ctx, s.sessionKey).Err(); delErr != nil {
			s.log.Warn("LoadUserSession: failed to delete corrupt session: %v", delErr)
		}
		return nil, ErrSessionNotFound
	}

	return &session, nil
}

// ClearUserSession удаляет сохранённую сессию пользователя
func (s *Store) ClearUserSession(ctx context.Context) error {
	if err := s.client.Del(ctx, s.sessionKey).Err(); err != nil {
		return fmt.Errorf("%w: ClearUserSession: %v", ErrWrite, err)
	}
	return nil
}
