package commit_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/session"
)

// SessionManager интерфейс менеджера сессий бронирования
type SessionManager interface {
	BeginCommit(sessionID string) (session.Session, error)
	FinishCommit(sessionID string, outcome session.CommitOutcome)
}

// SpotReserver интерфейс каталога для занятия и освобождения мест
type SpotReserver interface {
	Reserve(lotID, spotID, holderID string) error
	Release(lotID, spotID string)
}

// Ledger интерфейс журнала резерваций
type Ledger interface {
	Append(ctx context.Context, reservation domain.Reservation) error
}

// Archive интерфейс best-effort архива резерваций
type Archive interface {
	Insert(ctx context.Context, reservation *domain.Reservation) error
}

// Notifier интерфейс fire-and-forget уведомлений пользователю
type Notifier interface {
	Success(message string)
	Error(message string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
