package commit_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/catalog"
	"github.com/m04kA/SMC-ParkingService/internal/service/session"
)

// UseCase use case коммита резервации: финализирует сессию бронирования.
// Коммит - единая логическая операция: переключение доступности места и
// добавление записи в журнал либо происходят вместе, либо не происходят
// вовсе. До завершения симулируемой задержки оплаты никаких эффектов нет.
type UseCase struct {
	sessions        SessionManager
	reserver        SpotReserver
	ledger          Ledger
	archive         Archive // best-effort, может быть nil
	notifier        Notifier
	timeProvider    TimeProvider
	processingDelay time.Duration
	log             Logger
}

// NewUseCase создает новый экземпляр use case коммита
func NewUseCase(
	sessions SessionManager,
	reserver SpotReserver,
	ledger Ledger,
	archive Archive,
	notifier Notifier,
	processingDelay time.Duration,
	log Logger,
) *UseCase {
	return &UseCase{
		sessions:        sessions,
		reserver:        reserver,
		ledger:          ledger,
		archive:         archive,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		processingDelay: processingDelay,
		log:             log,
	}
}

// Execute выполняет коммит резервации.
// Доступность места перепроверяется на коммите (optimistic check): если
// место заняли между выбором и коммитом, возвращается ErrSpotAlreadyReserved,
// сессия откатывается к выбору места.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.log.Info("CommitReservation: session=%s, user=%s, payment=%s",
		req.SessionID, req.UserID, req.PaymentMethod)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.log.Warn("CommitReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Захватываем сессию: второй коммит той же сессии не стартует,
	// пока не завершился первый
	sess, err := uc.sessions.BeginCommit(req.SessionID)
	if err != nil {
		return nil, uc.mapSessionError(req.SessionID, err)
	}

	// 3. Симулируем обработку платежа. До истечения задержки никаких
	// эффектов нет: отмена контекста здесь ничего не откатывает.
	if err := uc.simulatePayment(ctx); err != nil {
		uc.sessions.FinishCommit(req.SessionID, session.CommitFailed)
		return nil, err
	}

	// 4. Перепроверяем доступность и занимаем место атомарно
	if err := uc.reserver.Reserve(sess.Lot.ID, sess.Spot.ID, req.UserID); err != nil {
		if errors.Is(err, catalog.ErrSpotTaken) {
			uc.log.Warn("CommitReservation: spot %s/%s taken between selection and commit",
				sess.Lot.ID, sess.Spot.ID)
			uc.sessions.FinishCommit(req.SessionID, session.CommitConflict)
			uc.notifier.Error(fmt.Sprintf("Spot #%d is already reserved", sess.Spot.SpotNumber))
			return nil, ErrSpotAlreadyReserved
		}
		uc.log.Error("CommitReservation: failed to reserve spot %s/%s: %v",
			sess.Lot.ID, sess.Spot.ID, err)
		uc.sessions.FinishCommit(req.SessionID, session.CommitFailed)
		return nil, fmt.Errorf("%w: failed to reserve spot: %v", ErrInternal, err)
	}

	// 5. Собираем резервацию с денормализованными полями для отображения
	reservation := uc.buildReservation(&sess, req)

	// 6. Добавляем в журнал; при неудаче откатываем занятие места,
	// чтобы не осталось полузакоммиченного состояния
	if err := uc.ledger.Append(ctx, reservation); err != nil {
		uc.log.Error("CommitReservation: ledger append failed, releasing spot %s/%s: %v",
			sess.Lot.ID, sess.Spot.ID, err)
		uc.reserver.Release(sess.Lot.ID, sess.Spot.ID)
		uc.sessions.FinishCommit(req.SessionID, session.CommitFailed)
		return nil, fmt.Errorf("%w: failed to append reservation: %v", ErrInternal, err)
	}

	// 7. Архивируем best-effort: ошибка архива не влияет на коммит
	if uc.archive != nil {
		if err := uc.archive.Insert(ctx, &reservation); err != nil {
			uc.log.Warn("CommitReservation: archive insert failed for id=%s: %v", reservation.ID, err)
		}
	}

	uc.sessions.FinishCommit(req.SessionID, session.CommitSucceeded)
	uc.notifier.Success("Parking spot reserved successfully")

	uc.log.Info("CommitReservation: reservation id=%s created for user=%s, lot=%s, spot=%d, price=%.2f",
		reservation.ID, req.UserID, reservation.LotID, reservation.SpotNumber, reservation.Price)

	return fromDomain(&reservation), nil
}

// simulatePayment ждёт завершения симулируемой обработки платежа
func (uc *UseCase) simulatePayment(ctx context.Context) error {
	if uc.processingDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(uc.processingDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: payment simulation interrupted: %v", ErrInternal, ctx.Err())
	case <-timer.C:
		return nil
	}
}

// buildReservation собирает доменную резервацию из состояния сессии
func (uc *UseCase) buildReservation(sess *session.Session, req *Request) domain.Reservation {
	now := uc.timeProvider.Now()

	// Если время не выбрано, бронь начинается сейчас на минимальный срок
	start := sess.StartTime
	if start.IsZero() {
		start = now
	}
	hours := sess.DurationHours
	if hours == 0 {
		hours = domain.MinReservationHours
	}

	return domain.Reservation{
		ID:         fmt.Sprintf("res_%s", uuid.NewString()),
		LotID:      sess.Lot.ID,
		LotName:    sess.Lot.Name,
		SpotID:     sess.Spot.ID,
		SpotNumber: sess.Spot.SpotNumber,
		UserID:     req.UserID,
		StartTime:  start,
		EndTime:    start.Add(time.Duration(hours) * time.Hour),
		Price:      sess.Lot.PricePerHour * float64(hours),
		Payment:    req.PaymentMethod,
		Timestamp:  now,
		Vehicle:    sess.Vehicle,
	}
}

// mapSessionError транслирует ошибки менеджера сессий в ошибки usecase
func (uc *UseCase) mapSessionError(sessionID string, err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		uc.log.Warn("CommitReservation: session %s not found", sessionID)
		return ErrSessionNotFound
	case errors.Is(err, session.ErrNoActiveSelection):
		uc.log.Warn("CommitReservation: session %s has no active selection", sessionID)
		uc.notifier.Error("Please select a parking spot")
		return ErrNoActiveSelection
	case errors.Is(err, session.ErrCommitInProgress):
		uc.log.Warn("CommitReservation: session %s commit already in progress", sessionID)
		return ErrCommitInProgress
	case errors.Is(err, session.ErrSessionCommitted):
		uc.log.Warn("CommitReservation: session %s already committed", sessionID)
		return ErrSessionCommitted
	default:
		uc.log.Error("CommitReservation: begin commit failed for session %s: %v", sessionID, err)
		return fmt.Errorf("%w: begin commit: %v", ErrInternal, err)
	}
}
