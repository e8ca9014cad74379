package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeStore in-memory реализация SnapshotStore для тестов
type fakeStore struct {
	snapshot []domain.Reservation
	loadErr  error
	saveErr  error
	saves    int
}

func (f *fakeStore) LoadReservations(_ context.Context) ([]domain.Reservation, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.snapshot, nil
}

func (f *fakeStore) SaveReservations(_ context.Context, reservations []domain.Reservation) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.snapshot = reservations
	return nil
}

func reservation(id, userID string, start time.Time, hours int) domain.Reservation {
	return domain.Reservation{
		ID:         id,
		LotID:      "lot_mg_road",
		LotName:    "MG Road Lot",
		SpotID:     "spot_3",
		SpotNumber: 3,
		UserID:     userID,
		StartTime:  start,
		EndTime:    start.Add(time.Duration(hours) * time.Hour),
		Price:      20 * float64(hours),
		Payment:    domain.PaymentMethodUPI,
		Timestamp:  start,
	}
}

func TestAppend_PersistsSnapshotAndKeepsOrder(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nopLogger{})
	now := time.Now()

	require.NoError(t, svc.Append(context.Background(), reservation("res_1", "u1", now, 2)))
	require.NoError(t, svc.Append(context.Background(), reservation("res_2", "u2", now, 1)))
	require.NoError(t, svc.Append(context.Background(), reservation("res_3", "u1", now, 3)))

	assert.Equal(t, 3, svc.Count())
	assert.Equal(t, 3, store.saves)
	require.Len(t, store.snapshot, 3)

	byUser := svc.ListByUser("u1")
	require.Len(t, byUser, 2)
	assert.Equal(t, "res_1", byUser[0].ID)
	assert.Equal(t, "res_3", byUser[1].ID)

	assert.InDelta(t, 120.0, svc.TotalRevenue(), 0.001)
}

// recordingStore потокобезопасный SnapshotStore, запоминающий размер
// каждого полученного снапшота в порядке получения
type recordingStore struct {
	mu    sync.Mutex
	sizes []int
}

func (r *recordingStore) LoadReservations(_ context.Context) ([]domain.Reservation, error) {
	return nil, nil
}

func (r *recordingStore) SaveReservations(_ context.Context, reservations []domain.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sizes = append(r.sizes, len(reservations))
	return nil
}

// Параллельные добавления не могут перезаписать свежий снапшот более
// старым: размеры снапшотов строго возрастают в порядке записи.
func TestAppend_ConcurrentSnapshotsNeverGoBackwards(t *testing.T) {
	store := &recordingStore{}
	svc := NewService(store, nopLogger{})
	now := time.Now()

	const appends = 16
	var wg sync.WaitGroup
	for i := 0; i < appends; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("res_%d", i)
			assert.NoError(t, svc.Append(context.Background(), reservation(id, "u1", now, 1)))
		}(i)
	}
	wg.Wait()

	require.Len(t, store.sizes, appends)
	for i, size := range store.sizes {
		assert.Equal(t, i+1, size, "снапшот записан вне порядка добавления")
	}
	assert.Equal(t, appends, svc.Count())
}

func TestAppend_DuplicateID(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nopLogger{})
	now := time.Now()

	require.NoError(t, svc.Append(context.Background(), reservation("res_1", "u1", now, 2)))
	err := svc.Append(context.Background(), reservation("res_1", "u1", now, 2))
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 1, svc.Count())
}

func TestAppend_SaveFailureIsSwallowed(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("redis down")}
	svc := NewService(store, nopLogger{})

	err := svc.Append(context.Background(), reservation("res_1", "u1", time.Now(), 2))
	require.NoError(t, err, "ошибка записи снапшота не должна откатывать добавление")
	assert.Equal(t, 1, svc.Count())
}

func TestLoad_RestoresSnapshot(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	store := &fakeStore{snapshot: []domain.Reservation{
		reservation("res_1", "u1", now, 2),
		reservation("res_2", "u2", now, 1),
	}}
	svc := NewService(store, nopLogger{})

	require.NoError(t, svc.Load(context.Background()))
	assert.Equal(t, 2, svc.Count())

	restored := svc.ListByUser("u1")
	require.Len(t, restored, 1)
	assert.Equal(t, now, restored[0].StartTime)
	assert.Equal(t, now.Add(2*time.Hour), restored[0].EndTime)
}

func TestLoad_ReadFailureDegradesToEmpty(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("redis down")}
	svc := NewService(store, nopLogger{})

	require.NoError(t, svc.Load(context.Background()))
	assert.Equal(t, 0, svc.Count())
}

func TestClassify(t *testing.T) {
	svc := NewService(&fakeStore{}, nopLogger{})
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	res := reservation("res_1", "u1", now.Add(-1*time.Hour), 2)

	assert.Equal(t, domain.ReservationActive, svc.Classify(res, now))
	assert.Equal(t, domain.ReservationActive, svc.Classify(res, res.EndTime), "граница endTime ещё активна")
	assert.Equal(t, domain.ReservationExpired, svc.Classify(res, res.EndTime.Add(time.Minute)))
}
