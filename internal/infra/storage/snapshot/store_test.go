package snapshot

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const (
	testSessionKey      = "parkItRightUser"
	testReservationsKey = "parkingReservations"
)

func testReservations() []domain.Reservation {
	start := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	return []domain.Reservation{
		{
			ID:         "res_1",
			LotID:      "lot_mg_road",
			LotName:    "MG Road Lot",
			SpotID:     "spot_3",
			SpotNumber: 3,
			UserID:     "u1",
			StartTime:  start,
			EndTime:    start.Add(2 * time.Hour),
			Price:      40,
			Payment:    domain.PaymentMethodUPI,
			Timestamp:  start.Add(-5 * time.Minute),
			Vehicle:    &domain.VehicleDetails{Type: domain.VehicleTypeFourWheeler, Number: "KA01AB1234"},
		},
		{
			ID:         "res_2",
			LotID:      "lot_brigade_road",
			LotName:    "Brigade Road Parking Complex",
			SpotID:     "spot_7",
			SpotNumber: 7,
			UserID:     "u2",
			StartTime:  start.Add(24 * time.Hour),
			EndTime:    start.Add(25 * time.Hour),
			Price:      25,
			Payment:    domain.PaymentMethodCard,
			Timestamp:  start,
		},
	}
}

func TestSaveLoadReservations_RoundTrip(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewStore(client, testSessionKey, testReservationsKey, nopLogger{})

	reservations := testReservations()
	data, err := json.Marshal(reservations)
	require.NoError(t, err)

	mock.ExpectSet(testReservationsKey, data, 0).SetVal("OK")
	require.NoError(t, store.SaveReservations(context.Background(), reservations))

	mock.ExpectGet(testReservationsKey).SetVal(string(data))
	loaded, err := store.LoadReservations(context.Background())
	require.NoError(t, err)

	// поля восстанавливаются полностью, включая даты и данные автомобиля
	require.Len(t, loaded, len(reservations))
	assert.Equal(t, reservations, loaded)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadReservations_MissingKeyIsEmptyState(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewStore(client, testSessionKey, testReservationsKey, nopLogger{})

	mock.ExpectGet(testReservationsKey).RedisNil()

	loaded, err := store.LoadReservations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadReservations_CorruptSnapshotIsDiscarded(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewStore(client, testSessionKey, testReservationsKey, nopLogger{})

	mock.ExpectGet(testReservationsKey).SetVal("{not valid json")
	mock.ExpectDel(testReservationsKey).SetVal(1)

	loaded, err := store.LoadReservations(context.Background())
	require.NoError(t, err, "повреждённый снапшот не должен быть фатальным")
	assert.Empty(t, loaded)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadReservations_ReadFailure(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewStore(client, testSessionKey, testReservationsKey, nopLogger{})

	mock.ExpectGet(testReservationsKey).SetErr(assert.AnError)

	_, err := store.LoadReservations(context.Background())
	assert.ErrorIs(t, err, ErrRead)
}

func TestUserSession_RoundTrip(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewStore(client, testSessionKey, testReservationsKey, nopLogger{})

	session := domain.UserSession{UserID: "u1", Name: "Test User", Email: "user@example.com"}
	data, err := json.Marshal(session)
	require.NoError(t, err)

	mock.ExpectSet(testSessionKey, data, 0).SetVal("OK")
	require.NoError(t, store.SaveUserSession(context.Background(), session))

	mock.ExpectGet(testSessionKey).SetVal(string(data))
	loaded, err := store.LoadUserSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session, *loaded)

	mock.ExpectDel(testSessionKey).SetVal(1)
	require.NoError(t, store.ClearUserSession(context.Background()))

	mock.ExpectGet(testSessionKey).RedisNil()
	_, err = store.LoadUserSession(context.Background())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
