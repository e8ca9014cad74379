package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/catalog"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fixedTime провайдер фиксированного времени для тестов
type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

func testCatalog() *catalog.Catalog {
	spots := []domain.ParkingSpot{
		{ID: "spot_1", SpotNumber: 1, Available: true},
		{ID: "spot_2", SpotNumber: 2, Available: false, ReservedByID: ptr.Ptr("u9")},
		{ID: "spot_3", SpotNumber: 3, Available: true},
	}
	return catalog.New([]domain.ParkingLot{
		{ID: "lot_mg_road", Name: "MG Road Lot", PricePerHour: 20, TotalSpots: 3, Spots: spots},
		{ID: "lot_brigade_road", Name: "Brigade Road Parking Complex", PricePerHour: 25, TotalSpots: 3, Spots: spots},
	})
}

func newTestManager(t *testing.T, now time.Time) *Manager {
	t.Helper()
	return NewManager(testCatalog(), nopLogger{}).WithTimeProvider(&fixedTime{now: now})
}

func TestCreate_StartsWithNoSelection(t *testing.T) {
	m := newTestManager(t, time.Now())

	s := m.Create("u1")
	assert.Equal(t, StateNoSelection, s.State)
	assert.Equal(t, "u1", s.UserID)
	assert.NotEmpty(t, s.ID)
}

func TestSelectLot_ChangingLotClearsSpot(t *testing.T) {
	m := newTestManager(t, time.Now())
	s := m.Create("u1")

	_, err := m.SelectLot(s.ID, "lot_mg_road")
	require.NoError(t, err)
	_, err = m.SelectSpot(s.ID, "spot_1")
	require.NoError(t, err)

	// та же парковка - место сохраняется
	got, err := m.SelectLot(s.ID, "lot_mg_road")
	require.NoError(t, err)
	require.NotNil(t, got.Spot)
	assert.Equal(t, StateSpotSelected, got.State)

	// другая парковка - место сбрасывается
	got, err = m.SelectLot(s.ID, "lot_brigade_road")
	require.NoError(t, err)
	assert.Nil(t, got.Spot)
	assert.Equal(t, StateLotSelected, got.State)
}

func TestSelectSpot_UnavailableSpotRejectedStateUnchanged(t *testing.T) {
	m := newTestManager(t, time.Now())
	s := m.Create("u1")
	_, err := m.SelectLot(s.ID, "lot_mg_road")
	require.NoError(t, err)

	_, err = m.SelectSpot(s.ID, "spot_2")
	assert.ErrorIs(t, err, ErrSpotUnavailable)

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, StateLotSelected, got.State)
	assert.Nil(t, got.Spot)
}

func TestSelectSpot_ToggleOff(t *testing.T) {
	m := newTestManager(t, time.Now())
	s := m.Create("u1")
	_, err := m.SelectLot(s.ID, "lot_mg_road")
	require.NoError(t, err)

	got, err := m.SelectSpot(s.ID, "spot_1")
	require.NoError(t, err)
	assert.Equal(t, StateSpotSelected, got.State)

	// повторный выбор того же места снимает выбор
	got, err = m.SelectSpot(s.ID, "spot_1")
	require.NoError(t, err)
	assert.Equal(t, StateLotSelected, got.State)
	assert.Nil(t, got.Spot)
}

func TestSelectSpot_WithoutLot(t *testing.T) {
	m := newTestManager(t, time.Now())
	s := m.Create("u1")

	_, err := m.SelectSpot(s.ID, "spot_1")
	assert.ErrorIs(t, err, ErrNoLotSelected)
}

func TestChooseTime_PastStartRejectedStateUnchanged(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, now)
	s := m.Create("u1")
	_, err := m.SelectLot(s.ID, "lot_mg_road")
	require.NoError(t, err)
	_, err = m.SelectSpot(s.ID, "spot_1")
	require.NoError(t, err)

	_, err = m.ChooseTime(s.ID, now.Add(-1*time.Hour), 2)
	assert.ErrorIs(t, err, ErrPastReservationTime)

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, StateSpotSelected, got.State, "состояние не продвинулось")
}

// Валидация "не в прошлом" идёт по подменённым часам, а не по реальным:
// начало в прошлом относительно реального времени принимается, если оно в
// будущем относительно часов менеджера.
func TestChooseTime_ValidatesAgainstInjectedClock(t *testing.T) {
	now := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, now)
	s := m.Create("u1")
	_, err := m.SelectLot(s.ID, "lot_mg_road")
	require.NoError(t, err)
	_, err = m.SelectSpot(s.ID, "spot_1")
	require.NoError(t, err)

	got, err := m.ChooseTime(s.ID, now.Add(time.Hour), 2)
	require.NoError(t, err)
	assert.Equal(t, StateTimeChosen, got.State)
}

func TestChooseTime_DurationBounds(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, now)
	s := m.Create("u1")
	_, err := m.SelectLot(s.ID, "lot_mg_road")
	require.NoError(t, err)
	_, err = m.SelectSpot(s.ID, "spot_1")
	require.NoError(t, err)

	_, err = m.ChooseTime(s.ID, now.Add(time.Hour), 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)
	_, err = m.ChooseTime(s.ID, now.Add(time.Hour), 25)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	got, err := m.ChooseTime(s.ID, now.Add(time.Hour), 24)
	require.NoError(t, err)
	assert.Equal(t, StateTimeChosen, got.State)
	assert.Equal(t, 24, got.DurationHours)
}

func TestEnterVehicle_InvalidNumber(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, now)
	s := m.Create("u1")
	_, err := m.SelectLot(s.ID, "lot_mg_road")
	require.NoError(t, err)
	_, err = m.SelectSpot(s.ID, "spot_1")
	require.NoError(t, err)
	_, err = m.ChooseTime(s.ID, now.Add(time.Hour), 2)
	require.NoError(t, err)

	_, err = m.EnterVehicle(s.ID, domain.VehicleDetails{Type: domain.VehicleTypeFourWheeler, Number: "xyz123"})
	assert.ErrorIs(t, err, ErrInvalidVehicleNumber)

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, StateTimeChosen, got.State)
	assert.Nil(t, got.Vehicle)
}

func TestEnterVehicle_NormalizesNumber(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, now)
	s := m.Create("u1")
	_, err := m.SelectLot(s.ID, "lot_mg_road")
	require.NoError(t, err)
	_, err = m.SelectSpot(s.ID, "spot_1")
	require.NoError(t, err)
	_, err = m.ChooseTime(s.ID, now.Add(time.Hour), 2)
	require.NoError(t, err)

	got, err := m.EnterVehicle(s.ID, domain.VehicleDetails{Type: domain.VehicleTypeFourWheeler, Number: " ka01ab1234 "})
	require.NoError(t, err)
	assert.Equal(t, StateVehicleEntered, got.State)
	require.NotNil(t, got.Vehicle)
	assert.Equal(t, "KA01AB1234", got.Vehicle.Number)
}

func TestBeginCommit_RequiresSelection(t *testing.T) {
	m := newTestManager(t, time.Now())
	s := m.Create("u1")

	_, err := m.BeginCommit(s.ID)
	assert.ErrorIs(t, err, ErrNoActiveSelection)

	_, err = m.SelectLot(s.ID, "lot_mg_road")
	require.NoError(t, err)
	_, err = m.BeginCommit(s.ID)
	assert.ErrorIs(t, err, ErrNoActiveSelection)
}

func TestBeginCommit_ReentrantCommitRejected(t *testing.T) {
	m := newTestManager(t, time.Now())
	s := m.Create("u1")
	_, err := m.SelectLot(s.ID, "lot_mg_road")
	require.NoError(t, err)
	_, err = m.SelectSpot(s.ID, "spot_1")
	require.NoError(t, err)

	_, err = m.BeginCommit(s.ID)
	require.NoError(t, err)

	_, err = m.BeginCommit(s.ID)
	assert.ErrorIs(t, err, ErrCommitInProgress)

	// после завершения коммит снова возможен
	m.FinishCommit(s.ID, CommitFailed)
	_, err = m.BeginCommit(s.ID)
	assert.NoError(t, err)
}

func TestFinishCommit_ConflictReturnsToSpotSelectedWithSpotTaken(t *testing.T) {
	m := newTestManager(t, time.Now())
	s := m.Create("u1")
	_, err := m.SelectLot(s.ID, "lot_mg_road")
	require.NoError(t, err)
	_, err = m.SelectSpot(s.ID, "spot_1")
	require.NoError(t, err)
	_, err = m.BeginCommit(s.ID)
	require.NoError(t, err)

	m.FinishCommit(s.ID, CommitConflict)

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, StateSpotSelected, got.State)
	require.NotNil(t, got.Spot)
	assert.False(t, got.Spot.Available, "конфликтное место отображается занятым")
}

func TestCommittedSessionIsTerminal(t *testing.T) {
	m := newTestManager(t, time.Now())
	s := m.Create("u1")
	_, err := m.SelectLot(s.ID, "lot_mg_road")
	require.NoError(t, err)
	_, err = m.SelectSpot(s.ID, "spot_1")
	require.NoError(t, err)
	_, err = m.BeginCommit(s.ID)
	require.NoError(t, err)
	m.FinishCommit(s.ID, CommitSucceeded)

	_, err = m.SelectLot(s.ID, "lot_brigade_road")
	assert.ErrorIs(t, err, ErrSessionCommitted)
	_, err = m.BeginCommit(s.ID)
	assert.ErrorIs(t, err, ErrSessionCommitted)
}

func TestGet_UnknownSession(t *testing.T) {
	m := newTestManager(t, time.Now())

	_, err := m.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
