package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/storage/archive"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeLots struct{ lots []domain.ParkingLot }

func (f *fakeLots) Lots() []domain.ParkingLot { return f.lots }

type fakeReservations struct{ all []domain.Reservation }

func (f *fakeReservations) All() []domain.Reservation { return f.all }

type fakeArchive struct {
	revenue []archive.LotRevenue
	err     error
}

func (f *fakeArchive) RevenueByLot(_ context.Context) ([]archive.LotRevenue, error) {
	return f.revenue, f.err
}

func spots(available, occupied int) []domain.ParkingSpot {
	var result []domain.ParkingSpot
	for i := 0; i < available; i++ {
		result = append(result, domain.ParkingSpot{ID: "a", Available: true})
	}
	for i := 0; i < occupied; i++ {
		result = append(result, domain.ParkingSpot{ID: "o", Available: false})
	}
	return result
}

func TestSummary(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	lots := &fakeLots{lots: []domain.ParkingLot{
		{ID: "lot_a", Name: "Lot A", Spots: spots(6, 4)},
		{ID: "lot_b", Name: "Lot B", Spots: spots(5, 5)},
	}}
	reservations := &fakeReservations{all: []domain.Reservation{
		{ID: "r1", Price: 40, StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour)},
		{ID: "r2", Price: 25, StartTime: now.Add(-3 * time.Hour), EndTime: now.Add(-2 * time.Hour)},
	}}
	arch := &fakeArchive{revenue: []archive.LotRevenue{
		{LotID: "lot_a", LotName: "Lot A", Reservations: 2, Revenue: 65},
	}}

	svc := NewService(lots, reservations, arch, nopLogger{})
	summary := svc.Summary(context.Background(), now)

	assert.Equal(t, 2, summary.TotalReservations)
	assert.Equal(t, 2, summary.TotalPayments)
	assert.Equal(t, 1, summary.ActiveReservations)
	assert.InDelta(t, 65.0, summary.TotalRevenue, 0.001)
	assert.Equal(t, 45, summary.OccupancyRate) // 9 из 20 мест занято

	require.Len(t, summary.Lots, 2)
	assert.Equal(t, 40, summary.Lots[0].OccupancyRate)
	assert.Equal(t, 6, summary.Lots[0].AvailableSpots)
	assert.Equal(t, 50, summary.Lots[1].OccupancyRate)

	require.Len(t, summary.RevenueByLot, 1)
	assert.Equal(t, "lot_a", summary.RevenueByLot[0].LotID)
}

func TestSummary_EmptyState(t *testing.T) {
	svc := NewService(&fakeLots{}, &fakeReservations{}, nil, nopLogger{})
	summary := svc.Summary(context.Background(), time.Now())

	assert.Equal(t, 0, summary.TotalReservations)
	assert.Equal(t, 0, summary.OccupancyRate)
	assert.Empty(t, summary.Lots)
	assert.Nil(t, summary.RevenueByLot)
}

func TestSummary_ArchiveFailureIsSwallowed(t *testing.T) {
	svc := NewService(&fakeLots{}, &fakeReservations{}, &fakeArchive{err: errors.New("db down")}, nopLogger{})
	summary := svc.Summary(context.Background(), time.Now())

	assert.Nil(t, summary.RevenueByLot)
}
