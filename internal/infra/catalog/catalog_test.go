package catalog

import (
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

func testLots() []domain.ParkingLot {
	return []domain.ParkingLot{
		{
			ID: "lot_a", Name: "Lot A", PricePerHour: 20, TotalSpots: 3,
			Spots: []domain.ParkingSpot{
				{ID: "spot_1", SpotNumber: 1, Available: true},
				{ID: "spot_2", SpotNumber: 2, Available: false, ReservedByID: ptr.Ptr("u9")},
				{ID: "spot_3", SpotNumber: 3, Available: true},
			},
		},
		{
			ID: "lot_b", Name: "Lot B", PricePerHour: 10, TotalSpots: 2,
			Spots: []domain.ParkingSpot{
				{ID: "spot_1", SpotNumber: 1, Available: true},
				{ID: "spot_2", SpotNumber: 2, Available: true},
			},
		},
	}
}

func TestSetSpotAvailability_FlipsOnlyTargetSpot(t *testing.T) {
	c := New(testLots())

	before := c.Lots()
	c.SetSpotAvailability("lot_a", "spot_1", false, ptr.Ptr("u1"))
	after := c.Lots()

	spot, err := c.Spot("lot_a", "spot_1")
	require.NoError(t, err)
	assert.False(t, spot.Available)
	require.NotNil(t, spot.ReservedByID)
	assert.Equal(t, "u1", *spot.ReservedByID)

	// остальные места и парковки не изменились
	assert.Equal(t, before[0].Spots[1], after[0].Spots[1])
	assert.Equal(t, before[0].Spots[2], after[0].Spots[2])
	assert.Equal(t, before[1], after[1])
}

func TestSetSpotAvailability_UnknownPairIsSilentNoop(t *testing.T) {
	c := New(testLots())
	before := c.Lots()

	c.SetSpotAvailability("lot_a", "spot_999", false, nil)
	c.SetSpotAvailability("lot_x", "spot_1", false, nil)

	assert.Equal(t, before, c.Lots())
}

func TestLots_SnapshotIsIsolatedFromMutation(t *testing.T) {
	c := New(testLots())

	snapshot := c.Lots()
	c.SetSpotAvailability("lot_a", "spot_1", false, ptr.Ptr("u1"))

	assert.True(t, snapshot[0].Spots[0].Available, "ранее выданный снимок не должен наблюдать мутацию")
}

func TestReserve_TakesAvailableSpot(t *testing.T) {
	c := New(testLots())

	err := c.Reserve("lot_a", "spot_3", "u1")
	require.NoError(t, err)

	spot, err := c.Spot("lot_a", "spot_3")
	require.NoError(t, err)
	assert.False(t, spot.Available)
	require.NotNil(t, spot.ReservedByID)
	assert.Equal(t, "u1", *spot.ReservedByID)
}

func TestReserve_TakenSpot(t *testing.T) {
	c := New(testLots())

	err := c.Reserve("lot_a", "spot_2", "u1")
	assert.ErrorIs(t, err, ErrSpotTaken)
}

func TestReserve_UnknownLotAndSpot(t *testing.T) {
	c := New(testLots())

	assert.ErrorIs(t, c.Reserve("lot_x", "spot_1", "u1"), ErrLotNotFound)
	assert.ErrorIs(t, c.Reserve("lot_a", "spot_999", "u1"), ErrSpotNotFound)
}

// Optimistic check-and-set: из двух одновременных попыток занять одно место
// ровно одна успешна, и availableCount уменьшается ровно на 1.
func TestReserve_ConcurrentCommitsExactlyOneWins(t *testing.T) {
	c := New(testLots())

	lot, err := c.Lot("lot_a")
	require.NoError(t, err)
	availableBefore := lot.AvailableCount()

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Reserve("lot_a", "spot_1", "user")
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrSpotTaken):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)

	lot, err = c.Lot("lot_a")
	require.NoError(t, err)
	assert.Equal(t, availableBefore-1, lot.AvailableCount())
}

func TestAvailableCount_NeverExceedsTotalSpots(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	c := New(SeedLots(rnd))

	for _, lot := range c.Lots() {
		assert.LessOrEqual(t, lot.AvailableCount(), lot.TotalSpots)
		assert.Len(t, lot.Spots, lot.TotalSpots)
	}

	// после коммита инвариант сохраняется
	require.NoError(t, c.Reserve("lot_mg_road", firstAvailableSpot(t, c, "lot_mg_road"), "u1"))
	lot, err := c.Lot("lot_mg_road")
	require.NoError(t, err)
	assert.LessOrEqual(t, lot.AvailableCount(), lot.TotalSpots)
}

func TestSeedLots_ContiguousSpotNumbers(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, lot := range SeedLots(rnd) {
		require.Len(t, lot.Spots, lot.TotalSpots)
		for i, spot := range lot.Spots {
			assert.Equal(t, i+1, spot.SpotNumber)
		}
	}
}

func firstAvailableSpot(t *testing.T, c *Catalog, lotID string) string {
	t.Helper()
	lot, err := c.Lot(lotID)
	require.NoError(t, err)
	for _, s := range lot.Spots {
		if s.Available {
			return s.ID
		}
	}
	t.Fatalf("no available spot in %s", lotID)
	return ""
}
