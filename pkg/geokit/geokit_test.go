package geokit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_Properties(t *testing.T) {
	points := [][2]float64{
		{12.9716, 77.5946},
		{12.9758, 77.6045},
		{28.6139, 77.2090},
		{-33.8688, 151.2093},
		{0, 0},
	}

	for _, a := range points {
		assert.Zero(t, DistanceKm(a[0], a[1], a[0], a[1]))
		for _, b := range points {
			d := DistanceKm(a[0], a[1], b[0], b[1])
			assert.GreaterOrEqual(t, d, 0.0)
			assert.InDelta(t, d, DistanceKm(b[0], b[1], a[0], a[1]), 1e-9, "distance is symmetric")
		}
	}
}

func TestDistanceKm_KnownValues(t *testing.T) {
	// один градус долготы на экваторе
	assert.InDelta(t, 111.19, DistanceKm(0, 0, 0, 1), 0.05)

	// Бангалор - Дели
	assert.InDelta(t, 1740, DistanceKm(12.9716, 77.5946, 28.6139, 77.2090), 20)
}

func TestETAMinutes_RoundsToNearestMinute(t *testing.T) {
	assert.Equal(t, 0, ETAMinutes(0))
	assert.Equal(t, 2, ETAMinutes(1))    // 1 км при 0.5 км/мин
	assert.Equal(t, 5, ETAMinutes(2.6))  // 5.2 -> 5
	assert.Equal(t, 6, ETAMinutes(2.75)) // 5.5 -> 6
	assert.Equal(t, 20, ETAMinutes(10))
}
