// Package geokit содержит чистые функции расчёта расстояний и времени в пути.
package geokit

import "math"

const (
	// EarthRadiusKm радиус Земли в километрах
	EarthRadiusKm = 6371.0

	// AverageSpeedKmPerMin средняя скорость движения по городу (30 км/ч)
	AverageSpeedKmPerMin = 0.5
)

// DistanceKm возвращает расстояние по дуге большого круга между двумя точками
// (формула гаверсинусов). Функция чистая и симметричная:
// DistanceKm(a, b) == DistanceKm(b, a), DistanceKm(a, a) == 0.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degToRad(lat2 - lat1)
	dLng := degToRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degToRad(lat1))*math.Cos(degToRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// ETAMinutes оценивает время в пути в минутах для заданного расстояния,
// исходя из постоянной средней скорости AverageSpeedKmPerMin.
// Результат округляется до ближайшей целой минуты.
func ETAMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm / AverageSpeedKmPerMin))
}

func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
