package utils

import (
	"math"

	"github.com/track-analytics/internal/domain"
)

const earthRadiusKm = 6371.0

func radians(deg float64) float64 { return deg * math.Pi / 180.0 }

// GreatCircleKm - расстояние между двумя позициями по большому кругу, км
func GreatCircleKm(a, b domain.Position) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// ValidPosition - широта и долгота в допустимых пределах, без NaN.
// Нулевая точка (0, 0) в данных SNCF означает отсутствие координат.
func ValidPosition(p domain.Position) bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) {
		return false
	}
	if p.Lat == 0 && p.Lon == 0 {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}
