package search

import (
	"math"

	"padelyzer/internal/domain"
)

const earthRadiusKm = 6371

// HaversineKm returns the great-circle distance between two WGS-84 points.
func HaversineKm(a, b domain.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// distanceTo returns the club's distance from origin, or NaN when either side
// lacks coordinates.
func distanceTo(origin *domain.Coordinates, c domain.Club) float64 {
	if origin == nil || c.Location.Coordinates == nil {
		return math.NaN()
	}
	return HaversineKm(*origin, *c.Location.Coordinates)
}
