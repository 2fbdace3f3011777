package geo

import (
	"math"

	"fieldtrack/internal/domain/aggregate"
)

// EarthRadiusKm is the mean Earth radius used by CalculateDistance
const EarthRadiusKm = 6371

// CalculateDistance returns the great-circle distance in kilometers between
// two locations using the haversine formula.
func CalculateDistance(a, b aggregate.GeoLocation) float64 {
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Latitude*math.Pi/180)*math.Cos(b.Latitude*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}
