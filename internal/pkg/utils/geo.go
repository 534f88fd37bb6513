package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// CalculateHaversineDistance returns the distance between two coordinates in meters.
func CalculateHaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371000 // meters

	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// DistanceMeters is the decimal-coordinate form of CalculateHaversineDistance.
// Coordinates are stored as decimals to preserve the values submitted by
// devices verbatim; the haversine math itself runs on float64.
func DistanceMeters(lat1, lon1, lat2, lon2 decimal.Decimal) float64 {
	return CalculateHaversineDistance(
		lat1.InexactFloat64(), lon1.InexactFloat64(),
		lat2.InexactFloat64(), lon2.InexactFloat64(),
	)
}
