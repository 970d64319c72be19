// Package geo provides the pure geodesic primitives of the marketplace:
// great-circle distance and radius-based proximity matching.
package geo

import (
	"math"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
)

// EarthRadiusKm is the sphere radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// Distance computes the haversine distance between two coordinates, in kilometers.
// It is deterministic and side-effect free: Distance(a, b) == Distance(b, a) to
// floating-point precision, and Distance(a, a) == 0. Invalid (NaN) input
// propagates; callers validate coordinates beforehand.
func Distance(a, b entity.Coordinate) float64 {
	lat1 := degToRad(a.Latitude)
	lat2 := degToRad(b.Latitude)
	dLat := degToRad(b.Latitude - a.Latitude)
	dLon := degToRad(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
