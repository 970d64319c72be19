package geo

import (
	"github.com/BeMaTech82/hortago/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// FindWithinRadius filters candidates down to those whose location is non-nil
// and lies within radiusKm of center. The filter is stable: output preserves
// input order. Candidates without a location are silently excluded.
//
// A bounding box around the center (paulmach/orb) is used as a cheap prefilter
// before the exact haversine test; it never changes the result set.
func FindWithinRadius[T any](center entity.Coordinate, radiusKm float64, candidates []T, location func(T) *entity.Coordinate) []T {
	if len(candidates) == 0 {
		return nil
	}

	bound := boundAround(center, radiusKm)

	matched := make([]T, 0, len(candidates))
	for _, candidate := range candidates {
		coord := location(candidate)
		if coord == nil {
			continue
		}
		if !bound.Contains(orb.Point{coord.Longitude, coord.Latitude}) {
			continue
		}
		if Distance(center, *coord) <= radiusKm {
			matched = append(matched, candidate)
		}
	}

	return matched
}

// WithinRadius reports whether loc lies within radiusKm of center.
// A nil loc never matches. This is the inverted form used by notification
// dispatch: the search owner must fall within the search radius of the product.
func WithinRadius(center entity.Coordinate, radiusKm float64, loc *entity.Coordinate) bool {
	if loc == nil {
		return false
	}

	return Distance(center, *loc) <= radiusKm
}

// boundAround builds a geographic bounding box that fully contains the circle
// of radiusKm around center. orb sizes the box on the WGS84 equatorial radius
// while the membership test runs haversine on EarthRadiusKm, so the radius is
// rescaled onto orb's sphere; without that the box comes out angularly smaller
// than the circle and drops candidates just inside the boundary. The edges are
// additionally padded so boundary points survive the prefilter and are decided
// by the exact distance test.
func boundAround(center entity.Coordinate, radiusKm float64) orb.Bound {
	const padMeters = 1.0

	meters := radiusKm * 1000.0 * orb.EarthRadius / (EarthRadiusKm * 1000.0)

	return orbgeo.NewBoundAroundPoint(
		orb.Point{center.Longitude, center.Latitude},
		meters+padMeters,
	)
}
