package geo

import (
	"testing"

	"github.com/BeMaTech82/hortago/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	paris = entity.Coordinate{Latitude: 48.8566, Longitude: 2.3522}
	lyon  = entity.Coordinate{Latitude: 45.7640, Longitude: 4.8357}
)

func TestDistance_ParisLyon(t *testing.T) {
	// The great-circle distance between Paris and Lyon is about 392 km.
	distance := Distance(paris, lyon)
	assert.InDelta(t, 392.0, distance, 2.0)
}

func TestDistance_Symmetric(t *testing.T) {
	assert.InDelta(t, Distance(paris, lyon), Distance(lyon, paris), 1e-9)
}

func TestDistance_SamePoint(t *testing.T) {
	assert.Equal(t, 0.0, Distance(paris, paris))
}

func TestDistance_ShortRange(t *testing.T) {
	// Two points in the same city, roughly 5 km apart.
	montmartre := entity.Coordinate{Latitude: 48.8867, Longitude: 2.3431}
	bastille := entity.Coordinate{Latitude: 48.8532, Longitude: 2.3692}

	distance := Distance(montmartre, bastille)
	assert.Greater(t, distance, 3.0)
	assert.Less(t, distance, 6.0)
}

func TestWithinRadius(t *testing.T) {
	near := entity.Coordinate{Latitude: 48.8600, Longitude: 2.3500}

	assert.True(t, WithinRadius(paris, 5, &near))
	assert.False(t, WithinRadius(paris, 100, &lyon))
	assert.False(t, WithinRadius(paris, 5, nil), "nil location never matches")
}

type located struct {
	name string
	loc  *entity.Coordinate
}

func TestFindWithinRadius_FiltersAndPreservesOrder(t *testing.T) {
	near1 := entity.Coordinate{Latitude: 48.8600, Longitude: 2.3500}
	near2 := entity.Coordinate{Latitude: 48.8500, Longitude: 2.3600}

	candidates := []located{
		{name: "first", loc: &near1},
		{name: "no-location", loc: nil},
		{name: "too-far", loc: &lyon},
		{name: "second", loc: &near2},
	}

	matched := FindWithinRadius(paris, 10, candidates, func(c located) *entity.Coordinate {
		return c.loc
	})

	assert.Len(t, matched, 2)
	assert.Equal(t, "first", matched[0].name)
	assert.Equal(t, "second", matched[1].name)
}

func TestFindWithinRadius_RadiusBoundary(t *testing.T) {
	// Lyon sits about 392 km from Paris; a radius just past that distance
	// includes it, a radius just short of it does not.
	candidates := []located{{name: "lyon", loc: &lyon}}

	within := FindWithinRadius(paris, 395, candidates, func(c located) *entity.Coordinate { return c.loc })
	assert.Len(t, within, 1)

	outside := FindWithinRadius(paris, 390, candidates, func(c located) *entity.Coordinate { return c.loc })
	assert.Empty(t, outside)
}

func TestFindWithinRadius_KeepsCandidatesJustInsideRadius(t *testing.T) {
	// A candidate due north of the center at a haversine distance a few tens
	// of meters under the radius. The bounding-box prefilter must not reject
	// what the exact distance test accepts.
	north := entity.Coordinate{Latitude: paris.Latitude + 0.89888, Longitude: paris.Longitude}
	distance := Distance(paris, north)
	require.Greater(t, distance, 99.9)
	require.Less(t, distance, 100.0)

	candidates := []located{{name: "edge", loc: &north}}

	matched := FindWithinRadius(paris, 100, candidates, func(c located) *entity.Coordinate { return c.loc })
	require.Len(t, matched, 1)

	// Inclusive boundary: a radius equal to the exact distance still matches.
	exact := FindWithinRadius(paris, distance, candidates, func(c located) *entity.Coordinate { return c.loc })
	require.Len(t, exact, 1)
	assert.True(t, WithinRadius(paris, distance, &north))
}

func TestFindWithinRadius_ZeroRadius(t *testing.T) {
	center := paris
	elsewhere := entity.Coordinate{Latitude: 48.8567, Longitude: 2.3523}

	candidates := []located{
		{name: "coincident", loc: &center},
		{name: "a-few-meters-off", loc: &elsewhere},
	}

	matched := FindWithinRadius(paris, 0, candidates, func(c located) *entity.Coordinate { return c.loc })

	require.Len(t, matched, 1)
	assert.Equal(t, "coincident", matched[0].name)
}

func TestFindWithinRadius_EmptyInput(t *testing.T) {
	matched := FindWithinRadius(paris, 10, nil, func(c located) *entity.Coordinate { return c.loc })
	assert.Nil(t, matched)
}
