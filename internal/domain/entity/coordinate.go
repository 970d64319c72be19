// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Coordinate is a geographic point in decimal degrees.
// It is immutable once obtained; callers that need a different point build a new value.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`  // Latitude in decimal degrees, valid range [-90, 90].
	Longitude float64 `json:"longitude"` // Longitude in decimal degrees, valid range [-180, 180].
}

// IsValid reports whether the coordinate lies within the valid degree ranges.
// Matching code treats invalid or missing coordinates as a skip condition, not an error.
func (c Coordinate) IsValid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}
