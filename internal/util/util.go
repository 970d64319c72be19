package util

import (
	"fmt"
	"math"
	"strings"
)

// Round1 rounds a value to one decimal place. Distances shown to users and
// carried in notification payloads use this precision.
func Round1(value float64) float64 {
	return math.Round(value*10) / 10
}

// FormatDistance formats a distance in kilometres for display (e.g., "3.2 km",
// "850 m").
func FormatDistance(distanceKm float64) string {
	if distanceKm < 1 {
		return fmt.Sprintf("%d m", int(math.Round(distanceKm*1000)))
	}

	return fmt.Sprintf("%.1f km", distanceKm)
}

// NormalizeKeywords lowercases and trims a keyword string, collapsing internal
// runs of whitespace, so that keyword matching is insensitive to formatting.
func NormalizeKeywords(keywords string) string {
	return strings.Join(strings.Fields(strings.ToLower(keywords)), " ")
}
