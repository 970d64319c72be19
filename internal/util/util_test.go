package util

import (
	"testing"
)

func TestRound1(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{name: "zero", value: 0, expected: 0},
		{name: "already one decimal", value: 3.2, expected: 3.2},
		{name: "rounds down", value: 3.24, expected: 3.2},
		{name: "rounds up", value: 3.25, expected: 3.3},
		{name: "large value", value: 392.16, expected: 392.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Round1(tt.value); got != tt.expected {
				t.Fatalf("Round1(%v) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestFormatDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		distanceKm float64
		expected   string
	}{
		{name: "metres", distanceKm: 0.85, expected: "850 m"},
		{name: "just under a kilometre", distanceKm: 0.999, expected: "999 m"},
		{name: "exact kilometre", distanceKm: 1, expected: "1.0 km"},
		{name: "fractional kilometres", distanceKm: 3.26, expected: "3.3 km"},
		{name: "long distance", distanceKm: 392.2, expected: "392.2 km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDistance(tt.distanceKm); got != tt.expected {
				t.Fatalf("FormatDistance(%v) = %s, want %s", tt.distanceKm, got, tt.expected)
			}
		})
	}
}

func TestNormalizeKeywords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "lowercases", input: "Tomates Anciennes", expected: "tomates anciennes"},
		{name: "trims edges", input: "  miel  ", expected: "miel"},
		{name: "collapses whitespace", input: "œufs \t frais", expected: "œufs frais"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeKeywords(tt.input); got != tt.expected {
				t.Fatalf("NormalizeKeywords(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
