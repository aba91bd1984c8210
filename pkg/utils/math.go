// pkg/utils/math.go
package utils

import "math"

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundIndex rounds a fractional table position to the nearest index,
// halves away from zero.
func RoundIndex(f float64) int {
	return int(math.Round(f))
}
