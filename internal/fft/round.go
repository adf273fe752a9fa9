package fft

import "math"

// RoundHalfAway rounds x to the nearest integer, with ties rounding away
// from zero (the convention used when converting fractional pixel
// coordinates to grid indices).
func RoundHalfAway(x float64) int {
	if x >= 0 {
		return int(math.Floor(x + 0.5))
	}
	return int(math.Ceil(x - 0.5))
}
