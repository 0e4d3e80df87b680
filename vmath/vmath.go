// Package vmath holds the float64 vector math and deterministic random source
// shared by the particle and projectile simulation.
package vmath

import "math"

// Lerp returns a + (b-a)*t without clamping t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp bounds x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Saturate clamps to [0, 1]
func Saturate(x float64) float64 {
	return Clamp(x, 0, 1)
}

// NextAfter returns the smallest float64 strictly greater than x
// Used to push a timer just past a threshold without overshooting by a frame
func NextAfter(x float64) float64 {
	return math.Nextafter(x, math.Inf(1))
}
