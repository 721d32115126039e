// internal/utils/math.go
package utils

import "math"

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Direction returns the unit vector of (dx, dy) and its length.
// A zero-length vector has no direction: ok is false and the unit vector is zero.
func Direction(dx, dy float64) (ux, uy, dist float64, ok bool) {
	dist = math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0, 0, false
	}
	return dx / dist, dy / dist, dist, true
}

// Distance is the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
