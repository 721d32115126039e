// internal/utils/collision.go
package utils

import "math"

// Box is an axis-aligned square with its top-left corner at X, Y.
type Box struct {
	X, Y float64
	Size float64
}

// Center returns the centre point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.Size/2, b.Y + b.Size/2
}

// Circle is centred at X, Y.
type Circle struct {
	X, Y   float64
	Radius float64
}

// BoxesOverlap is the separating-axis test on both axes. Touching edges do not overlap.
func BoxesOverlap(a, b Box) bool {
	return a.X < b.X+b.Size &&
		a.X+a.Size > b.X &&
		a.Y < b.Y+b.Size &&
		a.Y+a.Size > b.Y
}

// CircleBoxOverlap treats the box as expanded by the circle radius on each axis.
// Near the corners it reports hits an exact circle-rect test would not.
func CircleBoxOverlap(c Circle, b Box) bool {
	cx, cy := b.Center()
	reach := b.Size/2 + c.Radius
	if math.Abs(c.X-cx) > reach {
		return false
	}
	if math.Abs(c.Y-cy) > reach {
		return false
	}
	return true
}
