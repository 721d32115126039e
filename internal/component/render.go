// internal/component/render.go
package component

// ShapeKind tags a drawable for the renderer.
type ShapeKind int

const (
	ShapeBackground ShapeKind = iota
	ShapePlayer
	ShapeCompanion
	ShapeEnemy
	ShapeProjectile
)

// Shape — одна команда отрисовки. Boxes use X, Y as the top-left corner and Size;
// projectiles use X, Y as the centre and Radius.
type Shape struct {
	Kind   ShapeKind
	X, Y   float64
	Size   float64
	Width  float64 // background only
	Height float64 // background only
	Radius float64
}
