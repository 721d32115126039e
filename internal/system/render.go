// internal/system/render.go
package system

import (
	"go-survivor/internal/component"
	"go-survivor/internal/entity"
)

// RenderSystem turns the world into a flat list of draw commands, back to front.
// It only reads the world.
type RenderSystem struct {
	world *entity.World
}

func NewRenderSystem(world *entity.World) *RenderSystem {
	return &RenderSystem{world: world}
}

func (s *RenderSystem) Shapes() []component.Shape {
	w := s.world
	shapes := make([]component.Shape, 0, 3+len(w.Enemies)+len(w.Projectiles))

	shapes = append(shapes, component.Shape{
		Kind:   component.ShapeBackground,
		Width:  w.FieldWidth,
		Height: w.FieldHeight,
	})

	p := w.Player
	shapes = append(shapes, component.Shape{Kind: component.ShapePlayer, X: p.X, Y: p.Y, Size: p.Size})

	c := w.Companion
	shapes = append(shapes, component.Shape{Kind: component.ShapeCompanion, X: c.X, Y: c.Y, Size: c.Size})

	for _, e := range w.Enemies {
		shapes = append(shapes, component.Shape{Kind: component.ShapeEnemy, X: e.X, Y: e.Y, Size: e.Size})
	}
	for _, proj := range w.Projectiles {
		shapes = append(shapes, component.Shape{Kind: component.ShapeProjectile, X: proj.X, Y: proj.Y, Radius: proj.Radius})
	}
	return shapes
}
