// internal/entity/projectile.go
package entity

import (
	"math"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/utils"
)

// Projectile flies in a straight line from where it was launched. Velocity and
// damage are fixed at creation.
type Projectile struct {
	component.Position
	component.Velocity

	Radius float64
	Damage int
}

// NewProjectile aims a projectile from (sx, sy) at (tx, ty).
func NewProjectile(sx, sy, tx, ty float64, damage int) *Projectile {
	angle := math.Atan2(ty-sy, tx-sx)
	return &Projectile{
		Position: component.Position{X: sx, Y: sy},
		Velocity: component.Velocity{
			VX: math.Cos(angle) * config.ProjectileSpeed,
			VY: math.Sin(angle) * config.ProjectileSpeed,
		},
		Radius: config.ProjectileRadius,
		Damage: damage,
	}
}

// Update advances the projectile by its velocity.
func (p *Projectile) Update() {
	p.X += p.VX
	p.Y += p.VY
}

// IsOffScreen reports whether the centre has left the field on any side.
func (p *Projectile) IsOffScreen(fieldW, fieldH float64) bool {
	return p.X < 0 || p.X > fieldW || p.Y < 0 || p.Y > fieldH
}

// Shape returns the projectile's collision circle.
func (p *Projectile) Shape() utils.Circle {
	return utils.Circle{X: p.X, Y: p.Y, Radius: p.Radius}
}
