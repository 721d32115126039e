// internal/entity/enemy.go
package entity

import (
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/utils"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	component.Position

	Size    float64
	Speed   float64
	HP      int
	XPValue int

	killed bool
}

// NewEnemy creates a standard enemy at x, y.
func NewEnemy(x, y float64) *Enemy {
	return &Enemy{
		Position: component.Position{X: x, Y: y},
		Size:     config.EnemySize,
		Speed:    config.EnemySpeed,
		HP:       config.EnemyHealth,
		XPValue:  config.EnemyXPValue,
	}
}

// Update moves the enemy straight at the player's centre. When the centres
// coincide there is no direction and the enemy stays put.
func (e *Enemy) Update(p *Player) {
	px, py := p.Center()
	ex, ey := e.Center()
	ux, uy, _, ok := utils.Direction(px-ex, py-ey)
	if !ok {
		return
	}
	e.X += ux * e.Speed
	e.Y += uy * e.Speed
}

// TakeDamage subtracts amount from HP and reports true exactly once, on the
// hit that brings HP to zero or below.
func (e *Enemy) TakeDamage(amount int) bool {
	if e.killed {
		return false
	}
	e.HP -= amount
	if e.HP <= 0 {
		e.killed = true
		return true
	}
	return false
}

// Center returns the centre of the enemy's box.
func (e *Enemy) Center() (float64, float64) {
	return e.X + e.Size/2, e.Y + e.Size/2
}

// Bounds returns the enemy's collision box.
func (e *Enemy) Bounds() utils.Box {
	return utils.Box{X: e.X, Y: e.Y, Size: e.Size}
}
