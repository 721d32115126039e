// internal/entity/companion.go
package entity

import (
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/utils"
)

// Companion follows the player and fires at enemies on its own.
// It reads the player's position and never writes it.
type Companion struct {
	component.Position

	Size     float64
	Speed    float64
	DeadZone float64

	// FireCooldown is the ms left before the next autonomous shot.
	FireCooldown float64

	player *Player
}

// NewCompanion spawns the companion on top of the player.
func NewCompanion(p *Player) *Companion {
	return &Companion{
		Position: component.Position{X: p.X, Y: p.Y},
		Size:     config.CompanionSize,
		Speed:    config.CompanionSpeed,
		DeadZone: config.CompanionDeadZone,
		player:   p,
	}
}

// Update chases the player's centre at Speed once it is farther than DeadZone.
func (c *Companion) Update() {
	px, py := c.player.Center()
	cx, cy := c.Center()
	ux, uy, dist, ok := utils.Direction(px-cx, py-cy)
	if !ok || dist <= c.DeadZone {
		return
	}
	c.X += ux * c.Speed
	c.Y += uy * c.Speed
}

// Tick counts the fire cooldown down by elapsedMs and reports whether a shot is due.
func (c *Companion) Tick(elapsedMs float64) bool {
	if c.FireCooldown > 0 {
		c.FireCooldown -= elapsedMs
	}
	return c.FireCooldown <= 0
}

// ResetCooldown arms the fire cooldown.
func (c *Companion) ResetCooldown(intervalMs float64) {
	c.FireCooldown = intervalMs
}

// Player returns the followed player.
func (c *Companion) Player() *Player {
	return c.player
}

// Center returns the centre of the companion's box.
func (c *Companion) Center() (float64, float64) {
	return c.X + c.Size/2, c.Y + c.Size/2
}

// Bounds returns the companion's box.
func (c *Companion) Bounds() utils.Box {
	return utils.Box{X: c.X, Y: c.Y, Size: c.Size}
}
