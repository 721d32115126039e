// internal/entity/player.go
package entity

import (
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/input"
	"go-survivor/internal/utils"
)

// Player — персонаж под управлением игрока.
type Player struct {
	component.Position
	component.Progression

	Size  float64
	Speed float64 // live speed, equals BaseSpeed
	HP    int

	dead bool
}

// NewPlayer places a player with the given progression at x, y with full health.
func NewPlayer(x, y float64, prog component.Progression) *Player {
	return &Player{
		Position:    component.Position{X: x, Y: y},
		Progression: prog,
		Size:        config.PlayerSize,
		Speed:       prog.BaseSpeed,
		HP:          prog.MaxHP,
	}
}

// Update moves the player on every pressed axis at Speed and keeps it inside the field.
// Diagonal movement is not normalised.
func (p *Player) Update(in input.State, fieldW, fieldH float64) {
	if in.Up {
		p.Y -= p.Speed
	}
	if in.Down {
		p.Y += p.Speed
	}
	if in.Left {
		p.X -= p.Speed
	}
	if in.Right {
		p.X += p.Speed
	}
	p.X = utils.Clamp(p.X, 0, fieldW-p.Size)
	p.Y = utils.Clamp(p.Y, 0, fieldH-p.Size)
}

// TakeDamage subtracts amount from HP, clamping at zero. It reports true only on
// the call that first brings HP to zero.
func (p *Player) TakeDamage(amount int) bool {
	if p.dead {
		return false
	}
	p.HP -= amount
	if p.HP <= 0 {
		p.HP = 0
		p.dead = true
		return true
	}
	return false
}

// Dead reports whether HP has reached zero.
func (p *Player) Dead() bool {
	return p.dead
}

// Heal restores HP to MaxHP.
func (p *Player) Heal() {
	p.HP = p.MaxHP
}

// Center returns the centre of the player's box.
func (p *Player) Center() (float64, float64) {
	return p.X + p.Size/2, p.Y + p.Size/2
}

// Bounds returns the player's collision box.
func (p *Player) Bounds() utils.Box {
	return utils.Box{X: p.X, Y: p.Y, Size: p.Size}
}
