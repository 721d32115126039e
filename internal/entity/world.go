// internal/entity/world.go
package entity

import (
	"go-survivor/internal/component"
	"go-survivor/internal/config"
)

// World is the whole simulation state of one session. Only the simulation loop
// mutates the entity slices.
type World struct {
	FieldWidth  float64
	FieldHeight float64

	Player      *Player
	Companion   *Companion
	Enemies     []*Enemy
	Projectiles []*Projectile

	Score int
	Phase component.Phase
	Spawn component.SpawnState
}

// NewWorld starts a session: the player is centred on the field with full health.
func NewWorld(fieldW, fieldH float64, prog component.Progression) *World {
	player := NewPlayer(fieldW/2-config.PlayerSize/2, fieldH/2-config.PlayerSize/2, prog)
	return &World{
		FieldWidth:  fieldW,
		FieldHeight: fieldH,
		Player:      player,
		Companion:   NewCompanion(player),
		Enemies:     make([]*Enemy, 0, 32),
		Projectiles: make([]*Projectile, 0, 32),
		Phase:       component.Running,
		Spawn: component.SpawnState{
			Interval: config.InitialSpawnInterval,
		},
	}
}

// RemoveEnemy deletes the enemy at index i, preserving the order of the rest.
// Callers iterate in reverse so the removal never skips an element.
func (w *World) RemoveEnemy(i int) {
	w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
}

// RemoveProjectile deletes the projectile at index i, preserving order.
func (w *World) RemoveProjectile(i int) {
	w.Projectiles = append(w.Projectiles[:i], w.Projectiles[i+1:]...)
}
