// internal/system/combat.go
package system

import (
	"math"

	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/utils"
)

// CombatSystem launches projectiles from the companion: on the player's command,
// gated by the player's Magic cooldown, and on its own at the nearest enemy.
type CombatSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher

	autoFire       bool
	fireIntervalMs float64

	manualCooldown float64 // ms left before the next commanded shot
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher, autoFire bool, fireIntervalMs float64) *CombatSystem {
	return &CombatSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		autoFire:        autoFire,
		fireIntervalMs:  fireIntervalMs,
	}
}

// Cooldown counts the commanded-shot gate down by elapsedMs.
func (s *CombatSystem) Cooldown(elapsedMs float64) {
	if s.manualCooldown > 0 {
		s.manualCooldown -= elapsedMs
	}
}

// ManualFire shoots from the companion's centre toward (targetX, targetY) if the
// gate is open and reports whether a shot was fired.
func (s *CombatSystem) ManualFire(targetX, targetY float64) bool {
	if s.manualCooldown > 0 {
		return false
	}
	cx, cy := s.world.Companion.Center()
	s.launch(cx, cy, targetX, targetY)
	s.manualCooldown = float64(s.world.Player.Magic)
	return true
}

// Update runs the companion's autonomous fire: when its cooldown expires it
// shoots at the nearest enemy. With no enemy in play it stays ready.
func (s *CombatSystem) Update(elapsedMs float64) {
	if !s.autoFire {
		return
	}
	companion := s.world.Companion
	if !companion.Tick(elapsedMs) {
		return
	}
	target := s.findNearestEnemy()
	if target == nil {
		return
	}
	cx, cy := companion.Center()
	tx, ty := target.Center()
	s.launch(cx, cy, tx, ty)
	companion.ResetCooldown(s.fireIntervalMs)
}

// findNearestEnemy returns the enemy whose centre is closest to the companion's.
// Ties go to the earliest enemy in the slice.
func (s *CombatSystem) findNearestEnemy() *entity.Enemy {
	var nearest *entity.Enemy
	minDistance := math.MaxFloat64
	cx, cy := s.world.Companion.Center()
	for _, enemy := range s.world.Enemies {
		ex, ey := enemy.Center()
		distance := utils.Distance(cx, cy, ex, ey)
		if distance < minDistance {
			minDistance = distance
			nearest = enemy
		}
	}
	return nearest
}

func (s *CombatSystem) launch(sx, sy, tx, ty float64) {
	proj := entity.NewProjectile(sx, sy, tx, ty, s.world.Player.Attack)
	s.world.Projectiles = append(s.world.Projectiles, proj)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: proj})
}
