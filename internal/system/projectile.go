// internal/system/projectile.go
package system

import (
	"go-survivor/internal/config"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона.
// Projectiles do not pierce: the first enemy hit consumes the projectile.
type ProjectileSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ProjectileSystem) Update() {
	w := s.world
	for i := len(w.Projectiles) - 1; i >= 0; i-- {
		proj := w.Projectiles[i]
		proj.Update()
		if proj.IsOffScreen(w.FieldWidth, w.FieldHeight) {
			w.RemoveProjectile(i)
			continue
		}
		for j := len(w.Enemies) - 1; j >= 0; j-- {
			enemy := w.Enemies[j]
			if !utils.CircleBoxOverlap(proj.Shape(), enemy.Bounds()) {
				continue
			}
			if enemy.TakeDamage(proj.Damage) {
				w.RemoveEnemy(j)
				w.Score += config.EnemyScore
				s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: enemy})
			}
			w.RemoveProjectile(i)
			break
		}
	}
}
