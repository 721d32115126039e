// internal/system/contact.go
package system

import (
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/utils"
)

// ContactSystem resolves player–enemy overlaps. A touching enemy deals contact
// damage once and is consumed.
type ContactSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	damage          int
}

func NewContactSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ContactSystem {
	return &ContactSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		damage:          config.ContactDamage,
	}
}

func (s *ContactSystem) Update() {
	player := s.world.Player
	for i := len(s.world.Enemies) - 1; i >= 0; i-- {
		if !utils.BoxesOverlap(player.Bounds(), s.world.Enemies[i].Bounds()) {
			continue
		}
		died := player.TakeDamage(s.damage)
		s.world.RemoveEnemy(i)
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: s.damage})
		if died {
			s.world.Phase = component.GameOver
			s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver})
		}
	}
}
