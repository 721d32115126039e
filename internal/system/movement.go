// internal/system/movement.go
package system

import (
	"go-survivor/internal/entity"
	"go-survivor/internal/input"
)

// MovementSystem обновляет позиции игрока, компаньона и врагов.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// Update moves the player from input, then the companion after the player, then
// every enemy toward the player's new position.
func (s *MovementSystem) Update(in input.State) {
	s.world.Player.Update(in, s.world.FieldWidth, s.world.FieldHeight)
	s.world.Companion.Update()
	for i := len(s.world.Enemies) - 1; i >= 0; i-- {
		s.world.Enemies[i].Update(s.world.Player)
	}
}
