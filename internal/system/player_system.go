// internal/system/player_system.go
package system

import (
	"math"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
)

// PlayerSystem ведёт прогрессию игрока: опыт, уровни и распределение очков.
type PlayerSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(world *entity.World, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

// OnEvent grants the XP of every killed enemy.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	if enemy, ok := e.Data.(*entity.Enemy); ok {
		s.GainXP(enemy.XPValue)
	}
}

// GainXP adds amount and levels up as many times as the XP covers. Each level
// is announced separately.
func (s *PlayerSystem) GainXP(amount int) {
	p := s.world.Player
	p.XP += amount
	for p.XP >= p.XPToNextLevel {
		s.levelUp()
	}
}

func (s *PlayerSystem) levelUp() {
	p := s.world.Player
	p.Level++
	p.UnspentPoints += config.PointsPerLevel
	p.XP -= p.XPToNextLevel
	p.XPToNextLevel = max(int(math.Floor(float64(p.XPToNextLevel)*config.XPGrowthFactor)), 1)
	p.Heal()
	// a kill landing on the frame the player died must not revive the session
	if s.world.Phase == component.Running {
		s.world.Phase = component.LevelingUp
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerLeveledUp, Data: p.Level})
}

// Spend applies one unspent point to attr. Without points, or when magic is
// already at its floor, nothing changes and false is returned.
func (s *PlayerSystem) Spend(attr component.Attribute) bool {
	p := s.world.Player
	if p.UnspentPoints <= 0 {
		return false
	}

	switch attr {
	case component.AttributeAttack:
		p.Attack += config.AttackPerPoint
	case component.AttributeHealth:
		p.MaxHP += config.HealthPerPoint
		p.HP += config.HealthPerPoint
	case component.AttributeSpeed:
		p.BaseSpeed += config.SpeedPerPoint
		p.Speed = p.BaseSpeed
	case component.AttributeMagic:
		if p.Magic-config.MagicPerPoint < config.MinMagicCooldown {
			return false
		}
		p.Magic -= config.MagicPerPoint
	default:
		return false
	}

	p.UnspentPoints--
	s.eventDispatcher.Dispatch(event.Event{Type: event.AttributeSpent, Data: attr})
	return true
}
