// internal/system/spawn.go
package system

import (
	"math"

	"go-survivor/internal/config"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/utils"
)

// Edge is a side of the playing field.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// SpawnSystem accumulates elapsed time and drops an enemy on a random field edge
// each time the accumulator passes the current interval. Every spawn shortens the
// interval by a fixed step until it reaches the floor.
type SpawnSystem struct {
	world           *entity.World
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(world *entity.World, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

func (s *SpawnSystem) Update(elapsedMs float64) {
	spawn := &s.world.Spawn
	spawn.Timer += elapsedMs
	if spawn.Timer <= spawn.Interval {
		return
	}

	s.spawnEnemy()
	spawn.Timer = 0
	if spawn.Interval > config.MinSpawnInterval {
		spawn.Interval = math.Max(spawn.Interval-config.SpawnIntervalDecrement, config.MinSpawnInterval)
	}
}

func (s *SpawnSystem) spawnEnemy() {
	x, y := s.edgePosition(Edge(s.rng.Intn(4)), s.rng.Float64())
	enemy := entity.NewEnemy(x, y)
	s.world.Enemies = append(s.world.Enemies, enemy)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: enemy})
}

// edgePosition places an enemy box just outside the given edge, t in [0,1) along it.
func (s *SpawnSystem) edgePosition(edge Edge, t float64) (float64, float64) {
	w, h := s.world.FieldWidth, s.world.FieldHeight
	switch edge {
	case EdgeTop:
		return t * w, -config.EnemySize
	case EdgeRight:
		return w, t * h
	case EdgeBottom:
		return t * w, h
	default:
		return -config.EnemySize, t * h
	}
}
