package system

import (
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/storage"
)

// recorder collects every dispatched event of the given types.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestWorld() (*entity.World, *event.Dispatcher, *recorder) {
	w := entity.NewWorld(800, 600, storage.DefaultProgression())
	d := event.NewDispatcher()
	rec := &recorder{}
	for _, t := range []event.EventType{
		event.EnemySpawned, event.EnemyKilled, event.PlayerDamaged, event.PlayerLeveledUp,
		event.AttributeSpent, event.GameOver, event.ProjectileFired,
	} {
		d.Subscribe(t, rec)
	}
	return w, d, rec
}

func enemyCentredAt(cx, cy float64) *entity.Enemy {
	e := entity.NewEnemy(0, 0)
	e.X = cx - e.Size/2
	e.Y = cy - e.Size/2
	return e
}
