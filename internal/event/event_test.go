package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) OnEvent(e Event) {
	*r.log = append(*r.log, r.name+":"+string(e.Type))
}

func TestDispatchInSubscriptionOrder(t *testing.T) {
	var log []string
	d := NewDispatcher()
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}
	d.Subscribe(EnemyKilled, a)
	d.Subscribe(EnemyKilled, b)
	d.Subscribe(GameOver, b)

	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: GameOver})
	d.Dispatch(Event{Type: PlayerDamaged})

	assert.Equal(t, []string{"a:EnemyKilled", "b:EnemyKilled", "b:GameOver"}, log)
}

func TestUnsubscribe(t *testing.T) {
	var log []string
	d := NewDispatcher()
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}
	sub := d.Subscribe(AttributeSpent, a)
	d.Subscribe(AttributeSpent, b)
	d.Unsubscribe(sub)
	d.Dispatch(Event{Type: AttributeSpent})
	assert.Equal(t, []string{"b:AttributeSpent"}, log)
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	got := 0
	d.Subscribe(PlayerLeveledUp, ListenerFunc(func(e Event) { got = e.Data.(int) }))
	d.Dispatch(Event{Type: PlayerLeveledUp, Data: 3})
	assert.Equal(t, 3, got)
}

func TestNestedDispatchDeliveredBeforeReturn(t *testing.T) {
	d := NewDispatcher()
	var order []EventType
	d.Subscribe(EnemyKilled, ListenerFunc(func(e Event) {
		order = append(order, e.Type)
		d.Dispatch(Event{Type: PlayerLeveledUp, Data: 2})
	}))
	d.Subscribe(PlayerLeveledUp, ListenerFunc(func(e Event) { order = append(order, e.Type) }))

	d.Dispatch(Event{Type: EnemyKilled})
	assert.Equal(t, []EventType{EnemyKilled, PlayerLeveledUp}, order)
}
