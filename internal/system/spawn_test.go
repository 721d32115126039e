package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"go-survivor/internal/config"
	"go-survivor/internal/event"
	"go-survivor/internal/utils"
)

func TestSpawnWaitsForStrictlyGreaterAccumulator(t *testing.T) {
	w, d, rec := newTestWorld()
	s := NewSpawnSystem(w, utils.NewPRNGService(7), d)

	s.Update(2000)
	assert.Empty(t, w.Enemies, "accumulator equal to the interval does not spawn")

	s.Update(1)
	require.Len(t, w.Enemies, 1)
	assert.Equal(t, 0.0, w.Spawn.Timer)
	assert.Equal(t, 1990.0, w.Spawn.Interval)
	assert.Equal(t, 1, rec.count(event.EnemySpawned))
}

func TestSpawnIntervalStopsAtFloor(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewSpawnSystem(w, utils.NewPRNGService(1), d)
	w.Spawn.Interval = 505

	s.Update(506)
	assert.Equal(t, config.MinSpawnInterval, w.Spawn.Interval)

	s.Update(501)
	assert.Equal(t, config.MinSpawnInterval, w.Spawn.Interval)
	assert.Len(t, w.Enemies, 2)
}

func TestSpawnEdgePositions(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewSpawnSystem(w, utils.NewPRNGService(1), d)

	tests := []struct {
		name  string
		edge  Edge
		t     float64
		wantX float64
		wantY float64
	}{
		{"top", EdgeTop, 0.5, 400, -config.EnemySize},
		{"right", EdgeRight, 0.25, 800, 150},
		{"bottom", EdgeBottom, 0, 0, 600},
		{"left", EdgeLeft, 0.5, -config.EnemySize, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := s.edgePosition(tt.edge, tt.t)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestSpawnSameSeedSameEnemies(t *testing.T) {
	run := func() [][2]float64 {
		w, d, _ := newTestWorld()
		s := NewSpawnSystem(w, utils.NewPRNGService(99), d)
		for range 5 {
			s.Update(2500)
		}
		out := make([][2]float64, 0, len(w.Enemies))
		for _, e := range w.Enemies {
			out = append(out, [2]float64{e.X, e.Y})
		}
		return out
	}
	assert.Equal(t, run(), run())
}

// Property-based tests

func TestPropertySpawnIntervalNonIncreasingWithFloor(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w, d, _ := newTestWorld()
		s := NewSpawnSystem(w, utils.NewPRNGService(rapid.Int64Range(1, 1000).Draw(t, "seed")), d)
		steps := rapid.SliceOfN(rapid.Float64Range(0, 3000), 1, 200).Draw(t, "steps")

		prev := w.Spawn.Interval
		for _, elapsed := range steps {
			s.Update(elapsed)
			if w.Spawn.Interval > prev {
				t.Fatalf("interval grew from %v to %v", prev, w.Spawn.Interval)
			}
			if w.Spawn.Interval < config.MinSpawnInterval {
				t.Fatalf("interval %v below floor", w.Spawn.Interval)
			}
			prev = w.Spawn.Interval
		}
	})
}

func TestPropertySpawnedEnemiesStartOffField(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w, d, _ := newTestWorld()
		s := NewSpawnSystem(w, utils.NewPRNGService(rapid.Int64Range(1, 1000).Draw(t, "seed")), d)
		s.Update(3000)
		e := w.Enemies[0]
		onEdge := e.X == -e.Size || e.X == w.FieldWidth || e.Y == -e.Size || e.Y == w.FieldHeight
		if !onEdge {
			t.Fatalf("enemy spawned inside the field at %v,%v", e.X, e.Y)
		}
	})
}
