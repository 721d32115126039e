package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"go-survivor/internal/component"
	"go-survivor/internal/entity"
	"go-survivor/internal/input"
	"go-survivor/internal/storage"
)

const frameMs = 16.0

func testOptions() Options {
	return Options{
		FieldWidth:     800,
		FieldHeight:    600,
		AutoFire:       true,
		FireIntervalMs: 1000,
		Seed:           1,
	}
}

type failingStore struct{}

func (failingStore) Save(context.Context, component.Progression) error {
	return errors.New("disk full")
}

func (failingStore) Load(context.Context) (component.Progression, bool, error) {
	return component.Progression{}, false, errors.New("corrupt save")
}

func TestNewGameWithoutSaveUsesDefaults(t *testing.T) {
	g := NewGame(testOptions(), storage.NewMemoryStore(), zaptest.NewLogger(t))

	hud := g.HUD()
	assert.Equal(t, 1, hud.Level)
	assert.Equal(t, 100, hud.HP)
	assert.Equal(t, 100, hud.MaxHP)
	assert.Equal(t, 10, hud.XPToNextLevel)
	assert.Equal(t, 500, hud.Magic)
	assert.Equal(t, component.Running, hud.Phase)
}

func TestNewGameRestoresSavedProgression(t *testing.T) {
	store := storage.NewMemoryStore()
	saved := storage.DefaultProgression()
	saved.Level = 4
	saved.MaxHP = 140
	saved.BaseSpeed = 6
	require.NoError(t, store.Save(context.Background(), saved))

	g := NewGame(testOptions(), store, zaptest.NewLogger(t))

	assert.Equal(t, 4, g.HUD().Level)
	assert.Equal(t, 140, g.World.Player.HP, "sessions start at full health")
	assert.Equal(t, 6.0, g.World.Player.Speed)
}

func TestNewGameFallsBackOnLoadError(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	g := NewGame(testOptions(), failingStore{}, zap.New(core))

	assert.Equal(t, storage.DefaultProgression(), g.Progression())
	assert.Equal(t, 1, logs.FilterMessage("loading progression failed, using defaults").Len())
}

func TestKillLevelsUpAndSaves(t *testing.T) {
	store := storage.NewMemoryStore()
	g := NewGame(testOptions(), store, zaptest.NewLogger(t))
	g.World.Player.XP = 8
	cx, cy := g.World.Companion.Center()
	g.World.Enemies = append(g.World.Enemies, entity.NewEnemy(cx+150-24, cy-24))

	for range 20 {
		require.True(t, g.Update(frameMs, input.State{}))
	}

	hud := g.HUD()
	assert.Equal(t, component.LevelingUp, hud.Phase)
	assert.Equal(t, 2, hud.Level)
	assert.Equal(t, 10, hud.Score)
	assert.Equal(t, 5, hud.UnspentPoints)
	assert.Empty(t, g.World.Enemies)
	assert.Equal(t, 1, store.Saves())

	saved, ok, err := store.Load(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, saved.Level)
}

func TestLevelingUpFreezesSimulation(t *testing.T) {
	g := NewGame(testOptions(), storage.NewMemoryStore(), zaptest.NewLogger(t))
	g.World.Enemies = append(g.World.Enemies, entity.NewEnemy(10, 10))
	g.PlayerSystem.GainXP(10)
	require.Equal(t, component.LevelingUp, g.Phase())

	enemyX, playerX, timer := g.World.Enemies[0].X, g.World.Player.X, g.World.Spawn.Timer
	for range 10 {
		assert.True(t, g.Update(frameMs, input.State{Right: true, Fire: true, PointerX: 0, PointerY: 0}))
	}

	assert.Equal(t, enemyX, g.World.Enemies[0].X)
	assert.Equal(t, playerX, g.World.Player.X)
	assert.Equal(t, timer, g.World.Spawn.Timer)
	assert.Empty(t, g.World.Projectiles)

	require.True(t, g.ConfirmLevelUp())
	assert.Equal(t, component.Running, g.Phase())
	assert.False(t, g.ConfirmLevelUp(), "confirm only works from the modal")

	g.Update(frameMs, input.State{Right: true})
	assert.Greater(t, g.World.Player.X, playerX)
}

func TestSpendAttributeSaves(t *testing.T) {
	store := storage.NewMemoryStore()
	g := NewGame(testOptions(), store, zaptest.NewLogger(t))

	assert.False(t, g.SpendAttribute(component.AttributeAttack))
	assert.Zero(t, store.Saves())

	g.PlayerSystem.GainXP(10)
	require.Equal(t, 1, store.Saves())

	assert.True(t, g.SpendAttribute(component.AttributeAttack))
	assert.True(t, g.SpendAttribute(component.AttributeHealth))
	assert.Equal(t, 3, store.Saves())

	saved, _, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, saved.Attack)
	assert.Equal(t, 120, saved.MaxHP)
	assert.Equal(t, 3, saved.UnspentPoints)
}

func TestSaveFailureIsLoggedAndPlayContinues(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	g := NewGame(testOptions(), failingStore{}, zap.New(core))

	g.PlayerSystem.GainXP(10)
	assert.True(t, g.SpendAttribute(component.AttributeSpeed))

	assert.Equal(t, 2, logs.FilterMessage("saving progression failed").Len())
	assert.Equal(t, 5.5, g.World.Player.Speed)
	assert.True(t, g.ConfirmLevelUp())
	assert.True(t, g.Update(frameMs, input.State{}))
}

func TestGameOverStopsTheLoop(t *testing.T) {
	g := NewGame(testOptions(), storage.NewMemoryStore(), zaptest.NewLogger(t))
	p := g.World.Player
	p.HP = 10
	g.World.Enemies = append(g.World.Enemies, entity.NewEnemy(p.X, p.Y))

	assert.True(t, g.Update(frameMs, input.State{}))
	assert.Equal(t, component.GameOver, g.Phase())
	assert.Equal(t, 0, g.HUD().HP)

	x := p.X
	assert.False(t, g.Update(frameMs, input.State{Left: true}))
	assert.Equal(t, x, p.X)
}

func TestRestartUsesSavedProgression(t *testing.T) {
	store := storage.NewMemoryStore()
	g := NewGame(testOptions(), store, zaptest.NewLogger(t))
	g.PlayerSystem.GainXP(10)
	g.World.Player.HP = 0
	g.World.Phase = component.GameOver

	g.Restart()

	assert.Equal(t, component.Running, g.Phase())
	assert.Equal(t, 2, g.HUD().Level)
	assert.Equal(t, 100, g.HUD().HP)
	assert.Zero(t, g.HUD().Score)
	assert.Empty(t, g.World.Enemies)
}

func TestManualFireFromInput(t *testing.T) {
	opts := testOptions()
	opts.AutoFire = false
	g := NewGame(opts, storage.NewMemoryStore(), zaptest.NewLogger(t))

	g.Update(frameMs, input.State{Fire: true, PointerX: 799, PointerY: 300})
	require.Len(t, g.World.Projectiles, 1)
	assert.Greater(t, g.World.Projectiles[0].VX, 0.0)

	g.Update(frameMs, input.State{Fire: true, PointerX: 799, PointerY: 300})
	assert.Len(t, g.World.Projectiles, 1, "magic cooldown gates the second shot")
}

func TestShapesIncludeEveryEntity(t *testing.T) {
	g := NewGame(testOptions(), nil, nil)
	g.World.Enemies = append(g.World.Enemies, entity.NewEnemy(0, 0), entity.NewEnemy(100, 0))

	shapes := g.Shapes()
	assert.Len(t, shapes, 5)
	assert.Equal(t, component.ShapeBackground, shapes[0].Kind)
}
