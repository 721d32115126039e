// internal/app/game.go
package app

import (
	"context"

	"go.uber.org/zap"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/input"
	"go-survivor/internal/storage"
	"go-survivor/internal/system"
	"go-survivor/internal/utils"
)

// Options are the session parameters taken from the runtime settings.
type Options struct {
	FieldWidth     float64
	FieldHeight    float64
	AutoFire       bool
	FireIntervalMs float64
	Seed           int64 // 0 picks a time based seed
}

// OptionsFromSettings maps runtime settings onto session options.
func OptionsFromSettings(s config.Settings) Options {
	return Options{
		FieldWidth:     float64(s.Field.Width),
		FieldHeight:    float64(s.Field.Height),
		AutoFire:       s.Companion.AutoFire,
		FireIntervalMs: s.Companion.FireIntervalMs,
		Seed:           s.Game.Seed,
	}
}

// Game holds the main game state and logic of one session.
type Game struct {
	World *entity.World

	SpawnSystem      *system.SpawnSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ContactSystem    *system.ContactSystem
	ProjectileSystem *system.ProjectileSystem
	PlayerSystem     *system.PlayerSystem
	RenderSystem     *system.RenderSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService

	opts   Options
	store  storage.Store
	logger *zap.Logger
}

// NewGame loads the saved progression from store and starts a session with it.
// A missing or unreadable save starts from the default progression.
func NewGame(opts Options, store storage.Store, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Game{
		opts:   opts,
		store:  store,
		logger: logger,
		Rng:    utils.NewPRNGService(opts.Seed),
	}
	g.logger.Info("session rng seeded", zap.Int64("seed", g.Rng.Seed()))
	g.start(g.loadProgression())
	return g
}

// Restart begins a fresh session from the last saved progression.
func (g *Game) Restart() {
	g.logger.Info("restarting session")
	g.start(g.loadProgression())
}

func (g *Game) start(prog component.Progression) {
	g.World = entity.NewWorld(g.opts.FieldWidth, g.opts.FieldHeight, prog)
	g.EventDispatcher = event.NewDispatcher()

	g.SpawnSystem = system.NewSpawnSystem(g.World, g.Rng, g.EventDispatcher)
	g.MovementSystem = system.NewMovementSystem(g.World)
	g.CombatSystem = system.NewCombatSystem(g.World, g.EventDispatcher, g.opts.AutoFire, g.opts.FireIntervalMs)
	g.ContactSystem = system.NewContactSystem(g.World, g.EventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(g.World, g.EventDispatcher)
	g.PlayerSystem = system.NewPlayerSystem(g.World, g.EventDispatcher)
	g.RenderSystem = system.NewRenderSystem(g.World)

	g.EventDispatcher.Subscribe(event.EnemyKilled, g.PlayerSystem)

	saver := &persistenceListener{game: g}
	g.EventDispatcher.Subscribe(event.PlayerLeveledUp, saver)
	g.EventDispatcher.Subscribe(event.AttributeSpent, saver)

	logListener := &logListener{game: g}
	for _, t := range []event.EventType{
		event.EnemySpawned, event.EnemyKilled, event.PlayerLeveledUp,
		event.AttributeSpent, event.LevelUpConfirmed, event.GameOver,
	} {
		g.EventDispatcher.Subscribe(t, logListener)
	}
}

func (g *Game) loadProgression() component.Progression {
	if g.store == nil {
		return storage.DefaultProgression()
	}
	prog, ok, err := g.store.Load(context.Background())
	switch {
	case err != nil:
		g.logger.Warn("loading progression failed, using defaults", zap.Error(err))
		return storage.DefaultProgression()
	case !ok:
		g.logger.Info("no saved progression, using defaults")
		return storage.DefaultProgression()
	}
	g.logger.Info("progression loaded",
		zap.Int("level", prog.Level),
		zap.Int("xp", prog.XP),
		zap.Int("unspentPoints", prog.UnspentPoints),
	)
	return prog
}

// Update progresses the game by elapsedMs. It reports false once the session is
// over and the caller should stop driving it. While the level-up modal is open
// nothing advances.
func (g *Game) Update(elapsedMs float64, in input.State) bool {
	switch g.World.Phase {
	case component.GameOver:
		return false
	case component.LevelingUp:
		return true
	}

	g.CombatSystem.Cooldown(elapsedMs)
	if in.Fire {
		g.CombatSystem.ManualFire(in.PointerX, in.PointerY)
	}
	g.SpawnSystem.Update(elapsedMs)
	g.MovementSystem.Update(in)
	g.CombatSystem.Update(elapsedMs)
	g.ContactSystem.Update()
	g.ProjectileSystem.Update()
	return true
}

// SpendAttribute spends one unspent point on attr.
func (g *Game) SpendAttribute(attr component.Attribute) bool {
	return g.PlayerSystem.Spend(attr)
}

// ConfirmLevelUp closes the level-up modal and resumes the session.
func (g *Game) ConfirmLevelUp() bool {
	if g.World.Phase != component.LevelingUp {
		return false
	}
	g.World.Phase = component.Running
	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelUpConfirmed})
	return true
}

// Phase returns the current session phase.
func (g *Game) Phase() component.Phase {
	return g.World.Phase
}

// HUD returns the per-frame snapshot for the UI.
func (g *Game) HUD() component.HUD {
	p := g.World.Player
	return component.HUD{
		HP:            p.HP,
		MaxHP:         p.MaxHP,
		Level:         p.Level,
		XP:            p.XP,
		XPToNextLevel: p.XPToNextLevel,
		Score:         g.World.Score,
		UnspentPoints: p.UnspentPoints,
		Attack:        p.Attack,
		BaseSpeed:     p.BaseSpeed,
		Magic:         p.Magic,
		Phase:         g.World.Phase,
	}
}

// Shapes returns this frame's draw commands.
func (g *Game) Shapes() []component.Shape {
	return g.RenderSystem.Shapes()
}

// Progression returns the player's current persistent state.
func (g *Game) Progression() component.Progression {
	return g.World.Player.Progression
}
