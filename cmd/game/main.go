// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"go-survivor/internal/app"
	"go-survivor/internal/config"
	"go-survivor/internal/observability"
	"go-survivor/internal/state"
	"go-survivor/internal/storage"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(settings.Logging)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("session", uuid.NewString()))

	if settings.Debug.PprofAddr != "" {
		go func() {
			logger.Info("pprof listening", zap.String("addr", settings.Debug.PprofAddr))
			if err := http.ListenAndServe(settings.Debug.PprofAddr, nil); err != nil {
				logger.Warn("pprof stopped", zap.Error(err))
			}
		}()
	}

	store, closeStore, err := openStore(settings, logger)
	if err != nil {
		logger.Fatal("opening save store", zap.Error(err))
	}
	defer closeStore()

	game := app.NewGame(app.OptionsFromSettings(settings), store, logger)
	session := state.NewSession(game, settings.Field.Width, settings.Field.Height)

	sm := state.NewStateMachine(logger) // Создаём машину состояний
	if settings.Game.StartInMenu {
		sm.SetState(state.NewMenuState(sm, session)) // Устанавливаем состояние меню
	} else {
		sm.SetState(state.NewGameState(sm, session)) // Устанавливаем состояние игры
	}
	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          settings.Field.Width,
		height:         settings.Field.Height,
	}

	ebiten.SetWindowSize(settings.Field.Width, settings.Field.Height)
	ebiten.SetWindowTitle("Survivor")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}

// openStore builds the configured progression store and its cleanup.
func openStore(settings config.Settings, logger *zap.Logger) (storage.Store, func(), error) {
	noop := func() {}
	switch settings.Save.Backend {
	case "memory":
		return storage.NewMemoryStore(), noop, nil
	case "file":
		store, err := storage.NewFileStore(settings.Save.Path)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("using file save", zap.String("path", store.Path()))
		return store, noop, nil
	case "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pool, err := storage.NewPool(ctx, settings.Database)
		if err != nil {
			return nil, noop, err
		}
		store := storage.NewPostgresStore(pool, settings.Save.Slot)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		logger.Info("using postgres save",
			zap.String("host", settings.Database.Host),
			zap.String("slot", settings.Save.Slot),
		)
		return store, pool.Close, nil
	default:
		return nil, noop, storage.ErrUnsupportedFormat
	}
}
