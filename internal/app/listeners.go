// internal/app/listeners.go
package app

import (
	"context"

	"go.uber.org/zap"

	"go-survivor/internal/component"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
)

// persistenceListener saves the progression on every level-up and attribute
// spend before the dispatch returns.
type persistenceListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *persistenceListener) OnEvent(e event.Event) {
	if l.game.store == nil {
		return
	}
	prog := l.game.Progression()
	if err := l.game.store.Save(context.Background(), prog); err != nil {
		l.game.logger.Error("saving progression failed",
			zap.String("trigger", string(e.Type)),
			zap.Error(err),
		)
		return
	}
	l.game.logger.Debug("progression saved",
		zap.String("trigger", string(e.Type)),
		zap.Int("level", prog.Level),
	)
}

// logListener пишет игровые события в журнал.
type logListener struct {
	game *Game
}

func (l *logListener) OnEvent(e event.Event) {
	log := l.game.logger
	w := l.game.World
	switch e.Type {
	case event.EnemySpawned:
		log.Debug("enemy spawned",
			zap.Int("enemies", len(w.Enemies)),
			zap.Float64("spawnIntervalMs", w.Spawn.Interval),
		)
	case event.EnemyKilled:
		if enemy, ok := e.Data.(*entity.Enemy); ok {
			log.Debug("enemy killed", zap.Int("xp", enemy.XPValue), zap.Int("score", w.Score))
		}
	case event.PlayerLeveledUp:
		log.Info("player leveled up",
			zap.Int("level", w.Player.Level),
			zap.Int("xpToNextLevel", w.Player.XPToNextLevel),
			zap.Int("unspentPoints", w.Player.UnspentPoints),
		)
	case event.AttributeSpent:
		if attr, ok := e.Data.(component.Attribute); ok {
			log.Info("attribute spent",
				zap.String("attribute", string(attr)),
				zap.Int("unspentPoints", w.Player.UnspentPoints),
			)
		}
	case event.LevelUpConfirmed:
		log.Debug("level-up confirmed")
	case event.GameOver:
		log.Info("game over",
			zap.Int("score", w.Score),
			zap.Int("level", w.Player.Level),
		)
	}
}
