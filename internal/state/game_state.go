// internal/state/game_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-survivor/internal/component"
)

// Убеждаемся, что GameState соответствует интерфейсу State
var _ State = (*GameState)(nil)

// GameState — состояние игры
type GameState struct {
	sm      *StateMachine
	session *Session
}

func NewGameState(sm *StateMachine, session *Session) *GameState {
	return &GameState{sm: sm, session: session}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	game := g.session.Game
	alive := game.Update(deltaTime*1000, pollInput())

	switch {
	case !alive || game.Phase() == component.GameOver:
		g.sm.SetState(NewGameOverState(g.sm, g.session, g))
	case game.Phase() == component.LevelingUp:
		g.sm.SetState(NewLevelUpState(g.sm, g.session, g))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.session.Renderer.Draw(screen, g.session.Game.Shapes())
	g.session.HUD.Draw(screen, g.session.Game.HUD())
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}

func levelLine(level int) string {
	return fmt.Sprintf("Level %d", level)
}
