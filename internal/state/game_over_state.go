// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-survivor/internal/config"
)

// Убеждаемся, что GameOverState соответствует интерфейсу State
var _ State = (*GameOverState)(nil)

// GameOverState keeps the last frame on screen and offers a restart.
type GameOverState struct {
	sm            *StateMachine
	session       *Session
	previousState *GameState
}

func NewGameOverState(sm *StateMachine, session *Session, prevState *GameState) *GameOverState {
	return &GameOverState{sm: sm, session: session, previousState: prevState}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.session.Game.Restart()
		s.sm.SetState(NewGameState(s.sm, s.session))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()), config.OverlayColor, false)

	hud := s.session.Game.HUD()
	drawCentered(screen, s.session, "GAME OVER", -30)
	drawCentered(screen, s.session, fmt.Sprintf("Score %d   %s", hud.Score, levelLine(hud.Level)), 0)
	drawCentered(screen, s.session, "Press R to restart", 30)
}

func (s *GameOverState) Exit() {}
