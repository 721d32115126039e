// internal/state/level_up_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-survivor/internal/component"
	"go-survivor/internal/ui"
)

// Убеждаемся, что LevelUpState соответствует интерфейсу State
var _ State = (*LevelUpState)(nil)

var attributeKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// LevelUpState shows the attribute modal over the frozen field until the
// player confirms.
type LevelUpState struct {
	sm            *StateMachine
	session       *Session
	previousState *GameState
}

func NewLevelUpState(sm *StateMachine, session *Session, prevState *GameState) *LevelUpState {
	return &LevelUpState{sm: sm, session: session, previousState: prevState}
}

func (s *LevelUpState) Enter() {
	s.session.Modal.Refresh(s.session.Game.HUD())
}

func (s *LevelUpState) Update(deltaTime float64) {
	game := s.session.Game

	for i, key := range attributeKeys {
		if inpututil.IsKeyJustPressed(key) && i < len(component.Attributes) {
			s.handleAction(string(component.Attributes[i]))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.handleAction(ui.ActionConfirm)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if action, ok := s.session.Modal.ActionAt(x, y); ok {
			s.handleAction(action)
		}
	}

	if game.Phase() != component.LevelingUp {
		s.sm.SetState(s.previousState)
	}
}

func (s *LevelUpState) handleAction(action string) {
	game := s.session.Game
	if action == ui.ActionConfirm {
		game.ConfirmLevelUp()
		return
	}
	if attr, ok := component.ParseAttribute(action); ok {
		game.SpendAttribute(attr)
		s.session.Modal.Refresh(game.HUD())
	}
}

func (s *LevelUpState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	x, y := ebiten.CursorPosition()
	s.session.Modal.Draw(screen, s.session.Game.HUD(), x, y)
}

func (s *LevelUpState) Exit() {}
