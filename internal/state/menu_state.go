// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-survivor/internal/config"
)

// MenuState — стартовый экран.
type MenuState struct {
	sm      *StateMachine
	session *Session
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.session))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	hud := m.session.Game.HUD()
	drawCentered(screen, m.session, "SURVIVOR", -40)
	drawCentered(screen, m.session, levelLine(hud.Level), -10)
	drawCentered(screen, m.session, "WASD / arrows to move, click to cast", 20)
	drawCentered(screen, m.session, "Press Space to start", 50)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}

// drawCentered пишет строку по центру экрана со смещением dy.
func drawCentered(screen *ebiten.Image, s *Session, line string, dy int) {
	bounds := text.BoundString(s.FontFace, line)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	y := screen.Bounds().Dy()/2 + dy
	text.Draw(screen, line, s.FontFace, x, y, config.TextLightColor)
}
