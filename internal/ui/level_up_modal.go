// internal/ui/level_up_modal.go
package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
)

const (
	modalWidth    = 320
	modalHeight   = 300
	modalBtnW     = 260
	modalBtnH     = 32
	modalBtnGap   = 10
	modalPadding  = 20
	ActionConfirm = "confirm"
)

// LevelUpModal — окно распределения очков после повышения уровня.
// Its buttons carry attribute names as actions plus a confirm button.
type LevelUpModal struct {
	Rect     image.Rectangle
	Buttons  []*Button
	fontFace font.Face
}

// NewLevelUpModal centres the modal on a screen of the given size.
func NewLevelUpModal(screenW, screenH int, fontFace font.Face) *LevelUpModal {
	x := (screenW - modalWidth) / 2
	y := (screenH - modalHeight) / 2
	m := &LevelUpModal{
		Rect:     image.Rect(x, y, x+modalWidth, y+modalHeight),
		fontFace: fontFace,
	}

	btnX := x + (modalWidth-modalBtnW)/2
	btnY := y + modalPadding + 40
	for i, attr := range component.Attributes {
		top := btnY + i*(modalBtnH+modalBtnGap)
		m.Buttons = append(m.Buttons, NewButton(image.Rect(btnX, top, btnX+modalBtnW, top+modalBtnH), "", string(attr), fontFace))
	}
	top := btnY + len(component.Attributes)*(modalBtnH+modalBtnGap) + modalBtnGap
	m.Buttons = append(m.Buttons, NewButton(image.Rect(btnX, top, btnX+modalBtnW, top+modalBtnH), "Continue (Enter)", ActionConfirm, fontFace))
	return m
}

// ActionAt returns the action of the enabled button under (x, y).
func (m *LevelUpModal) ActionAt(x, y int) (string, bool) {
	for _, b := range m.Buttons {
		if !b.Disabled && b.Contains(x, y) {
			return b.Action, true
		}
	}
	return "", false
}

// Refresh relabels the buttons from the current stats and disables spending
// without points.
func (m *LevelUpModal) Refresh(hud component.HUD) {
	for i, b := range m.Buttons {
		if b.Action == ActionConfirm {
			continue
		}
		b.Disabled = hud.UnspentPoints <= 0
		switch component.Attribute(b.Action) {
		case component.AttributeAttack:
			b.Text = fmt.Sprintf("%d. Attack %d (+%d)", i+1, hud.Attack, config.AttackPerPoint)
		case component.AttributeHealth:
			b.Text = fmt.Sprintf("%d. Health %d (+%d)", i+1, hud.MaxHP, config.HealthPerPoint)
		case component.AttributeSpeed:
			b.Text = fmt.Sprintf("%d. Speed %.1f (+%.1f)", i+1, hud.BaseSpeed, config.SpeedPerPoint)
		case component.AttributeMagic:
			b.Text = fmt.Sprintf("%d. Magic %dms (-%d)", i+1, hud.Magic, config.MagicPerPoint)
			if hud.Magic-config.MagicPerPoint < config.MinMagicCooldown {
				b.Disabled = true
			}
		}
	}
}

func (m *LevelUpModal) Draw(screen *ebiten.Image, hud component.HUD, cursorX, cursorY int) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(sw), float32(sh), config.OverlayColor, false)

	x, y := float32(m.Rect.Min.X), float32(m.Rect.Min.Y)
	vector.DrawFilledRect(screen, x, y, modalWidth, modalHeight, config.BackgroundColor, true)
	vector.StrokeRect(screen, x, y, modalWidth, modalHeight, 2, config.StrokeColor, true)

	title := fmt.Sprintf("Level %d! Points: %d", hud.Level, hud.UnspentPoints)
	titleBounds := text.BoundString(m.fontFace, title)
	titleX := m.Rect.Min.X + (modalWidth-titleBounds.Dx())/2
	text.Draw(screen, title, m.fontFace, titleX, m.Rect.Min.Y+modalPadding+12, config.TextLightColor)

	for _, b := range m.Buttons {
		b.Draw(screen, b.Contains(cursorX, cursorY))
	}
}
