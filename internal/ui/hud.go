// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
)

const (
	barWidth    = 200
	barHeight   = 14
	barGap      = 8
	hudMargin   = 10
	borderWidth = 1
)

// HUD рисует полосы здоровья и опыта, уровень и счёт.
type HUD struct {
	X, Y     float32
	fontFace font.Face
}

// NewHUD создает HUD в левом верхнем углу.
func NewHUD(fontFace font.Face) *HUD {
	return &HUD{X: hudMargin, Y: hudMargin, fontFace: fontFace}
}

// HealthBarColor switches to the warning color below the low-health ratio.
func HealthBarColor(ratio float64) color.RGBA {
	if ratio < config.LowHealthRatio {
		return config.LowHealthBarColor
	}
	return config.HealthBarColor
}

func (h *HUD) Draw(screen *ebiten.Image, hud component.HUD) {
	hpRatio := hud.HealthRatio()
	h.drawBar(screen, h.Y, hpRatio, HealthBarColor(hpRatio))
	h.drawLabel(screen, h.Y, fmt.Sprintf("HP %d/%d", hud.HP, hud.MaxHP))

	xpY := h.Y + barHeight + barGap
	h.drawBar(screen, xpY, hud.XPRatio(), config.XPBarColor)
	h.drawLabel(screen, xpY, fmt.Sprintf("XP %d/%d", hud.XP, hud.XPToNextLevel))

	infoY := int(xpY + barHeight + barGap + 12)
	text.Draw(screen, fmt.Sprintf("Level %d", hud.Level), h.fontFace, int(h.X), infoY, config.TextLightColor)

	score := fmt.Sprintf("Score %d", hud.Score)
	scoreWidth := text.BoundString(h.fontFace, score).Dx()
	text.Draw(screen, score, h.fontFace, screen.Bounds().Dx()-scoreWidth-hudMargin, int(h.Y)+12, config.TextLightColor)
}

func (h *HUD) drawBar(screen *ebiten.Image, y float32, ratio float64, fill color.RGBA) {
	vector.StrokeRect(screen, h.X, y, barWidth, barHeight, borderWidth, config.StrokeColor, true)
	fillWidth := float32(float64(barWidth-borderWidth*2) * ratio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, h.X+borderWidth, y+borderWidth, fillWidth, barHeight-borderWidth*2, fill, true)
	}
}

func (h *HUD) drawLabel(screen *ebiten.Image, y float32, label string) {
	text.Draw(screen, label, h.fontFace, int(h.X)+barWidth+barGap, int(y)+barHeight-2, config.TextLightColor)
}
