// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-survivor/internal/config"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect     image.Rectangle
	Text     string
	Action   string // attribute name or "confirm"
	Disabled bool
	fontFace font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label, action string, fontFace font.Face) *Button {
	return &Button{
		Rect:     rect,
		Text:     label,
		Action:   action,
		fontFace: fontFace,
	}
}

// Contains reports whether the point lies inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку; hovered подсвечивает её.
func (b *Button) Draw(screen *ebiten.Image, hovered bool) {
	var bg color.Color = config.ButtonColor
	switch {
	case b.Disabled:
		bg = config.ButtonDisableColor
	case hovered:
		bg = config.ButtonHoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 1, config.StrokeColor, true)

	textBounds := text.BoundString(b.fontFace, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-textBounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-textBounds.Dy())/2 - textBounds.Min.Y
	text.Draw(screen, b.Text, b.fontFace, textX, textY, config.TextLightColor)
}
