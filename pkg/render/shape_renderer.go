// pkg/render/shape_renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-survivor/internal/component"
)

// ShapeRenderer draws the simulation's shape list onto the screen.
type ShapeRenderer struct {
	palette  *Palette
	tileSize float32

	background *ebiten.Image // cached checkerboard of the field
	bgW, bgH   int
}

// NewShapeRenderer creates a renderer for tiles of tileSize pixels.
func NewShapeRenderer(palette *Palette, tileSize float64) *ShapeRenderer {
	return &ShapeRenderer{
		palette:  palette,
		tileSize: float32(tileSize),
	}
}

// Draw renders shapes back to front.
func (r *ShapeRenderer) Draw(screen *ebiten.Image, shapes []component.Shape) {
	for _, s := range shapes {
		switch s.Kind {
		case component.ShapeBackground:
			r.drawBackground(screen, int(s.Width), int(s.Height))
		case component.ShapePlayer:
			r.drawBox(screen, s, r.palette.PlayerColor)
		case component.ShapeCompanion:
			r.drawBox(screen, s, r.palette.CompanionColor)
		case component.ShapeEnemy:
			r.drawBox(screen, s, r.palette.EnemyColor)
		case component.ShapeProjectile:
			vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), float32(s.Radius), r.palette.ProjectileColor, true)
		}
	}
}

func (r *ShapeRenderer) drawBox(screen *ebiten.Image, s component.Shape, fill color.RGBA) {
	x, y, size := float32(s.X), float32(s.Y), float32(s.Size)
	vector.DrawFilledRect(screen, x, y, size, size, fill, true)
	vector.StrokeRect(screen, x, y, size, size, r.palette.StrokeWidth, DarkenColor(fill), true)
}

// drawBackground перерисовывает кэш только при смене размера поля.
func (r *ShapeRenderer) drawBackground(screen *ebiten.Image, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if r.background == nil || r.bgW != w || r.bgH != h {
		r.renderBackground(w, h)
	}
	screen.DrawImage(r.background, nil)
}

func (r *ShapeRenderer) renderBackground(w, h int) {
	if r.background != nil {
		r.background.Deallocate()
	}
	r.background = ebiten.NewImage(w, h)
	r.bgW, r.bgH = w, h
	r.background.Fill(r.palette.BackgroundColor)

	cols := int(float32(w)/r.tileSize) + 1
	rows := int(float32(h)/r.tileSize) + 1
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := r.palette.TileLightColor
			if (row+col)%2 == 1 {
				c = r.palette.TileDarkColor
			}
			x := float32(col) * r.tileSize
			y := float32(row) * r.tileSize
			vector.DrawFilledRect(r.background, x, y, r.tileSize, r.tileSize, c, false)
		}
	}
}
