// pkg/render/color.go
package render

import "image/color"

// Palette holds all the colors needed to draw the field and its entities.
type Palette struct {
	BackgroundColor color.RGBA
	TileLightColor  color.RGBA
	TileDarkColor   color.RGBA
	PlayerColor     color.RGBA
	CompanionColor  color.RGBA
	EnemyColor      color.RGBA
	ProjectileColor color.RGBA
	StrokeColor     color.RGBA
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
