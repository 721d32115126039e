// internal/state/session.go
package state

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-survivor/internal/app"
	"go-survivor/internal/config"
	"go-survivor/internal/ui"
	"go-survivor/pkg/render"
)

// Session bundles the game logic with the drawing helpers every state shares.
type Session struct {
	Game     *app.Game
	Renderer *render.ShapeRenderer
	HUD      *ui.HUD
	Modal    *ui.LevelUpModal
	FontFace font.Face
}

// NewSession wires the renderer and widgets around a game.
func NewSession(game *app.Game, screenW, screenH int) *Session {
	fontFace := basicfont.Face7x13
	palette := &render.Palette{
		BackgroundColor: config.BackgroundColor,
		TileLightColor:  config.TileLightColor,
		TileDarkColor:   config.TileDarkColor,
		PlayerColor:     config.PlayerColor,
		CompanionColor:  config.CompanionColor,
		EnemyColor:      config.EnemyColor,
		ProjectileColor: config.ProjectileColor,
		StrokeColor:     config.StrokeColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}
	return &Session{
		Game:     game,
		Renderer: render.NewShapeRenderer(palette, config.TileSize),
		HUD:      ui.NewHUD(fontFace),
		Modal:    ui.NewLevelUpModal(screenW, screenH, fontFace),
		FontFace: fontFace,
	}
}
