// internal/state/input.go
package state

import (
	"go-survivor/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	upKeys    = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	downKeys  = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
	leftKeys  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
)

// pollInput reads the current ebiten keyboard and mouse state.
func pollInput() input.State {
	x, y := ebiten.CursorPosition()
	return input.State{
		Up:       anyPressed(upKeys),
		Down:     anyPressed(downKeys),
		Left:     anyPressed(leftKeys),
		Right:    anyPressed(rightKeys),
		PointerX: float64(x),
		PointerY: float64(y),
		Fire:     inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
