// internal/component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — смещение за один тик
type Velocity struct {
	VX, VY float64
}
