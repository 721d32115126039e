// Package input defines the per-frame input snapshot consumed by the simulation.
package input

// State is what the simulation sees of the keyboard and pointer for one frame.
type State struct {
	Up, Down, Left, Right bool

	PointerX, PointerY float64
	// Fire is set on the frame the fire trigger was pressed.
	Fire bool
}
