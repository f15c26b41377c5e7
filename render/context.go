package render

import "github.com/lixenwraith/sorted/ui"

// Frame is the state painted by one render pass, passed by pointer to every layer
type Frame struct {
	// Bar values and the value that maps to full bar height
	Values   []int
	MaxValue int

	// Indices drawn in the accent color; valid for this frame only
	Highlight []int

	// Sorted paints every bar in the sorted color
	Sorted bool

	Title  string
	Label  string
	Status string

	Buttons []ui.Button

	// Pointer position for hover feedback, -1 when unknown
	PointerX int
	PointerY int
}
