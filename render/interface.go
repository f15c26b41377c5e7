package render

import "github.com/gdamore/tcell/v2"

// Layer is one stage of the frame pipeline
type Layer interface {
	Render(f *Frame, s tcell.Screen)
}

// LayerFunc adapts a function to Layer
type LayerFunc func(f *Frame, s tcell.Screen)

// Render implements Layer
func (fn LayerFunc) Render(f *Frame, s tcell.Screen) {
	fn(f, s)
}
