package render

import "github.com/gdamore/tcell/v2"

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen   tcell.Screen
	layers   []layerEntry
	regCount int
}

// NewRenderOrchestrator creates an empty pipeline drawing to screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen: screen,
		layers: make([]layerEntry, 0, 8),
	}
}

// NewDefault creates the visualizer pipeline: background, bars, header, buttons
func NewDefault(screen tcell.Screen, theme Theme) *RenderOrchestrator {
	o := NewRenderOrchestrator(screen)
	o.Register(backgroundLayer(theme), PriorityBackground)
	o.Register(barsLayer(theme), PriorityBars)
	o.Register(headerLayer(theme), PriorityHeader)
	o.Register(buttonsLayer(theme), PriorityUI)
	return o
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(l Layer, priority RenderPriority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// Resize resyncs the screen after a terminal resize
func (o *RenderOrchestrator) Resize() {
	o.screen.Sync()
}

// RenderFrame runs every layer in priority order, then flips the screen
func (o *RenderOrchestrator) RenderFrame(f *Frame) {
	for _, entry := range o.layers {
		entry.layer.Render(f, o.screen)
	}
	o.screen.Show()
}
