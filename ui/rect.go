// Package ui provides the clickable controls of the visualizer.
package ui

// Rect is a rectangular cell area; X/Y is the top-left corner
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether the cell (x, y) lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Right returns the first column past the rectangle
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
