package ui

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/sorted/constants"
	"github.com/lixenwraith/sorted/sorts"
)

// Layout places one button per algorithm plus the regenerate button left to right
// starting at row top, wrapping onto new rows when width is exhausted
func Layout(width, top int, algos []sorts.Algorithm) []Button {
	buttons := make([]Button, 0, len(algos)+1)
	for _, a := range algos {
		buttons = append(buttons, Button{
			Label:  a.Name,
			Key:    a.Key(),
			Action: RunAction(a.ID),
		})
	}
	buttons = append(buttons, Button{
		Label:  constants.RegenerateLabel,
		Key:    constants.RegenerateKey,
		Action: RegenerateAction(),
	})

	x, y := constants.MarginLeft, top
	for i := range buttons {
		w := runewidth.StringWidth(buttons[i].Caption()) + 2*constants.ButtonPadding
		if x > constants.MarginLeft && x+w > width {
			x = constants.MarginLeft
			y += constants.ButtonHeight + 1
		}
		if w > width-x {
			w = max(width-x, 0)
		}
		buttons[i].Rect = Rect{X: x, Y: y, W: w, H: constants.ButtonHeight}
		x += w + constants.ButtonGap
	}
	return buttons
}

// Bottom returns the first row below all buttons
func Bottom(buttons []Button) int {
	bottom := 0
	for _, b := range buttons {
		bottom = max(bottom, b.Rect.Bottom())
	}
	return bottom
}

// ForKey returns the action of the button bound to the shortcut r
func ForKey(buttons []Button, r rune) (Action, bool) {
	for _, b := range buttons {
		if b.Key != 0 && b.Key == r {
			return b.Action, true
		}
	}
	return Action{}, false
}
