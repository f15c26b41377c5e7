package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/sorted/sorts"
)

// ActionKind classifies what a button does
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionRun
	ActionRegenerate
)

// Action is the command bound to a button
type Action struct {
	Kind      ActionKind
	Algorithm sorts.ID // set for ActionRun
}

// RunAction returns the action that starts the given algorithm
func RunAction(id sorts.ID) Action {
	return Action{Kind: ActionRun, Algorithm: id}
}

// RegenerateAction returns the action that replaces the array
func RegenerateAction() Action {
	return Action{Kind: ActionRegenerate}
}

// Button is a fixed clickable region with a centered label
type Button struct {
	Rect   Rect
	Label  string
	Key    rune // keyboard shortcut, 0 for none
	Action Action
}

// Contains reports whether the cell (x, y) is inside the button
func (b Button) Contains(x, y int) bool {
	return b.Rect.Contains(x, y)
}

// Caption returns the rendered text: shortcut hint followed by the label
func (b Button) Caption() string {
	if b.Key == 0 {
		return b.Label
	}
	return string(b.Key) + " " + b.Label
}

// HandleClick returns the bound action iff ev is a primary button press inside the button
func (b Button) HandleClick(ev *tcell.EventMouse) (Action, bool) {
	if ev == nil || ev.Buttons()&tcell.Button1 == 0 {
		return Action{}, false
	}
	x, y := ev.Position()
	if !b.Contains(x, y) {
		return Action{}, false
	}
	return b.Action, true
}

// Render draws the button, in hover color when the pointer is inside it
func (b Button) Render(s tcell.Screen, pointerX, pointerY int, style ButtonStyle) {
	if b.Rect.Empty() {
		return
	}

	bg := style.Bg
	if b.Contains(pointerX, pointerY) {
		bg = style.HoverBg
	}
	base := tcell.StyleDefault.Background(bg).Foreground(style.Fg)

	for y := b.Rect.Y; y < b.Rect.Bottom(); y++ {
		for x := b.Rect.X; x < b.Rect.Right(); x++ {
			s.SetContent(x, y, ' ', nil, base)
		}
	}

	caption := runewidth.Truncate(b.Caption(), b.Rect.W, "")
	x := b.Rect.X + (b.Rect.W-runewidth.StringWidth(caption))/2
	y := b.Rect.Y + b.Rect.H/2

	keyCells := 0
	if b.Key != 0 {
		keyCells = runewidth.RuneWidth(b.Key)
	}
	for _, r := range caption {
		st := base
		if keyCells > 0 {
			st = base.Foreground(style.KeyFg)
			keyCells -= runewidth.RuneWidth(r)
		}
		s.SetContent(x, y, r, nil, st)
		x += runewidth.RuneWidth(r)
	}
}
