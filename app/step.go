package app

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sorted/sorts"
)

// stepFunc returns the emitter handed to a sort. It aborts the sort once ctx is
// done or an exit request arrives.
func (a *App) stepFunc(ctx context.Context) sorts.StepFunc {
	return func(highlight ...int) error {
		if ctx.Err() != nil || a.drainForExit() {
			return sorts.ErrAborted
		}
		return a.step(highlight)
	}
}

// step paints one frame with highlight, plays its tone and waits the step delay
func (a *App) step(highlight []int) error {
	a.steps++
	a.renderer.RenderFrame(a.frame(highlight))
	if len(highlight) > 0 {
		a.sound.PlayStep(a.store.Get(highlight[0]), a.cfg.MinValue, a.cfg.MaxValue)
	}
	a.clock.Sleep(a.cfg.StepDelay.Duration)
	return nil
}

// drainForExit consumes pending events without blocking and reports whether exit was
// requested. Pointer and resize updates are applied; presses and keys are discarded.
func (a *App) drainForExit() bool {
	for {
		select {
		case ev, ok := <-a.events:
			if !ok {
				a.quit = true
				return true
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isExit(ev) {
					a.quit = true
					return true
				}
			case *tcell.EventMouse:
				a.pointerX, a.pointerY = ev.Position()
				a.pressed = ev.Buttons()&tcell.Button1 != 0
			case *tcell.EventResize:
				a.resize()
			}
		default:
			return false
		}
	}
}

// isExit reports whether the key requests program exit
func isExit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
