package app

import (
	"context"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/sorted/constants"
	"github.com/lixenwraith/sorted/sorts"
	"github.com/lixenwraith/sorted/ui"
)

// Run is the driver loop. It returns nil on an exit request, a closed event
// channel or ctx cancellation.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.cfg.FrameInterval())
	defer ticker.Stop()

	a.drawIdle()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-a.events:
			if !ok {
				return nil
			}
			a.HandleEvent(ctx, ev)
			if a.quit {
				return nil
			}

		case <-ticker.C:
			a.drawIdle()
		}
	}
}

// HandleEvent processes one input event while idle
func (a *App) HandleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isExit(ev) {
			a.quit = true
			return
		}
		if ev.Key() == tcell.KeyRune {
			r := unicode.ToLower(ev.Rune())
			if r == constants.MuteKey {
				a.toggleMute()
				return
			}
			if act, ok := ui.ForKey(a.buttons, r); ok {
				a.Dispatch(ctx, act)
			}
		}

	case *tcell.EventMouse:
		a.pointerX, a.pointerY = ev.Position()
		down := ev.Buttons()&tcell.Button1 != 0
		edge := down && !a.pressed
		a.pressed = down
		if !edge || a.state.Sorting() {
			return
		}
		for _, b := range a.buttons {
			if act, ok := b.HandleClick(ev); ok {
				a.Dispatch(ctx, act)
				return
			}
		}

	case *tcell.EventResize:
		a.resize()
	}
}

// Press maps a primary button press at (x, y) to a button action.
// Presses are ignored while a sort is running.
func (a *App) Press(x, y int) (ui.Action, bool) {
	if a.state.Sorting() {
		return ui.Action{}, false
	}
	ev := tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)
	for _, b := range a.buttons {
		if act, ok := b.HandleClick(ev); ok {
			return act, true
		}
	}
	return ui.Action{}, false
}

// Dispatch performs act synchronously. Actions are ignored while sorting.
func (a *App) Dispatch(ctx context.Context, act ui.Action) {
	if a.state.Sorting() {
		return
	}
	switch act.Kind {
	case ui.ActionRun:
		if err := a.RunAlgorithm(ctx, act.Algorithm); err != nil && !errors.Is(err, sorts.ErrAborted) {
			a.log.WithError(err).Warn("sort not started")
		}
	case ui.ActionRegenerate:
		a.Regenerate()
	}
}

// RunAlgorithm sorts the array with the given algorithm, rendering every step.
// It returns sorts.ErrAborted when exit was requested mid-sort.
func (a *App) RunAlgorithm(ctx context.Context, id sorts.ID) error {
	if a.state.Sorting() {
		return errors.Errorf("%s already running", a.state.Algorithm.Name)
	}
	algo, ok := sorts.Lookup(id)
	if !ok {
		return errors.Errorf("unknown algorithm %d", id)
	}

	a.state = State{Phase: Sorting, Algorithm: algo}
	a.label = algo.Label
	a.steps = 0
	a.sorted = false

	log := a.log.WithField("algorithm", algo.Name)
	log.WithField("size", a.store.Len()).Debug("sort started")
	start := a.clock.Now()

	err := algo.Run(a.store, a.stepFunc(ctx))
	a.state = State{}

	if err != nil {
		log.WithError(err).WithField("steps", a.steps).Info("sort stopped")
		return err
	}

	a.sorted = true
	a.sound.PlayComplete()
	log.WithFields(logrus.Fields{
		"steps":   a.steps,
		"elapsed": a.clock.Now().Sub(start).String(),
	}).Info("sort finished")
	return nil
}

// Regenerate replaces the array with fresh random values
func (a *App) Regenerate() {
	a.store.Generate(a.cfg.ArraySize, a.cfg.MinValue, a.cfg.MaxValue)
	a.label = ""
	a.steps = 0
	a.sorted = false
	a.log.WithField("size", a.cfg.ArraySize).Debug("array regenerated")
}
