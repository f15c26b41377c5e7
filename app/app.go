// Package app drives the visualizer: it owns the array, the sort state machine and
// the buttons, runs the idle frame loop and supplies the step callback sorts render
// through.
package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/sorted/array"
	"github.com/lixenwraith/sorted/config"
	"github.com/lixenwraith/sorted/constants"
	"github.com/lixenwraith/sorted/render"
	"github.com/lixenwraith/sorted/sorts"
	"github.com/lixenwraith/sorted/ui"
)

// Sound receives step and completion cues
type Sound interface {
	PlayStep(value, lo, hi int)
	PlayComplete()
	SetMuted(muted bool)
	Muted() bool
}

// silent stands in when audio is disabled or failed to start; it is always muted
type silent struct{}

func (silent) PlayStep(int, int, int) {}
func (silent) PlayComplete()          {}
func (silent) SetMuted(bool)          {}
func (silent) Muted() bool            { return true }

// App is the whole application state, owned by the driver loop
type App struct {
	cfg    config.Config
	screen tcell.Screen
	events <-chan tcell.Event

	store    *array.Store
	renderer *render.RenderOrchestrator
	buttons  []ui.Button
	sound    Sound
	clock    Clock
	log      logrus.FieldLogger

	state  State
	label  string
	steps  int
	sorted bool

	pointerX, pointerY int
	pressed            bool // primary button held at the last mouse event
	quit               bool
}

// Option configures an App
type Option func(*App)

// WithSound sets the step sonifier
func WithSound(s Sound) Option {
	return func(a *App) {
		if s != nil {
			a.sound = s
		}
	}
}

// WithClock replaces the system clock
func WithClock(c Clock) Option {
	return func(a *App) {
		a.clock = c
	}
}

// WithLogger sets the logger
func WithLogger(l logrus.FieldLogger) Option {
	return func(a *App) {
		a.log = l
	}
}

// WithStore supplies a prepared array instead of generating one
func WithStore(s *array.Store) Option {
	return func(a *App) {
		a.store = s
	}
}

// New creates an idle app drawing to screen and consuming events.
// The screen must already be initialized.
func New(cfg config.Config, screen tcell.Screen, events <-chan tcell.Event, opts ...Option) *App {
	a := &App{
		cfg:      cfg,
		screen:   screen,
		events:   events,
		renderer: render.NewDefault(screen, render.DefaultTheme()),
		sound:    silent{},
		clock:    SystemClock{},
		log:      logrus.StandardLogger(),
		pointerX: -1,
		pointerY: -1,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.store == nil {
		var storeOpts []array.Option
		if cfg.Seed != 0 {
			storeOpts = append(storeOpts, array.WithSeed(cfg.Seed))
		}
		a.store = array.New(storeOpts...)
		a.store.Generate(cfg.ArraySize, cfg.MinValue, cfg.MaxValue)
	}

	a.layout()
	return a
}

// State returns the current sort state
func (a *App) State() State {
	return a.state
}

// Store returns the array being visualized
func (a *App) Store() *array.Store {
	return a.store
}

// Buttons returns the current button layout
func (a *App) Buttons() []ui.Button {
	return a.buttons
}

// Steps returns the step count of the running or last sort
func (a *App) Steps() int {
	return a.steps
}

// Quit reports whether an exit was requested
func (a *App) Quit() bool {
	return a.quit
}

func (a *App) layout() {
	w, _ := a.screen.Size()
	a.buttons = ui.Layout(w, constants.ButtonTop, sorts.All())
}

func (a *App) resize() {
	a.renderer.Resize()
	a.layout()
}

func (a *App) frame(highlight []int) *render.Frame {
	return &render.Frame{
		Values:    a.store.Values(),
		MaxValue:  a.cfg.MaxValue,
		Highlight: highlight,
		Sorted:    a.sorted && !a.state.Sorting(),
		Title:     constants.Title,
		Label:     a.label,
		Status:    a.status(),
		Buttons:   a.buttons,
		PointerX:  a.pointerX,
		PointerY:  a.pointerY,
	}
}

func (a *App) status() string {
	var s string
	switch {
	case a.state.Sorting():
		s = fmt.Sprintf("n=%d  steps=%d", a.store.Len(), a.steps)
		if a.state.Algorithm.Stable {
			s += "  stable"
		}
	case a.steps > 0:
		s = fmt.Sprintf("n=%d  done in %d steps", a.store.Len(), a.steps)
	default:
		s = fmt.Sprintf("n=%d", a.store.Len())
	}
	if a.sound.Muted() {
		s += "  muted"
	}
	return s
}

// toggleMute flips the sound mute state and reports the new state
func (a *App) toggleMute() bool {
	muted := !a.sound.Muted()
	a.sound.SetMuted(muted)
	a.log.WithField("muted", muted).Debug("sound toggled")
	return muted
}

// drawIdle repaints the array with no highlight
func (a *App) drawIdle() {
	a.renderer.RenderFrame(a.frame(nil))
}
