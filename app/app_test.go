package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/sorted/array"
	"github.com/lixenwraith/sorted/config"
	"github.com/lixenwraith/sorted/constants"
	"github.com/lixenwraith/sorted/sorts"
	"github.com/lixenwraith/sorted/ui"
)

// mockClock records sleeps and runs an optional hook on each one
type mockClock struct {
	now     time.Time
	sleeps  []time.Duration
	onSleep func(n int)
}

func (c *mockClock) Now() time.Time { return c.now }

func (c *mockClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	if c.onSleep != nil {
		c.onSleep(len(c.sleeps))
	}
}

type recordedSound struct {
	steps      []int
	completes  int
	muted      bool
	onComplete func()
}

func (s *recordedSound) SetMuted(muted bool) { s.muted = muted }
func (s *recordedSound) Muted() bool         { return s.muted }

func (s *recordedSound) PlayStep(value, lo, hi int) { s.steps = append(s.steps, value) }

func (s *recordedSound) PlayComplete() {
	s.completes++
	if s.onComplete != nil {
		s.onComplete()
	}
}

type harness struct {
	app    *App
	screen tcell.SimulationScreen
	events chan tcell.Event
	clock  *mockClock
	sound  *recordedSound
	logs   *logtest.Hook
}

func newHarness(t *testing.T, values []int) *harness {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(120, 30)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	cfg.Seed = 11

	logger, hook := logtest.NewNullLogger()
	h := &harness{
		screen: screen,
		events: make(chan tcell.Event, 16),
		clock:  &mockClock{now: time.Unix(0, 0)},
		sound:  &recordedSound{},
		logs:   hook,
	}

	opts := []Option{WithClock(h.clock), WithSound(h.sound), WithLogger(logger)}
	if values != nil {
		opts = append(opts, WithStore(array.FromValues(values, array.WithSeed(3))))
	}
	h.app = New(cfg, screen, h.events, opts...)
	return h
}

func (h *harness) button(t *testing.T, act ui.Action) ui.Button {
	t.Helper()
	for _, b := range h.app.Buttons() {
		if b.Action == act {
			return b
		}
	}
	t.Fatalf("no button for %+v", act)
	return ui.Button{}
}

func press(b ui.Button) *tcell.EventMouse {
	return tcell.NewEventMouse(b.Rect.X, b.Rect.Y, tcell.Button1, tcell.ModNone)
}

func TestNewGeneratesConfiguredArray(t *testing.T) {
	h := newHarness(t, nil)

	store := h.app.Store()
	require.Equal(t, constants.ArraySize, store.Len())
	for _, v := range store.Values() {
		assert.GreaterOrEqual(t, v, constants.MinValue)
		assert.LessOrEqual(t, v, constants.MaxValue)
	}
	assert.Equal(t, Idle, h.app.State().Phase)
	assert.Len(t, h.app.Buttons(), 7)
}

func TestRunAlgorithmSortsEveryAlgorithm(t *testing.T) {
	for _, algo := range sorts.All() {
		t.Run(algo.Name, func(t *testing.T) {
			h := newHarness(t, nil)

			require.NoError(t, h.app.RunAlgorithm(context.Background(), algo.ID))

			assert.True(t, h.app.Store().IsSorted())
			assert.False(t, h.app.State().Sorting())
			assert.Positive(t, h.app.Steps())

			// One delay and one tone per rendered step
			assert.Len(t, h.clock.sleeps, h.app.Steps())
			for _, d := range h.clock.sleeps {
				assert.Equal(t, constants.StepDelay, d)
			}
			assert.Len(t, h.sound.steps, h.app.Steps())
			assert.Equal(t, 1, h.sound.completes)
			assert.NotEmpty(t, h.logs.AllEntries())
		})
	}
}

func TestStateDuringSort(t *testing.T) {
	h := newHarness(t, []int{3, 1, 2})

	var seen []State
	h.clock.onSleep = func(int) { seen = append(seen, h.app.State()) }

	require.NoError(t, h.app.RunAlgorithm(context.Background(), sorts.IDSelection))

	require.NotEmpty(t, seen)
	for _, s := range seen {
		assert.Equal(t, Sorting, s.Phase)
		assert.Equal(t, sorts.IDSelection, s.Algorithm.ID)
	}
	assert.Equal(t, Idle, h.app.State().Phase)
}

func TestPressIdleVersusSorting(t *testing.T) {
	h := newHarness(t, []int{4, 3, 2, 1})
	quick := h.button(t, ui.RunAction(sorts.IDQuick))

	act, ok := h.app.Press(quick.Rect.X, quick.Rect.Y)
	require.True(t, ok)
	assert.Equal(t, ui.RunAction(sorts.IDQuick), act)

	_, ok = h.app.Press(-5, -5)
	assert.False(t, ok)

	var duringOK []bool
	h.clock.onSleep = func(int) {
		_, ok := h.app.Press(quick.Rect.X, quick.Rect.Y)
		duringOK = append(duringOK, ok)
	}
	require.NoError(t, h.app.RunAlgorithm(context.Background(), sorts.IDBubble))

	require.NotEmpty(t, duringOK)
	for _, ok := range duringOK {
		assert.False(t, ok, "press while sorting must be ignored")
	}
}

func TestClicksDiscardedWhileSorting(t *testing.T) {
	h := newHarness(t, []int{5, 3, 8, 1})
	regen := h.button(t, ui.RegenerateAction())

	h.events <- press(regen)
	h.events <- tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)

	require.NoError(t, h.app.RunAlgorithm(context.Background(), sorts.IDInsertion))

	assert.Equal(t, []int{1, 3, 5, 8}, h.app.Store().Values(), "array must not be regenerated mid-sort")
	assert.Empty(t, h.events, "events are drained during the sort")
}

func TestNestedRunIsRejected(t *testing.T) {
	h := newHarness(t, []int{2, 1})

	var nestedErr error
	h.clock.onSleep = func(int) {
		nestedErr = h.app.RunAlgorithm(context.Background(), sorts.IDHeap)
		h.app.Dispatch(context.Background(), ui.RegenerateAction())
	}
	require.NoError(t, h.app.RunAlgorithm(context.Background(), sorts.IDBubble))

	assert.Error(t, nestedErr)
	assert.Equal(t, []int{1, 2}, h.app.Store().Values())
}

func TestExitDuringSortAborts(t *testing.T) {
	tests := []struct {
		name    string
		algo    sorts.ID
		exitKey *tcell.EventKey
		abortAt int
	}{
		{"Escape before first step", sorts.IDBubble, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), 0},
		{"Ctrl+C deep in merge recursion", sorts.IDMerge, tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), 50},
		{"q during quick partition", sorts.IDQuick, tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), 20},
		{"Q during heap sift", sorts.IDHeap, tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, nil)
			if tt.abortAt == 0 {
				h.events <- tt.exitKey
			} else {
				h.clock.onSleep = func(n int) {
					if n == tt.abortAt {
						h.events <- tt.exitKey
					}
				}
			}

			err := h.app.RunAlgorithm(context.Background(), tt.algo)

			assert.True(t, errors.Is(err, sorts.ErrAborted))
			assert.True(t, h.app.Quit())
			assert.Equal(t, tt.abortAt, h.app.Steps())
			assert.Equal(t, Idle, h.app.State().Phase)
			assert.Zero(t, h.sound.completes)
		})
	}
}

func TestContextCancelAbortsSort(t *testing.T) {
	h := newHarness(t, nil)
	ctx, cancel := context.WithCancel(context.Background())

	h.clock.onSleep = func(n int) {
		if n == 5 {
			cancel()
		}
	}

	err := h.app.RunAlgorithm(ctx, sorts.IDSelection)
	assert.ErrorIs(t, err, sorts.ErrAborted)
	assert.Equal(t, 5, h.app.Steps())
}

func TestClosedEventChannelAbortsSort(t *testing.T) {
	h := newHarness(t, nil)
	close(h.events)

	err := h.app.RunAlgorithm(context.Background(), sorts.IDInsertion)
	assert.ErrorIs(t, err, sorts.ErrAborted)
}

func TestHandleEventMousePress(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()

	bubble := h.button(t, ui.RunAction(sorts.IDBubble))
	h.app.HandleEvent(ctx, press(bubble))
	assert.True(t, h.app.Store().IsSorted())
	steps := h.app.Steps()
	assert.Positive(t, steps)

	// Holding the button does not repeat the action
	regen := h.button(t, ui.RegenerateAction())
	h.app.HandleEvent(ctx, tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	h.app.HandleEvent(ctx, press(regen))
	first := h.app.Store().Snapshot()
	assert.False(t, h.app.Store().IsSorted())

	h.app.HandleEvent(ctx, press(regen))
	assert.Equal(t, first, h.app.Store().Snapshot(), "drag must not regenerate again")

	// Hover tracks the pointer without dispatching
	h.app.HandleEvent(ctx, tcell.NewEventMouse(bubble.Rect.X, bubble.Rect.Y, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, first, h.app.Store().Snapshot())
	assert.Equal(t, bubble.Rect.X, h.app.pointerX)
}

func TestHandleEventShortcuts(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()

	h.app.HandleEvent(ctx, tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone))
	assert.True(t, h.app.Store().IsSorted())
	assert.Equal(t, "Insertion Sort - O(n²)", h.app.label)

	h.app.HandleEvent(ctx, tcell.NewEventKey(tcell.KeyRune, 'N', tcell.ModNone))
	assert.False(t, h.app.Store().IsSorted())
	assert.Empty(t, h.app.label)
	assert.Zero(t, h.app.Steps())

	h.app.HandleEvent(ctx, tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	assert.False(t, h.app.Quit())

	h.app.HandleEvent(ctx, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.True(t, h.app.Quit())
}

func TestResizeRelayoutsButtons(t *testing.T) {
	h := newHarness(t, nil)
	wide := ui.Bottom(h.app.Buttons())

	h.screen.SetSize(30, 30)
	h.app.HandleEvent(context.Background(), tcell.NewEventResize(30, 30))

	assert.Greater(t, ui.Bottom(h.app.Buttons()), wide)
	for _, b := range h.app.Buttons() {
		assert.LessOrEqual(t, b.Rect.Right(), 30)
	}
}

func TestSingleElementCompletesWithoutSteps(t *testing.T) {
	h := newHarness(t, []int{42})

	for _, algo := range sorts.All() {
		require.NoError(t, h.app.RunAlgorithm(context.Background(), algo.ID))
		assert.Zero(t, h.app.Steps(), algo.Name)
	}
	assert.Equal(t, []int{42}, h.app.Store().Values())
}

func TestUnknownAlgorithm(t *testing.T) {
	h := newHarness(t, nil)
	assert.Error(t, h.app.RunAlgorithm(context.Background(), sorts.ID(42)))
	assert.Equal(t, Idle, h.app.State().Phase)
}

func TestRunLoop(t *testing.T) {
	h := newHarness(t, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Exit is queued only once the sort completes, otherwise the sort would consume it
	h.events <- tcell.NewEventKey(tcell.KeyRune, '6', tcell.ModNone)
	h.sound.onComplete = func() {
		h.events <- tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	}

	require.NoError(t, h.app.Run(ctx))
	assert.True(t, h.app.Store().IsSorted())
	assert.True(t, h.app.Quit())
	assert.NoError(t, ctx.Err(), "loop must exit on the escape key, not the timeout")
}

func TestRunLoopStopsOnCancel(t *testing.T) {
	h := newHarness(t, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- h.app.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestIdleFrameShowsSortedColor(t *testing.T) {
	h := newHarness(t, []int{2, 1})
	require.NoError(t, h.app.RunAlgorithm(context.Background(), sorts.IDBubble))

	h.app.drawIdle()

	frame := h.app.frame(nil)
	assert.True(t, frame.Sorted)
	assert.Contains(t, frame.Status, "done in 1 steps")

	h.app.Regenerate()
	assert.False(t, h.app.frame(nil).Sorted)
}

func TestMuteKeyToggles(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	before := h.app.Store().Snapshot()

	h.app.HandleEvent(ctx, tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))
	assert.True(t, h.sound.Muted())
	assert.Contains(t, h.app.frame(nil).Status, "muted")

	h.app.HandleEvent(ctx, tcell.NewEventKey(tcell.KeyRune, 'M', tcell.ModNone))
	assert.False(t, h.sound.Muted())
	assert.NotContains(t, h.app.frame(nil).Status, "muted")

	assert.Equal(t, before, h.app.Store().Snapshot(), "mute must not dispatch an action")
	assert.False(t, h.app.Quit())
}

func TestSilentSoundReportsMuted(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	logger, _ := logtest.NewNullLogger()

	a := New(config.Default(), screen, make(chan tcell.Event), WithLogger(logger))
	assert.True(t, a.toggleMute(), "silent output stays muted")
	assert.Contains(t, a.frame(nil).Status, "muted")
}

func TestStatusMarksStableAlgorithms(t *testing.T) {
	tests := []struct {
		algo   sorts.ID
		stable bool
	}{
		{sorts.IDBubble, true},
		{sorts.IDInsertion, true},
		{sorts.IDMerge, true},
		{sorts.IDSelection, false},
		{sorts.IDQuick, false},
		{sorts.IDHeap, false},
	}

	for _, tt := range tests {
		algo, ok := sorts.Lookup(tt.algo)
		require.True(t, ok)
		t.Run(algo.Name, func(t *testing.T) {
			h := newHarness(t, []int{4, 3, 2, 1})

			var statuses []string
			h.clock.onSleep = func(int) { statuses = append(statuses, h.app.frame(nil).Status) }
			require.NoError(t, h.app.RunAlgorithm(context.Background(), tt.algo))

			require.NotEmpty(t, statuses)
			for _, s := range statuses {
				assert.Equal(t, tt.stable, strings.Contains(s, "stable"), s)
			}
			assert.NotContains(t, h.app.frame(nil).Status, "stable", "marker only shown while sorting")
		})
	}
}

func TestDispatchLogsRejectedSort(t *testing.T) {
	h := newHarness(t, nil)

	h.app.Dispatch(context.Background(), ui.RunAction(sorts.ID(42)))

	entry := h.logs.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Contains(t, entry.Data[logrus.ErrorKey].(error).Error(), "unknown algorithm")
}

func TestDispatchDoesNotWarnOnExit(t *testing.T) {
	h := newHarness(t, nil)
	h.events <- tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)

	h.app.Dispatch(context.Background(), ui.RunAction(sorts.IDBubble))

	assert.True(t, h.app.Quit())
	for _, e := range h.logs.AllEntries() {
		assert.NotEqual(t, logrus.WarnLevel, e.Level, e.Message)
	}
}
