package pomodoro

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
)

// fakeSource records Start/Stop calls and lets tests fire ticks by hand.
type fakeSource struct {
	mu       sync.Mutex
	starts   int
	stops    int
	interval time.Duration
	onTick   func()
	handlers []func()
}

func (source *fakeSource) Start(interval time.Duration, onTick func()) {
	source.mu.Lock()
	defer source.mu.Unlock()
	source.starts++
	source.interval = interval
	source.onTick = onTick
	source.handlers = append(source.handlers, onTick)
}

func (source *fakeSource) Stop() {
	source.mu.Lock()
	defer source.mu.Unlock()
	source.stops++
	source.onTick = nil
}

// fire invokes the current callback, if any.
func (source *fakeSource) fire() {
	source.mu.Lock()
	onTick := source.onTick
	source.mu.Unlock()
	if onTick != nil {
		onTick()
	}
}

func (source *fakeSource) counts() (int, int) {
	source.mu.Lock()
	defer source.mu.Unlock()
	return source.starts, source.stops
}

func newTestController(t *testing.T, config model.TimerConfig) (*Controller, *fakeSource) {
	t.Helper()
	source := &fakeSource{}
	controller := NewController(config, Options{Source: source})
	t.Cleanup(controller.Close)
	return controller, source
}

func TestController_ToggleStartsAndStopsSource(t *testing.T) {
	controller, source := newTestController(t, model.DefaultTimerConfig())

	state := controller.Toggle()
	assert.True(t, state.Running)
	starts, stops := source.counts()
	assert.Equal(t, 1, starts)
	assert.Equal(t, 0, stops)
	assert.Equal(t, time.Second, source.interval)

	source.fire()
	source.fire()
	assert.Equal(t, 23, controller.Snapshot().Remaining)

	state = controller.Toggle()
	assert.False(t, state.Running)
	assert.Equal(t, 23, state.Remaining)
	starts, stops = source.counts()
	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, stops)
}

func TestController_StaleTicksAreDropped(t *testing.T) {
	controller, source := newTestController(t, model.DefaultTimerConfig())

	controller.Toggle()
	source.mu.Lock()
	stale := source.handlers[0]
	source.mu.Unlock()

	controller.Toggle()
	controller.Toggle()
	require.Len(t, source.handlers, 2)

	stale()
	stale()
	assert.Equal(t, 25, controller.Snapshot().Remaining)

	source.fire()
	assert.Equal(t, 24, controller.Snapshot().Remaining)
}

func TestController_PhaseCompleteStopsSource(t *testing.T) {
	controller, source := newTestController(t, model.TimerConfig{WorkSeconds: 2, RestSeconds: 1})
	events := controller.Subscribe(16)

	controller.Toggle()
	for i := 0; i < 3; i++ {
		source.fire()
	}

	state := controller.Snapshot()
	assert.Equal(t, PhaseRest, state.Phase)
	assert.Equal(t, 1, state.Remaining)
	assert.False(t, state.Running)
	_, stops := source.counts()
	assert.Equal(t, 1, stops)

	// The completed cycle's source no longer delivers ticks.
	source.fire()
	assert.Equal(t, 1, controller.Snapshot().Remaining)

	var types []EventType
	for len(events) > 0 {
		types = append(types, (<-events).Type)
	}
	assert.Equal(t, []EventType{EventStarted, EventTick, EventTick, EventPhaseComplete}, types)
}

func TestController_RestartAfterPhaseComplete(t *testing.T) {
	controller, source := newTestController(t, model.TimerConfig{WorkSeconds: 1, RestSeconds: 1})

	controller.Toggle()
	source.fire()
	source.fire()
	require.False(t, controller.Snapshot().Running)

	state := controller.Toggle()
	assert.True(t, state.Running)
	assert.Equal(t, PhaseRest, state.Phase)
	starts, _ := source.counts()
	assert.Equal(t, 2, starts)
}

func TestController_CloseIsIdempotent(t *testing.T) {
	source := &fakeSource{}
	controller := NewController(model.DefaultTimerConfig(), Options{Source: source})
	events := controller.Subscribe(1)

	controller.Toggle()
	controller.Close()
	controller.Close()

	_, stops := source.counts()
	assert.Equal(t, 1, stops)

	<-events
	_, open := <-events
	assert.False(t, open)

	state := controller.Toggle()
	assert.False(t, state.Running, "toggle after close is ignored")

	late := controller.Subscribe(1)
	_, open = <-late
	assert.False(t, open)
}

func TestController_EventTimestamps(t *testing.T) {
	at := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	source := &fakeSource{}
	controller := NewController(model.DefaultTimerConfig(), Options{
		Source:       source,
		TickInterval: 250 * time.Millisecond,
		Now:          func() time.Time { return at },
	})
	defer controller.Close()
	events := controller.Subscribe(2)

	controller.Toggle()
	event := <-events
	assert.Equal(t, EventStarted, event.Type)
	assert.Equal(t, at, event.At)
	assert.Equal(t, 250*time.Millisecond, source.interval)
}

func TestController_WithRealTicker(t *testing.T) {
	controller := NewController(model.TimerConfig{WorkSeconds: 2, RestSeconds: 3}, Options{
		TickInterval: 5 * time.Millisecond,
	})
	defer controller.Close()
	events := controller.Subscribe(16)

	controller.Toggle()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case event := <-events:
			if event.Type != EventPhaseComplete {
				continue
			}
			assert.Equal(t, PhaseRest, event.State.Phase)
			assert.Equal(t, 3, event.State.Remaining)
			assert.False(t, controller.Snapshot().Running)
			return
		case <-deadline:
			t.Fatal("phase did not complete")
		}
	}
}
