package pomodoro

import (
	"log/slog"
	"sync"
	"time"

	"pomodoro/internal/core/model"
)

// Options contains runtime collaborators for Controller.
type Options struct {
	TickInterval time.Duration
	Source       TickSource
	Logger       *slog.Logger
	Now          func() time.Time
}

// Controller drives a Timer from a TickSource and publishes snapshots.
// It guarantees at most one active tick cycle and drops ticks that arrive
// from a cycle that has already been stopped.
type Controller struct {
	mu         sync.Mutex
	timer      *Timer
	options    Options
	events     []chan Event
	active     bool
	generation uint64
	closed     bool
}

// NewController creates a Controller with a fresh Timer.
func NewController(config model.TimerConfig, options Options) *Controller {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Source == nil {
		options.Source = NewTicker()
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return &Controller{
		timer:   New(config),
		options: options,
	}
}

// Subscribe registers a new observer channel.
// Sends never block; a full channel misses the event.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		close(ch)
		return ch
	}
	controller.events = append(controller.events, ch)
	return ch
}

// Toggle starts or pauses the countdown.
func (controller *Controller) Toggle() State {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return controller.timer.Snapshot()
	}

	state := controller.timer.ToggleRunning()
	eventType := EventPaused
	if state.Running {
		eventType = EventStarted
		controller.startSourceLocked()
	} else {
		controller.stopSourceLocked()
	}

	controller.options.Logger.Info("timer toggled",
		"event", string(eventType),
		"phase", string(state.Phase),
		"remaining", state.Remaining)
	controller.emitLocked(eventType, state)
	return state
}

// Snapshot returns the current timer state.
func (controller *Controller) Snapshot() State {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.timer.Snapshot()
}

// Close stops ticking, leaves the timer paused and closes observer
// channels. It is idempotent.
func (controller *Controller) Close() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return
	}
	controller.closed = true
	controller.stopSourceLocked()
	if controller.timer.Snapshot().Running {
		controller.timer.ToggleRunning()
	}
	for _, ch := range controller.events {
		close(ch)
	}
	controller.events = nil
}

func (controller *Controller) handleTick(generation uint64) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed || !controller.active || generation != controller.generation {
		return
	}

	state := controller.timer.Tick()
	if state.Running {
		controller.options.Logger.Debug("tick", "phase", string(state.Phase), "remaining", state.Remaining)
		controller.emitLocked(EventTick, state)
		return
	}

	controller.stopSourceLocked()
	controller.options.Logger.Info("phase complete", "next", string(state.Phase), "remaining", state.Remaining)
	controller.emitLocked(EventPhaseComplete, state)
}

func (controller *Controller) startSourceLocked() {
	if controller.active {
		return
	}
	controller.active = true
	controller.generation++
	generation := controller.generation
	controller.options.Source.Start(controller.options.TickInterval, func() {
		controller.handleTick(generation)
	})
}

func (controller *Controller) stopSourceLocked() {
	if !controller.active {
		return
	}
	controller.active = false
	controller.generation++
	controller.options.Source.Stop()
}

func (controller *Controller) emitLocked(eventType EventType, state State) {
	event := Event{
		Type:  eventType,
		State: state,
		At:    controller.options.Now(),
	}
	for _, ch := range controller.events {
		select {
		case ch <- event:
		default:
		}
	}
}
