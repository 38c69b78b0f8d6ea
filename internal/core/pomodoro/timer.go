package pomodoro

import "pomodoro/internal/core/model"

// Timer is the work/rest countdown state machine.
// It is not safe for concurrent use; Controller serializes access.
type Timer struct {
	state State
}

// New creates a Timer in the work phase with the full work duration remaining.
func New(config model.TimerConfig) *Timer {
	config = config.Normalized()
	return &Timer{
		state: State{
			Phase:       PhaseWork,
			Remaining:   config.WorkSeconds,
			WorkSeconds: config.WorkSeconds,
			RestSeconds: config.RestSeconds,
		},
	}
}

// ToggleRunning flips the running flag. Remaining time is preserved.
func (timer *Timer) ToggleRunning() State {
	timer.state.Running = !timer.state.Running
	return timer.state
}

// Tick advances the countdown by one second.
// A tick while paused is ignored. A tick at zero switches to the next
// phase, refills the countdown and stops the timer.
func (timer *Timer) Tick() State {
	if !timer.state.Running {
		return timer.state
	}
	if timer.state.Remaining > 0 {
		timer.state.Remaining--
		return timer.state
	}

	timer.state.Phase = timer.state.Phase.Next()
	timer.state.Remaining = timer.state.PhaseSeconds()
	timer.state.Running = false
	return timer.state
}

// Snapshot returns the current state.
func (timer *Timer) Snapshot() State {
	return timer.state
}
