package pomodoro

// Phase is the active timer mode.
type Phase string

const (
	PhaseWork Phase = "work"
	PhaseRest Phase = "rest"
)

// Next returns the phase that follows the receiver.
func (phase Phase) Next() Phase {
	if phase == PhaseWork {
		return PhaseRest
	}
	return PhaseWork
}

// State is an immutable snapshot of the timer.
type State struct {
	Phase       Phase
	Remaining   int
	Running     bool
	WorkSeconds int
	RestSeconds int
}

// PhaseSeconds returns the configured duration of the current phase.
func (state State) PhaseSeconds() int {
	return state.secondsFor(state.Phase)
}

func (state State) secondsFor(phase Phase) int {
	if phase == PhaseRest {
		return state.RestSeconds
	}
	return state.WorkSeconds
}
