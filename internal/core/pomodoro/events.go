package pomodoro

import "time"

// EventType defines the type of Controller event.
type EventType string

const (
	EventStarted       EventType = "started"
	EventPaused        EventType = "paused"
	EventTick          EventType = "tick"
	EventPhaseComplete EventType = "phase_complete"
)

// Event is a Controller update for observers.
type Event struct {
	Type  EventType
	State State
	At    time.Time
}
