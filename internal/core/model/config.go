package model

// Default phase lengths in seconds.
const (
	DefaultWorkSeconds = 25
	DefaultRestSeconds = 15
)

// TimerConfig contains the two phase durations for the Pomodoro timer.
type TimerConfig struct {
	WorkSeconds int
	RestSeconds int
}

// DefaultTimerConfig returns the stock work/rest durations.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		WorkSeconds: DefaultWorkSeconds,
		RestSeconds: DefaultRestSeconds,
	}
}

// Normalized replaces non-positive durations with the defaults.
func (config TimerConfig) Normalized() TimerConfig {
	if config.WorkSeconds <= 0 {
		config.WorkSeconds = DefaultWorkSeconds
	}
	if config.RestSeconds <= 0 {
		config.RestSeconds = DefaultRestSeconds
	}
	return config
}
