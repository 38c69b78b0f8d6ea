package preferences

import "pomodoro/internal/core/model"

// Settings defines editable user preferences.
type Settings struct {
	WorkSeconds int
	RestSeconds int
}

// DefaultSettings returns default settings for the timer.
func DefaultSettings() Settings {
	config := model.DefaultTimerConfig()
	return Settings{
		WorkSeconds: config.WorkSeconds,
		RestSeconds: config.RestSeconds,
	}
}

// TimerConfig converts settings to TimerConfig.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		WorkSeconds: settings.WorkSeconds,
		RestSeconds: settings.RestSeconds,
	}.Normalized()
}
