package cli

import (
	"log/slog"
	"sync"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/screen"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

func runGUI(settings preferences.Settings, configPath string, logger *slog.Logger) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.pomodoro.app")
	fyneApp.SetIcon(resources.MustLogo("tomato.svg"))

	timerScreen := screen.New(fyneApp, screen.Config{Title: appName, TickInterval: time.Second})
	timerScreen.Window().SetMaster()
	defer timerScreen.Close()

	var trayManager *tray.Manager
	session := newGUISession(logger, func(event pomodoro.Event) {
		fyne.Do(func() {
			timerScreen.Apply(event)
			if trayManager != nil {
				trayManager.Update(event.State)
			}
		})
	})
	defer session.close()

	reset := func(settings preferences.Settings) {
		state := session.replace(settings.TimerConfig())
		timerScreen.Reset(state)
		if trayManager != nil {
			trayManager.Update(state)
		}
	}

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if err := storage.SaveSettingsFile(configPath, updated); err != nil {
			logger.Error("save settings", "path", configPath, "error", err)
		}
		reset(updated)
	})

	timerScreen.SetOnToggle(session.toggle)

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        timerScreen.Show,
			OnToggle:      session.toggle,
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(fyneApp.Icon())
	} else {
		logger.Info("system tray unsupported on this platform")
	}

	reset(settings)
	logger.Info("starting timer", "work", settings.WorkSeconds, "rest", settings.RestSeconds, "config", configPath)
	timerScreen.Window().ShowAndRun()
	return nil
}

// guiSession owns the active controller. Saving preferences swaps in a
// fresh controller; the old one is closed, which ends its forwarder.
type guiSession struct {
	mu         sync.Mutex
	logger     *slog.Logger
	controller *pomodoro.Controller
	onEvent    func(pomodoro.Event)
}

func newGUISession(logger *slog.Logger, onEvent func(pomodoro.Event)) *guiSession {
	return &guiSession{logger: logger, onEvent: onEvent}
}

func (session *guiSession) replace(config model.TimerConfig) pomodoro.State {
	controller := pomodoro.NewController(config, pomodoro.Options{Logger: session.logger})
	events := controller.Subscribe(8)

	session.mu.Lock()
	previous := session.controller
	session.controller = controller
	session.mu.Unlock()

	if previous != nil {
		previous.Close()
	}
	go func() {
		for event := range events {
			if session.isCurrent(controller) {
				session.onEvent(event)
			}
		}
	}()
	return controller.Snapshot()
}

func (session *guiSession) isCurrent(controller *pomodoro.Controller) bool {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.controller == controller
}

func (session *guiSession) toggle() {
	session.mu.Lock()
	controller := session.controller
	session.mu.Unlock()
	if controller != nil {
		controller.Toggle()
	}
}

func (session *guiSession) snapshot() (pomodoro.State, bool) {
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.controller == nil {
		return pomodoro.State{}, false
	}
	return session.controller.Snapshot(), true
}

func (session *guiSession) close() {
	session.mu.Lock()
	controller := session.controller
	session.controller = nil
	session.mu.Unlock()
	if controller != nil {
		controller.Close()
	}
}
