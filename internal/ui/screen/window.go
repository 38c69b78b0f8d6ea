package screen

import (
	"context"
	"image/color"
	"strconv"
	"time"

	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/ui/animation"
	"pomodoro/internal/ui/ring"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Config defines screen visuals and the tick cadence used for animation.
type Config struct {
	Title        string
	TickInterval time.Duration
	Animation    animation.Config
}

// Window is the single timer screen: ring, countdown and play/pause button.
type Window struct {
	window       fyne.Window
	background   *canvas.Rectangle
	ring         *ring.Ring
	countdown    *canvas.Text
	phaseLabel   *canvas.Text
	toggleButton *widget.Button
	engine       *animation.Engine
	tickInterval time.Duration
	onToggle     func()
}

var (
	backgroundColor = color.NRGBA{R: 28, G: 24, B: 48, A: 255}
	countdownColor  = color.NRGBA{R: 235, G: 150, B: 148, A: 255}
	phaseColor      = color.NRGBA{R: 204, G: 77, B: 138, A: 255}
)

const buttonGap = float32(7)

// New creates the timer window.
func New(app fyne.App, config Config) *Window {
	if config.Title == "" {
		config.Title = "Pomodoro"
	}
	if config.TickInterval <= 0 {
		config.TickInterval = time.Second
	}

	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(backgroundColor)
	progress := ring.New()

	countdown := canvas.NewText("", countdownColor)
	countdown.Alignment = fyne.TextAlignCenter
	countdown.TextSize = 80

	phaseLabel := canvas.NewText("", phaseColor)
	phaseLabel.Alignment = fyne.TextAlignCenter
	phaseLabel.TextStyle = fyne.TextStyle{Bold: true}
	phaseLabel.TextSize = 16

	toggleButton := widget.NewButtonWithIcon("", theme.MediaPlayIcon(), nil)
	toggleButton.Importance = widget.LowImportance

	content := container.New(&timerLayout{}, progress, countdown, toggleButton, phaseLabel)
	window.SetContent(container.NewStack(background, content))
	window.Resize(fyne.NewSize(360, 480))

	screen := &Window{
		window:       window,
		background:   background,
		ring:         progress,
		countdown:    countdown,
		phaseLabel:   phaseLabel,
		toggleButton: toggleButton,
		tickInterval: config.TickInterval,
	}
	screen.engine = animation.New(config.Animation, 1, func(value float64) {
		fyne.Do(func() {
			screen.ring.SetRemaining(value)
		})
	})

	toggleButton.OnTapped = screen.handleToggle
	window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		if event.Name == fyne.KeySpace {
			screen.handleToggle()
		}
	})

	return screen
}

// Show displays the window.
func (screen *Window) Show() {
	screen.window.Show()
}

// Window returns the underlying Fyne window.
func (screen *Window) Window() fyne.Window {
	return screen.window
}

// SetOnToggle sets the play/pause handler.
func (screen *Window) SetOnToggle(handler func()) {
	screen.onToggle = handler
}

// Render updates the countdown text and button for state.
// It must run on the Fyne UI goroutine.
func (screen *Window) Render(state pomodoro.State) {
	screen.countdown.Text = strconv.Itoa(state.Remaining)
	screen.countdown.Refresh()

	screen.phaseLabel.Text = phaseTitle(state.Phase)
	screen.phaseLabel.Refresh()

	if state.Running {
		screen.toggleButton.SetIcon(theme.MediaPauseIcon())
	} else {
		screen.toggleButton.SetIcon(theme.MediaPlayIcon())
	}
}

// Reset renders state and redraws the ring without animation.
func (screen *Window) Reset(state pomodoro.State) {
	screen.Render(state)
	screen.engine.Jump(1 - ring.Completion(state))
}

// Apply renders an event and steers the ring animation.
// It must run on the Fyne UI goroutine.
func (screen *Window) Apply(event pomodoro.Event) {
	screen.Render(event.State)

	switch event.Type {
	case pomodoro.EventStarted, pomodoro.EventTick:
		remaining := time.Duration(event.State.Remaining) * screen.tickInterval
		screen.engine.Sweep(context.Background(), 0, remaining)
	case pomodoro.EventPaused:
		screen.engine.Freeze()
	case pomodoro.EventPhaseComplete:
		screen.engine.Jump(1)
	}
}

// Close stops animations.
func (screen *Window) Close() {
	screen.engine.Stop()
}

func (screen *Window) handleToggle() {
	if screen.onToggle != nil {
		screen.onToggle()
	}
}

func phaseTitle(phase pomodoro.Phase) string {
	if phase == pomodoro.PhaseRest {
		return "REST"
	}
	return "WORK"
}

// timerLayout centres the ring and countdown, places the button just below
// the countdown and the phase label above it.
type timerLayout struct{}

func (layout *timerLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 4 {
		return
	}
	progress := objects[0]
	countdown := objects[1]
	button := objects[2]
	phase := objects[3]

	side := size.Width
	if size.Height < side {
		side = size.Height
	}
	ringMin := progress.MinSize()
	if side > ringMin.Width {
		side = ringMin.Width
	}
	center := fyne.NewPos(size.Width/2, size.Height/2)
	progress.Move(fyne.NewPos(center.X-side/2, center.Y-side/2))
	progress.Resize(fyne.NewSize(side, side))

	countdownSize := countdown.MinSize()
	countdown.Move(fyne.NewPos(center.X-countdownSize.Width/2, center.Y-countdownSize.Height/2))
	countdown.Resize(countdownSize)

	buttonSize := button.MinSize()
	button.Move(fyne.NewPos(center.X-buttonSize.Width/2, center.Y+countdownSize.Height/2+buttonGap))
	button.Resize(buttonSize)

	phaseSize := phase.MinSize()
	phase.Move(fyne.NewPos(center.X-phaseSize.Width/2, center.Y-countdownSize.Height/2-phaseSize.Height))
	phase.Resize(phaseSize)
}

func (layout *timerLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 4 {
		return fyne.NewSize(0, 0)
	}
	ringMin := objects[0].MinSize()
	countdownMin := objects[1].MinSize()
	buttonMin := objects[2].MinSize()
	phaseMin := objects[3].MinSize()

	width := ringMin.Width
	if countdownMin.Width > width {
		width = countdownMin.Width
	}
	height := phaseMin.Height + countdownMin.Height + buttonGap + buttonMin.Height
	if ringMin.Height > height {
		height = ringMin.Height
	}
	return fyne.NewSize(width, height)
}
