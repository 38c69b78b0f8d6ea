// Package terminal renders the timer in a terminal with bubbletea.
package terminal

import (
	"fmt"
	"strings"

	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/ui/ring"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 30

// Timer is the subset of pomodoro.Controller the view drives.
type Timer interface {
	Toggle() pomodoro.State
	Snapshot() pomodoro.State
}

// eventMsg carries a controller event into the update loop.
type eventMsg pomodoro.Event

// closedMsg reports that the event channel was closed.
type closedMsg struct{}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("168")).
			Padding(0, 1)

	workStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("204"))
	restStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141"))

	countdownStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("217")).
			Padding(1, 4).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("183"))

	barFilled = lipgloss.NewStyle().Foreground(lipgloss.Color("183"))
	barEmpty  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model for the countdown.
type Model struct {
	timer  Timer
	events <-chan pomodoro.Event
	state  pomodoro.State
	width  int
}

// New creates a model showing timer and listening on events.
func New(timer Timer, events <-chan pomodoro.Event) Model {
	return Model{
		timer:  timer,
		events: events,
		state:  timer.Snapshot(),
	}
}

// State returns the last rendered snapshot.
func (m Model) State() pomodoro.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ", "space", "enter":
			m.state = m.timer.Toggle()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case eventMsg:
		m.state = msg.State
		return m, waitForEvent(m.events)

	case closedMsg:
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) View() string {
	title := titleStyle.Render(" Pomodoro ")
	phase := workStyle.Render("WORK")
	if m.state.Phase == pomodoro.PhaseRest {
		phase = restStyle.Render("REST")
	}
	status := "paused"
	if m.state.Running {
		status = "running"
	}

	countdown := countdownStyle.Render(fmt.Sprintf("%d", m.state.Remaining))
	bar := ProgressBar(1-ring.Completion(m.state), barWidth)
	help := helpStyle.Render("space: start/pause | q: quit")

	body := lipgloss.JoinVertical(lipgloss.Center,
		fmt.Sprintf("%s  %s", phase, helpStyle.Render(status)),
		countdown,
		bar,
	)
	return fmt.Sprintf("%s\n\n%s\n\n%s\n", title, body, help)
}

// ProgressBar renders the remaining share as a bar of width cells.
func ProgressBar(remaining float64, width int) string {
	if width <= 0 {
		return ""
	}
	if remaining < 0 {
		remaining = 0
	}
	if remaining > 1 {
		remaining = 1
	}
	filled := int(remaining*float64(width) + 0.5)
	return barFilled.Render(strings.Repeat("█", filled)) +
		barEmpty.Render(strings.Repeat("░", width-filled))
}

func waitForEvent(events <-chan pomodoro.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return closedMsg{}
		}
		return eventMsg(event)
	}
}
