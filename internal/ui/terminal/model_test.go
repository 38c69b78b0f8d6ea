package terminal

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/pomodoro"
)

type stubTimer struct {
	state   pomodoro.State
	toggles int
}

func (timer *stubTimer) Toggle() pomodoro.State {
	timer.toggles++
	timer.state.Running = !timer.state.Running
	return timer.state
}

func (timer *stubTimer) Snapshot() pomodoro.State {
	return timer.state
}

func newStub() *stubTimer {
	return &stubTimer{state: pomodoro.State{
		Phase:       pomodoro.PhaseWork,
		Remaining:   25,
		WorkSeconds: 25,
		RestSeconds: 15,
	}}
}

func TestModel_SpaceToggles(t *testing.T) {
	timer := newStub()
	m := New(timer, make(chan pomodoro.Event))

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, timer.toggles)
	assert.True(t, updated.(Model).State().Running)
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		t.Run(key.String(), func(t *testing.T) {
			m := New(newStub(), make(chan pomodoro.Event))
			_, cmd := m.Update(key)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestModel_EventUpdatesState(t *testing.T) {
	events := make(chan pomodoro.Event, 1)
	m := New(newStub(), events)

	rest := pomodoro.State{Phase: pomodoro.PhaseRest, Remaining: 15, WorkSeconds: 25, RestSeconds: 15}
	events <- pomodoro.Event{Type: pomodoro.EventPhaseComplete, State: rest}

	msg := m.Init()()
	updated, cmd := m.Update(msg)
	assert.NotNil(t, cmd, "model keeps listening for events")
	assert.Equal(t, rest, updated.(Model).State())
	assert.Contains(t, updated.View(), "REST")
	assert.Contains(t, updated.View(), "15")
}

func TestModel_ClosedChannelQuits(t *testing.T) {
	events := make(chan pomodoro.Event)
	close(events)
	m := New(newStub(), events)

	msg := m.Init()()
	_, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_ViewShowsPausedWork(t *testing.T) {
	view := New(newStub(), nil).View()

	assert.Contains(t, view, "WORK")
	assert.Contains(t, view, "25")
	assert.Contains(t, view, "paused")
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name       string
		remaining  float64
		width      int
		wantFilled int
	}{
		{name: "full", remaining: 1, width: 10, wantFilled: 10},
		{name: "half", remaining: 0.5, width: 10, wantFilled: 5},
		{name: "empty", remaining: 0, width: 10, wantFilled: 0},
		{name: "clamped high", remaining: 3, width: 4, wantFilled: 4},
		{name: "clamped low", remaining: -1, width: 4, wantFilled: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := ProgressBar(tt.remaining, tt.width)
			assert.Equal(t, tt.wantFilled, strings.Count(bar, "█"))
			assert.Equal(t, tt.width-tt.wantFilled, strings.Count(bar, "░"))
		})
	}

	assert.Empty(t, ProgressBar(1, 0))
}
