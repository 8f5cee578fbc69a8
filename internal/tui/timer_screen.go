package tui

import (
	"fmt"

	"github.com/andy/pomo/internal/domain"
	"github.com/andy/pomo/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// TimerModel shows the countdown and its controls. It is the engine's
// Display, so OnTick and OnProgress are called from inside engine methods.
type TimerModel struct {
	engine service.TimerEngine
	theme  *Theme

	remaining int
	fraction  float64
	ring      progress.Model
	ringMode  domain.Mode

	statusMsg string
}

// NewTimerModel creates the timer screen. The engine is attached afterwards
// because the engine needs the screen as its display.
func NewTimerModel(theme *Theme) *TimerModel {
	return &TimerModel{
		theme:    theme,
		ringMode: domain.ModeWork,
		ring:     newRing(theme.RingColor(domain.ModeWork), ringWidth),
	}
}

// OnTick records the remaining seconds to show
func (m *TimerModel) OnTick(remainingSeconds int) {
	m.remaining = remainingSeconds
}

// OnProgress records the elapsed fraction of the phase
func (m *TimerModel) OnProgress(fraction float64) {
	m.fraction = fraction
}

// observe keeps the ring color and status line in step with the engine
func (m *TimerModel) observe(ev service.Event) {
	switch ev.Type {
	case service.EventModeChange, service.EventSettingsChange:
		m.recolor(ev.State.Mode)
	case service.EventCompleted:
		m.statusMsg = fmt.Sprintf("%s finished, %s started", ev.Completed, ev.State.Mode)
	}
}

func (m *TimerModel) recolor(mode domain.Mode) {
	m.ringMode = mode
	m.ring = newRing(m.theme.RingColor(mode), m.ring.Width)
}

func (m *TimerModel) Init() tea.Cmd {
	return nil
}

// Update handles the timer keys. Engine calls happen here, on the update
// goroutine, never inside a tea.Cmd.
func (m *TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 20
		if width > ringWidth*2 {
			width = ringWidth * 2
		}
		if width < 10 {
			width = 10
		}
		m.ring.Width = width
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""

		switch {
		case key.Matches(msg, DefaultKeyMap.Start):
			m.engine.Start()
		case key.Matches(msg, DefaultKeyMap.Pause):
			m.engine.Pause()
		case key.Matches(msg, DefaultKeyMap.Toggle):
			if m.engine.State().Running {
				m.engine.Pause()
			} else {
				m.engine.Start()
			}
		case key.Matches(msg, DefaultKeyMap.Reset):
			m.engine.Reset()
		case key.Matches(msg, DefaultKeyMap.Work):
			m.engine.SwitchMode(domain.ModeWork)
		case key.Matches(msg, DefaultKeyMap.Break):
			m.engine.SwitchMode(domain.ModeBreak)
		}
	}

	return m, nil
}

// View renders the timer screen
func (m *TimerModel) View() string {
	state := m.engine.State()
	theme := *m.theme

	var b string
	b += theme.tab(domain.ModeWork, state.Mode == domain.ModeWork) + " " +
		theme.tab(domain.ModeBreak, state.Mode == domain.ModeBreak) + "\n\n"

	b += "  " + theme.title().Render(domain.FormatClock(m.remaining)) + "\n\n"
	b += "  " + m.ring.ViewAs(m.fraction) + "\n\n"
	b += "  Status: " + statusLabel(theme, state) + "\n"

	if m.statusMsg != "" {
		b += "\n" + theme.successText().Render("  "+m.statusMsg) + "\n"
	}

	var help string
	if state.CanStart() {
		help = "  s: start"
	} else {
		help = "  p: pause"
	}
	help += "  space: start/pause  r: reset  w: work  b: break"
	b += "\n" + theme.help().Render(help)

	return b
}
