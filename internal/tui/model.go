package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/andy/pomo/internal/app"
	"github.com/andy/pomo/internal/schedule"
	"github.com/andy/pomo/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen represents the current active screen
type Screen int

const (
	ScreenTimer Screen = iota
	ScreenSettings
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case ScreenTimer:
		return "Timer"
	case ScreenSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// engineBuilder creates the engine for a scheduler and display
type engineBuilder func(scheduler schedule.Scheduler, display service.Display) service.TimerEngine

// Model is the root Bubble Tea model
type Model struct {
	engine        service.TimerEngine
	scheduler     *teaScheduler
	theme         *Theme
	currentScreen Screen
	width         int
	height        int

	timer    *TimerModel
	settings *SettingsModel
}

// New creates a new root model backed by the app's settings store
func New(a *app.App) Model {
	return newModel(func(scheduler schedule.Scheduler, display service.Display) service.TimerEngine {
		return a.NewTimerEngine(context.Background(), scheduler, display)
	})
}

func newModel(build engineBuilder) Model {
	theme := new(Theme)
	*theme = lightTheme

	scheduler := newTeaScheduler()
	timer := NewTimerModel(theme)
	engine := build(scheduler, timer)
	timer.engine = engine

	*theme = themeFor(engine.Settings().DarkModeEnabled)
	timer.recolor(engine.State().Mode)

	// The theme observer goes first so the timer recolors with the new palette
	engine.AddObserver(func(ev service.Event) {
		if ev.Type == service.EventSettingsChange {
			*theme = themeFor(ev.Settings.DarkModeEnabled)
		}
	})
	engine.AddObserver(timer.observe)

	return Model{
		engine:        engine,
		scheduler:     scheduler,
		theme:         theme,
		currentScreen: ScreenTimer,
		timer:         timer,
		settings:      NewSettingsModel(engine, theme),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.timer.Init(), m.scheduler.drain())
}

// InputCapturer is implemented by screens that capture keyboard input (e.g. text forms).
// When active, global navigation keys (T, comma, Q) are suppressed.
type InputCapturer interface {
	IsCapturingInput() bool
}

// activeScreenCapturingInput returns true if the current screen is capturing text input
func (m *Model) activeScreenCapturingInput() bool {
	var screen tea.Model
	switch m.currentScreen {
	case ScreenTimer:
		screen = m.timer
	case ScreenSettings:
		screen = m.settings
	}
	if ic, ok := screen.(InputCapturer); ok {
		return ic.IsCapturingInput()
	}
	return false
}

// Update implements tea.Model. Any ticks armed while handling msg are
// returned alongside the screen's command.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	return next, tea.Batch(cmd, m.scheduler.drain())
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.timer.Update(msg)
		return m, nil

	case scheduledTickMsg:
		m.scheduler.fire(msg.id)
		return m, nil

	case tea.KeyMsg:
		// Skip global navigation when a screen is capturing text input
		if !m.activeScreenCapturingInput() {
			switch {
			case key.Matches(msg, DefaultKeyMap.Quit):
				return m, tea.Quit

			case key.Matches(msg, DefaultKeyMap.Timer):
				m.currentScreen = ScreenTimer
				return m, nil

			case key.Matches(msg, DefaultKeyMap.Settings):
				m.currentScreen = ScreenSettings
				return m, nil
			}
		}

	case SwitchScreenMsg:
		m.currentScreen = msg.Screen
		return m, nil
	}

	// Route message to current screen
	var cmd tea.Cmd
	switch m.currentScreen {
	case ScreenTimer:
		_, cmd = m.timer.Update(msg)
	case ScreenSettings:
		_, cmd = m.settings.Update(msg)
	}

	return m, cmd
}

// View implements tea.Model - renders header + current screen + footer
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	theme := *m.theme

	header := theme.header().Render(fmt.Sprintf("pomo - %s", m.currentScreen.String()))
	footer := theme.footer().Render("[T]imer  [,] Settings  [Q]uit")

	var content string
	switch m.currentScreen {
	case ScreenTimer:
		content = m.timer.View()
	case ScreenSettings:
		content = m.settings.View()
	}

	// Divider line between header and content
	innerWidth := m.width - 6 // account for border (2) + padding (4)
	if innerWidth < 20 {
		innerWidth = 20
	}
	dividerWidth := innerWidth - 12
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", dividerWidth),
	)

	body := fmt.Sprintf("%s\n%s\n\n%s\n\n%s\n%s", header, divider, content, divider, footer)

	frame := theme.frame().
		Width(innerWidth).
		Height(m.height - 4)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(body))
}

// Run starts the TUI
func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
