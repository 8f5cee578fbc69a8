package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/andy/pomo/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type settingsMode int

const (
	settingsModeView settingsMode = iota
	settingsModeEdit
)

// settings form field indices
const (
	settingsFieldWork = iota
	settingsFieldBreak
	settingsFieldCount
)

// SettingsModel manages the settings screen
type SettingsModel struct {
	engine     service.TimerEngine
	theme      *Theme
	mode       settingsMode
	fields     []textinput.Model
	fieldFocus int
	err        error
	statusMsg  string
}

// NewSettingsModel creates a new settings screen
func NewSettingsModel(engine service.TimerEngine, theme *Theme) *SettingsModel {
	return &SettingsModel{
		engine: engine,
		theme:  theme,
		mode:   settingsModeView,
	}
}

// IsCapturingInput returns true when the edit form is active
func (m *SettingsModel) IsCapturingInput() bool {
	return m.mode == settingsModeEdit
}

func (m *SettingsModel) Init() tea.Cmd {
	return nil
}

// initForm prefills the duration fields with the current minutes
func (m *SettingsModel) initForm() {
	m.fields = make([]textinput.Model, settingsFieldCount)
	settings := m.engine.Settings()

	m.fields[settingsFieldWork] = textinput.New()
	m.fields[settingsFieldWork].Placeholder = "25"
	m.fields[settingsFieldWork].CharLimit = 4
	m.fields[settingsFieldWork].Width = 10
	m.fields[settingsFieldWork].SetValue(strconv.Itoa(settings.WorkDurationSeconds / 60))

	m.fields[settingsFieldBreak] = textinput.New()
	m.fields[settingsFieldBreak].Placeholder = "5"
	m.fields[settingsFieldBreak].CharLimit = 4
	m.fields[settingsFieldBreak].Width = 10
	m.fields[settingsFieldBreak].SetValue(strconv.Itoa(settings.BreakDurationSeconds / 60))

	m.fieldFocus = settingsFieldWork
	m.fields[settingsFieldWork].Focus()
}

// parseMinutes reads a whole number of minutes from a form field
func parseMinutes(label, value string) (int, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || minutes <= 0 {
		return 0, fmt.Errorf("%s must be a positive number of minutes", label)
	}
	return minutes, nil
}

// saveDurations applies the form through the engine. The engine is not safe
// for use from a tea.Cmd goroutine, so this runs inside Update.
func (m *SettingsModel) saveDurations() error {
	workMinutes, err := parseMinutes("work duration", m.fields[settingsFieldWork].Value())
	if err != nil {
		return err
	}
	breakMinutes, err := parseMinutes("break duration", m.fields[settingsFieldBreak].Value())
	if err != nil {
		return err
	}

	ctx := context.Background()
	if workMinutes*60 != m.engine.Settings().WorkDurationSeconds {
		if err := m.engine.SetWorkDuration(ctx, workMinutes); err != nil {
			return err
		}
	}
	if breakMinutes*60 != m.engine.Settings().BreakDurationSeconds {
		if err := m.engine.SetBreakDuration(ctx, breakMinutes); err != nil {
			return err
		}
	}
	return nil
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode == settingsModeEdit {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.err = nil
		ctx := context.Background()
		switch {
		case key.Matches(msg, DefaultKeyMap.Back):
			return m, func() tea.Msg { return SwitchScreenMsg{Screen: ScreenTimer} }

		case key.Matches(msg, DefaultKeyMap.Edit):
			m.mode = settingsModeEdit
			m.statusMsg = ""
			m.initForm()
			return m, m.fields[m.fieldFocus].Focus()

		case key.Matches(msg, DefaultKeyMap.Sound):
			enabled := !m.engine.Settings().SoundEnabled
			m.err = m.engine.SetSoundEnabled(ctx, enabled)
			m.statusMsg = "Sound " + strings.ToLower(onOff(enabled))

		case key.Matches(msg, DefaultKeyMap.Dark):
			enabled := !m.engine.Settings().DarkModeEnabled
			m.err = m.engine.SetDarkModeEnabled(ctx, enabled)
			m.statusMsg = "Dark mode " + strings.ToLower(onOff(enabled))
		}
	}

	return m, nil
}

func (m *SettingsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, DefaultKeyMap.Back):
			m.mode = settingsModeView
			m.err = nil
			return m, nil

		case key.Matches(msg, DefaultKeyMap.Next):
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus + 1) % settingsFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case key.Matches(msg, DefaultKeyMap.Prev):
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus - 1 + settingsFieldCount) % settingsFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case msg.String() == "enter" && m.fieldFocus < settingsFieldCount-1:
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus++
			return m, m.fields[m.fieldFocus].Focus()

		case msg.String() == "enter", key.Matches(msg, DefaultKeyMap.Save):
			if err := m.saveDurations(); err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.mode = settingsModeView
			m.statusMsg = "Settings saved"
			return m, nil
		}
	}

	// Update the focused text input
	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *SettingsModel) View() string {
	if m.mode == settingsModeEdit {
		return m.viewForm()
	}
	return m.viewSettings()
}

func (m *SettingsModel) viewSettings() string {
	theme := *m.theme
	settings := m.engine.Settings()

	var s string
	s += theme.title().Render("Settings") + "\n\n"

	if m.err != nil {
		s += theme.errorText().Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	} else if m.statusMsg != "" {
		s += theme.successText().Render("  "+m.statusMsg) + "\n\n"
	}

	labelStyle := lipgloss.NewStyle().Bold(true).Width(18)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Primary)

	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Work Duration:"),
		valueStyle.Render(fmt.Sprintf("%d min", settings.WorkDurationSeconds/60)))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Break Duration:"),
		valueStyle.Render(fmt.Sprintf("%d min", settings.BreakDurationSeconds/60)))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Sound:"), valueStyle.Render(onOff(settings.SoundEnabled)))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Dark Mode:"), valueStyle.Render(onOff(settings.DarkModeEnabled)))

	s += "\n" + theme.help().Render("  enter: edit durations  m: sound on/off  d: dark mode on/off  esc: back")

	return s
}

func (m *SettingsModel) viewForm() string {
	theme := *m.theme

	var s string
	s += theme.title().Render("Edit Durations") + "\n\n"

	labels := []string{"Work (minutes):", "Break (minutes):"}
	for i, label := range labels {
		indicator := "  "
		labelStyle := theme.subtitle()
		if i == m.fieldFocus {
			indicator = "> "
			labelStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
		}
		s += fmt.Sprintf("%s%s\n  %s\n\n", indicator, labelStyle.Render(label), m.fields[i].View())
	}

	if m.err != nil {
		s += theme.errorText().Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	}

	s += theme.help().Render("  tab/shift+tab: navigate fields  ctrl+s: save  enter: next/save  esc: cancel")

	return s
}
