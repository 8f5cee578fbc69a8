package tui

import (
	"github.com/andy/pomo/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Theme is the palette for one of the two display modes
type Theme struct {
	Name string

	Primary lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Border  lipgloss.Color
	Footer  lipgloss.Color
	Help    lipgloss.Color
	Text    lipgloss.Color
	Canvas  lipgloss.Color

	// Ring fills are hex strings because the progress bubble takes strings
	WorkRing  string
	BreakRing string
}

var (
	lightTheme = Theme{
		Name:      "Light",
		Primary:   lipgloss.Color("39"),  // Blue
		Muted:     lipgloss.Color("241"), // Gray
		Success:   lipgloss.Color("28"),  // Green
		Warning:   lipgloss.Color("166"), // Orange
		Error:     lipgloss.Color("160"), // Red
		Border:    lipgloss.Color("63"),  // Soft purple
		Footer:    lipgloss.Color("130"),
		Help:      lipgloss.Color("31"),
		Text:      lipgloss.Color("235"),
		Canvas:    lipgloss.Color(""),
		WorkRing:  "#E74C3C",
		BreakRing: "#2ECC71",
	}

	darkTheme = Theme{
		Name:      "Dark",
		Primary:   lipgloss.Color("117"),
		Muted:     lipgloss.Color("245"),
		Success:   lipgloss.Color("76"),
		Warning:   lipgloss.Color("214"),
		Error:     lipgloss.Color("203"),
		Border:    lipgloss.Color("62"),
		Footer:    lipgloss.Color("226"), // Bright yellow
		Help:      lipgloss.Color("117"), // Bright cyan
		Text:      lipgloss.Color("252"),
		Canvas:    lipgloss.Color("234"),
		WorkRing:  "#FF6B6B",
		BreakRing: "#51CF66",
	}
)

// themeFor picks the palette for the dark-mode preference
func themeFor(dark bool) Theme {
	if dark {
		return darkTheme
	}
	return lightTheme
}

// RingColor is the progress fill for a mode
func (t Theme) RingColor(mode domain.Mode) string {
	if mode == domain.ModeBreak {
		return t.BreakRing
	}
	return t.WorkRing
}

func (t Theme) title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
}

func (t Theme) subtitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

func (t Theme) help() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Help)
}

func (t Theme) errorText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error)
}

func (t Theme) successText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Success)
}

func (t Theme) header() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Padding(0, 1)
}

func (t Theme) footer() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Footer).Bold(true)
}

func (t Theme) frame() lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(1, 2)
	if t.Canvas != "" {
		style = style.Background(t.Canvas)
	}
	return style
}

func (t Theme) running() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Success)
}

func (t Theme) paused() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Warning)
}

// tab renders a mode label, highlighted when active
func (t Theme) tab(mode domain.Mode, active bool) string {
	style := lipgloss.NewStyle().Padding(0, 2)
	if active {
		return style.Bold(true).
			Background(lipgloss.Color(t.RingColor(mode))).
			Foreground(lipgloss.Color("0")).
			Render(mode.String())
	}
	return style.Foreground(t.Muted).Render(mode.String())
}
