package tui

import (
	"github.com/andy/pomo/internal/domain"
	"github.com/charmbracelet/bubbles/progress"
)

const ringWidth = 40

// newRing builds the countdown bar in a solid mode color
func newRing(color string, width int) progress.Model {
	bar := progress.New(progress.WithSolidFill(color), progress.WithoutPercentage())
	bar.Width = width
	return bar
}

// onOff formats a toggle for display
func onOff(enabled bool) string {
	if enabled {
		return "On"
	}
	return "Off"
}

// statusLabel renders the run status of a timer
func statusLabel(theme Theme, state domain.TimerState) string {
	switch state.Status() {
	case domain.TimerStatusRunning:
		return theme.running().Render("RUNNING")
	case domain.TimerStatusPaused:
		return theme.paused().Render("PAUSED")
	default:
		return theme.subtitle().Render("READY")
	}
}
