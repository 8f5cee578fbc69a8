package domain

import "fmt"

type TimerStatus string

const (
	TimerStatusIdle    TimerStatus = "idle"
	TimerStatusRunning TimerStatus = "running"
	TimerStatusPaused  TimerStatus = "paused"
)

// TimerState is a snapshot of the countdown
type TimerState struct {
	Mode             Mode
	RemainingSeconds int
	Running          bool

	// Paused is set once a running countdown has been paused and cleared
	// by start, reset or a mode switch.
	Paused bool
}

// NewTimerState creates the startup state: work mode, full duration, not running
func NewTimerState(settings Settings) TimerState {
	return TimerState{
		Mode:             ModeWork,
		RemainingSeconds: settings.WorkDurationSeconds,
	}
}

// Status returns the current timer status
func (s TimerState) Status() TimerStatus {
	switch {
	case s.Running:
		return TimerStatusRunning
	case s.Paused:
		return TimerStatusPaused
	default:
		return TimerStatusIdle
	}
}

// CanStart reports whether the start control should be enabled
func (s TimerState) CanStart() bool {
	return !s.Running
}

// CanPause reports whether the pause control should be enabled
func (s TimerState) CanPause() bool {
	return s.Running
}

// Progress returns the elapsed fraction of a phase of the given total length,
// clamped to [0, 1].
func Progress(totalSeconds, remainingSeconds int) float64 {
	if totalSeconds <= 0 {
		return 1
	}
	progress := float64(totalSeconds-remainingSeconds) / float64(totalSeconds)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// FormatClock renders seconds as zero-padded MM:SS.
// Minutes are not wrapped into hours.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
