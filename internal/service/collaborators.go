package service

import (
	"context"
	"time"

	"github.com/andy/pomo/internal/domain"
)

// Display renders the countdown
type Display interface {
	// OnTick receives the remaining seconds of the current phase
	OnTick(remainingSeconds int)
	// OnProgress receives the elapsed fraction of the current phase in [0, 1]
	OnProgress(fraction float64)
}

// Notifier sounds the completion chime. Failures are logged by the engine
// and never interrupt a phase change.
type Notifier interface {
	Chime(ctx context.Context) error
}

// EventType identifies a timer event
type EventType string

const (
	EventTick           EventType = "tick"
	EventModeChange     EventType = "mode_change"
	EventRunningChange  EventType = "running_change"
	EventCompleted      EventType = "completed"
	EventSettingsChange EventType = "settings_change"
)

// Event is delivered to observers after the engine changes state
type Event struct {
	Type     EventType
	State    domain.TimerState
	Progress float64
	Settings domain.Settings
	At       time.Time

	// Completed is the mode that just finished (EventCompleted only)
	Completed domain.Mode
}

// Observer receives timer events
type Observer func(Event)

type nopDisplay struct{}

func (nopDisplay) OnTick(int)         {}
func (nopDisplay) OnProgress(float64) {}

type nopNotifier struct{}

func (nopNotifier) Chime(context.Context) error { return nil }
