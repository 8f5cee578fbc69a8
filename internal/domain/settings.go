package domain

import (
	"errors"
	"time"
)

// ErrInvalidDuration is returned when a duration command is not a positive number
var ErrInvalidDuration = errors.New("duration must be a positive number of minutes")

const (
	DefaultWorkDurationSeconds  = 25 * 60
	DefaultBreakDurationSeconds = 5 * 60

	// MinDurationSeconds keeps progress computation away from a zero divisor
	MinDurationSeconds = 1
)

// Settings holds the user's preferences
type Settings struct {
	WorkDurationSeconds  int
	BreakDurationSeconds int
	SoundEnabled         bool
	DarkModeEnabled      bool
}

// DefaultSettings returns 25 minute work, 5 minute break, sound on, dark mode off
func DefaultSettings() Settings {
	return Settings{
		WorkDurationSeconds:  DefaultWorkDurationSeconds,
		BreakDurationSeconds: DefaultBreakDurationSeconds,
		SoundEnabled:         true,
		DarkModeEnabled:      false,
	}
}

// Duration returns the configured length of the given mode in seconds
func (s Settings) Duration(mode Mode) int {
	if mode == ModeBreak {
		return s.BreakDurationSeconds
	}
	return s.WorkDurationSeconds
}

// WorkDuration returns the work interval as a time.Duration
func (s Settings) WorkDuration() time.Duration {
	return time.Duration(s.WorkDurationSeconds) * time.Second
}

// BreakDuration returns the break interval as a time.Duration
func (s Settings) BreakDuration() time.Duration {
	return time.Duration(s.BreakDurationSeconds) * time.Second
}

// Normalized replaces non-positive durations with their defaults.
// Used for records read back from storage.
func (s Settings) Normalized() Settings {
	if s.WorkDurationSeconds <= 0 {
		s.WorkDurationSeconds = DefaultWorkDurationSeconds
	}
	if s.BreakDurationSeconds <= 0 {
		s.BreakDurationSeconds = DefaultBreakDurationSeconds
	}
	return s
}

// ClampDurationSeconds coerces a duration to at least MinDurationSeconds
func ClampDurationSeconds(seconds int) int {
	if seconds < MinDurationSeconds {
		return MinDurationSeconds
	}
	return seconds
}

// MinutesToSeconds validates a minutes value coming from a settings command
func MinutesToSeconds(minutes int) (int, error) {
	if minutes <= 0 {
		return 0, ErrInvalidDuration
	}
	return minutes * 60, nil
}
