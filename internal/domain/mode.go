package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMode = errors.New("unknown mode")

// Mode selects which configured duration the countdown uses
type Mode string

const (
	ModeWork  Mode = "work"
	ModeBreak Mode = "break"
)

// Opposite returns the mode that follows this one when a phase completes
func (m Mode) Opposite() Mode {
	if m == ModeWork {
		return ModeBreak
	}
	return ModeWork
}

// String returns the mode label shown to users
func (m Mode) String() string {
	switch m {
	case ModeWork:
		return "Work"
	case ModeBreak:
		return "Break"
	default:
		return "Unknown"
	}
}

// ParseMode accepts "work" or "break" (case-insensitive)
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeWork:
		return ModeWork, nil
	case ModeBreak:
		return ModeBreak, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
