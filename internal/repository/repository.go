package repository

import (
	"context"
	"errors"

	"github.com/andy/pomo/internal/domain"
)

// SettingsKey is the fixed key the preferences record is stored under
const SettingsKey = "pomodoroSettings"

// ErrCorruptSettings is returned when a stored record cannot be decoded
var ErrCorruptSettings = errors.New("stored settings are corrupt")

// SettingsRepository persists the user's preferences as one flat record
type SettingsRepository interface {
	Load(ctx context.Context) (*domain.Settings, error) // Returns nil if nothing is saved
	Save(ctx context.Context, settings domain.Settings) error
	Delete(ctx context.Context) error
}
