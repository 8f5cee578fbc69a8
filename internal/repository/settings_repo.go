package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/andy/pomo/internal/db"
	"github.com/andy/pomo/internal/domain"
)

// SettingsRepo is a SQLite key-value implementation of SettingsRepository
type SettingsRepo struct {
	db *db.DB
}

// NewSettingsRepo creates a new SettingsRepo
func NewSettingsRepo(database *db.DB) *SettingsRepo {
	return &SettingsRepo{db: database}
}

// Load retrieves the preferences record, or nil if none is stored
func (r *SettingsRepo) Load(ctx context.Context) (*domain.Settings, error) {
	query := "SELECT value FROM settings WHERE key = ?"

	var value string
	err := r.db.QueryRowContext(ctx, query, SettingsKey).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	var record settingsRecord
	if err := json.Unmarshal([]byte(value), &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSettings, err)
	}
	return record.toSettings(), nil
}

// Save upserts the preferences record
func (r *SettingsRepo) Save(ctx context.Context, settings domain.Settings) error {
	value, err := json.Marshal(toRecord(settings))
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, SettingsKey, string(value), formatTime()); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Delete removes the preferences record
func (r *SettingsRepo) Delete(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", SettingsKey); err != nil {
		return fmt.Errorf("failed to delete settings: %w", err)
	}
	return nil
}
