package repository

import (
	"time"

	"github.com/andy/pomo/internal/domain"
)

// timeLayout is the RFC3339 format for storing times in SQLite
const timeLayout = time.RFC3339

// formatTime returns the current time formatted as RFC3339
func formatTime() string {
	return time.Now().Format(timeLayout)
}

// settingsRecord is the serialized shape shared by every backend
type settingsRecord struct {
	WorkDurationSeconds  int  `yaml:"work_duration_seconds" json:"workDurationSeconds"`
	BreakDurationSeconds int  `yaml:"break_duration_seconds" json:"breakDurationSeconds"`
	SoundEnabled         bool `yaml:"sound_enabled" json:"soundEnabled"`
	DarkModeEnabled      bool `yaml:"dark_mode_enabled" json:"darkModeEnabled"`
}

func toRecord(s domain.Settings) settingsRecord {
	return settingsRecord{
		WorkDurationSeconds:  s.WorkDurationSeconds,
		BreakDurationSeconds: s.BreakDurationSeconds,
		SoundEnabled:         s.SoundEnabled,
		DarkModeEnabled:      s.DarkModeEnabled,
	}
}

// toSettings converts a decoded record, replacing non-positive durations
// with defaults
func (r settingsRecord) toSettings() *domain.Settings {
	s := domain.Settings{
		WorkDurationSeconds:  r.WorkDurationSeconds,
		BreakDurationSeconds: r.BreakDurationSeconds,
		SoundEnabled:         r.SoundEnabled,
		DarkModeEnabled:      r.DarkModeEnabled,
	}.Normalized()
	return &s
}
