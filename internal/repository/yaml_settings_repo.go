package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/andy/pomo/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLSettingsRepo stores preferences in a YAML file under SettingsKey
type YAMLSettingsRepo struct {
	path string
}

// NewYAMLSettingsRepo creates a repository backed by the file at path
func NewYAMLSettingsRepo(path string) *YAMLSettingsRepo {
	return &YAMLSettingsRepo{path: path}
}

// Path returns the backing file path
func (r *YAMLSettingsRepo) Path() string {
	return r.path
}

// Load reads the preferences file. A missing file or missing key returns nil.
func (r *YAMLSettingsRepo) Load(ctx context.Context) (*domain.Settings, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var doc map[string]*settingsRecord
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSettings, err)
	}

	record, ok := doc[SettingsKey]
	if !ok || record == nil {
		return nil, nil
	}
	return record.toSettings(), nil
}

// Save writes the preferences file, creating parent directories
func (r *YAMLSettingsRepo) Save(ctx context.Context, settings domain.Settings) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := yaml.Marshal(map[string]settingsRecord{SettingsKey: toRecord(settings)})
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Delete removes the preferences file. Deleting a missing file is not an error.
func (r *YAMLSettingsRepo) Delete(ctx context.Context) error {
	if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete settings file: %w", err)
	}
	return nil
}
