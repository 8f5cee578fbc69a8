package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Storage backends for user preferences
const (
	BackendYAML   = "yaml"
	BackendSQLite = "sqlite"
)

type Config struct {
	// Where user preferences are stored
	Storage StorageConfig `yaml:"storage"`

	// Completion chime playback
	Sound SoundConfig `yaml:"sound"`

	// Log output
	Log LogConfig `yaml:"log"`
}

type StorageConfig struct {
	Backend      string `yaml:"backend"`       // "yaml" or "sqlite"
	SettingsPath string `yaml:"settings_path"` // YAML preferences file
	DatabasePath string `yaml:"database_path"` // Encrypted SQLite database
}

type SoundConfig struct {
	// Player is the command used to play the chime WAV file; the file path is
	// appended as the last argument. Empty means auto-detect.
	Player []string `yaml:"player"`
}

type LogConfig struct {
	Path string `yaml:"path"` // Log file used while the TUI owns the terminal
}

// configDir returns ~/.config/pomo
func configDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "pomo")
	}
	return filepath.Join(homeDir, ".config", "pomo")
}

// DefaultConfigPath returns ~/.config/pomo/config.yaml
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	dir := configDir()
	return &Config{
		Storage: StorageConfig{
			Backend:      BackendYAML,
			SettingsPath: filepath.Join(dir, "settings.yaml"),
			DatabasePath: filepath.Join(dir, "pomo.db"),
		},
		Log: LogConfig{
			Path: filepath.Join(dir, "pomo.log"),
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Validate checks values that have a closed set of options
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendYAML, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q (want %q or %q)", c.Storage.Backend, BackendYAML, BackendSQLite)
	}
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates the directories the configured files live in
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		filepath.Dir(c.Storage.SettingsPath),
		filepath.Dir(c.Log.Path),
	}
	if c.Storage.Backend == BackendSQLite {
		dirs = append(dirs, filepath.Dir(c.Storage.DatabasePath))
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
