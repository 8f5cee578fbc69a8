package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage.Backend != BackendYAML {
		t.Fatalf("expected yaml backend by default, got %q", cfg.Storage.Backend)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Storage.Backend = BackendSQLite
	cfg.Sound.Player = []string{"aplay", "-q"}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Storage.Backend != BackendSQLite {
		t.Fatalf("expected sqlite backend, got %q", loaded.Storage.Backend)
	}
	if len(loaded.Sound.Player) != 2 || loaded.Sound.Player[0] != "aplay" {
		t.Fatalf("unexpected player %v", loaded.Sound.Player)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("sound:\n  player: [paplay]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.SettingsPath == "" {
		t.Fatalf("expected default settings path to survive a partial file")
	}
	if cfg.Sound.Player[0] != "paplay" {
		t.Fatalf("expected paplay, got %v", cfg.Sound.Player)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("storage:\n  backend: redis\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
