package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/andy/pomo/internal/db"
	"github.com/andy/pomo/internal/domain"
)

func openTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "pomo.db"), "test-key")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := database.RunMigrations(); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	return database
}

func TestSQLiteSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepo(openTestDB(t))

	got, err := repo.Load(ctx)
	if err != nil || got != nil {
		t.Fatalf("expected empty store, got %+v (%v)", got, err)
	}

	first := domain.DefaultSettings()
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := first
	second.WorkDurationSeconds = 1800
	second.DarkModeEnabled = true
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || *got != second {
		t.Fatalf("expected %+v, got %+v", second, got)
	}

	if err := repo.Delete(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := repo.Load(ctx); got != nil {
		t.Fatalf("expected nothing after delete")
	}
}

func TestSQLiteCorruptValue(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	if _, err := database.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?)", SettingsKey, "{not json"); err != nil {
		t.Fatal(err)
	}

	_, err := NewSettingsRepo(database).Load(ctx)
	if !errors.Is(err, ErrCorruptSettings) {
		t.Fatalf("expected ErrCorruptSettings, got %v", err)
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	database := openTestDB(t)
	if err := database.RunMigrations(); err != nil {
		t.Fatalf("second run: %v", err)
	}
}
