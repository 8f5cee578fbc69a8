package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/andy/pomo/internal/chime"
	"github.com/andy/pomo/internal/config"
	"github.com/andy/pomo/internal/crypto"
	"github.com/andy/pomo/internal/db"
	"github.com/andy/pomo/internal/repository"
	"github.com/andy/pomo/internal/schedule"
	"github.com/andy/pomo/internal/service"
	"golang.org/x/term"
)

// App is the dependency injection container for all application components
type App struct {
	Config *config.Config
	DB     *db.DB // nil unless the sqlite backend is configured

	SettingsRepo repository.SettingsRepository
	Notifier     service.Notifier
}

// New creates a new App instance from the default config file
func New(ctx context.Context) (*App, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(ctx, cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	a := &App{
		Config: cfg,
		Notifier: chime.Chain{
			chime.NewCommandNotifier(cfg.Sound.Player),
			&chime.BellNotifier{Out: os.Stderr},
		},
	}

	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		database, err := openSettingsDB(cfg.Storage.DatabasePath)
		if err != nil {
			return nil, err
		}
		a.DB = database
		a.SettingsRepo = repository.NewSettingsRepo(database)
	default:
		a.SettingsRepo = repository.NewYAMLSettingsRepo(cfg.Storage.SettingsPath)
	}

	return a, nil
}

// openSettingsDB opens the encrypted settings database, prompting for a new
// key on first run
func openSettingsDB(path string) (*db.DB, error) {
	keyring := crypto.NewKeyring()

	password, err := keyring.GetKey()
	if err != nil {
		if !errors.Is(err, crypto.ErrKeyNotFound) {
			return nil, err
		}
		fmt.Println("Setting up settings database encryption for the first time...")
		password, err = promptForPassword()
		if err != nil {
			return nil, fmt.Errorf("failed to set password: %w", err)
		}
		if err := keyring.SetKey(password); err != nil {
			return nil, fmt.Errorf("failed to store encryption key: %w", err)
		}
	}

	database, err := db.Open(path, password)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := database.RunMigrations(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return database, nil
}

// NewTimerEngine builds a timer engine wired to this app's settings store
// and chime. display may be nil.
func (a *App) NewTimerEngine(ctx context.Context, scheduler schedule.Scheduler, display service.Display) service.TimerEngine {
	return service.NewTimerEngine(ctx, a.SettingsRepo, scheduler, display, a.Notifier)
}

// Close cleanly shuts down the application
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// promptForPassword prompts for a new database password (first run)
func promptForPassword() (string, error) {
	fmt.Println()
	fmt.Println("Your preferences will be stored in an encrypted database.")
	fmt.Println("The password will be kept in your system keyring.")
	fmt.Println()
	fmt.Print("Enter a password for the settings database: ")

	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if len(password) == 0 {
		return "", fmt.Errorf("password cannot be empty")
	}

	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}

	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}

	return string(password), nil
}
