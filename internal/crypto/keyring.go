package crypto

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"
)

// Keyring provides secure storage for the settings database key
type Keyring interface {
	GetKey() (string, error)
	SetKey(password string) error
	DeleteKey() error
}

const (
	ServiceName = "pomo"
	KeyName     = "settings-db-key"

	// EnvKey overrides the OS keyring when set
	EnvKey = "POMO_DB_KEY"
)

// ErrKeyNotFound is returned when neither the environment nor the OS keyring holds a key
var ErrKeyNotFound = errors.New("settings database key not found")

type systemKeyring struct {
	getenv func(string) string
}

// NewKeyring returns a keyring backed by the OS secret store, with the
// POMO_DB_KEY environment variable taking precedence
func NewKeyring() Keyring {
	return &systemKeyring{getenv: os.Getenv}
}

// GetKey returns the key from POMO_DB_KEY or the OS keyring
func (k *systemKeyring) GetKey() (string, error) {
	if key := k.getenv(EnvKey); key != "" {
		return key, nil
	}

	key, err := keyring.Get(ServiceName, KeyName)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to retrieve key from keyring: %w", err)
	}
	if key == "" {
		return "", ErrKeyNotFound
	}
	return key, nil
}

// SetKey stores the key in the OS keyring
func (k *systemKeyring) SetKey(password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}
	if err := keyring.Set(ServiceName, KeyName, password); err != nil {
		return fmt.Errorf("failed to store key in keyring (set %s instead): %w", EnvKey, err)
	}
	return nil
}

// DeleteKey removes the key from the OS keyring
func (k *systemKeyring) DeleteKey() error {
	if err := keyring.Delete(ServiceName, KeyName); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrKeyNotFound
		}
		return fmt.Errorf("failed to delete key from keyring: %w", err)
	}
	return nil
}
