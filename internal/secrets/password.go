package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// KeyringService groups the app's secrets in the OS keychain.
	KeyringService = "noticegen"

	// DraftAccount is the keychain account holding the drafting API key.
	DraftAccount = "draft:api-key"

	// EnvAPIKey overrides the keychain when set.
	EnvAPIKey = "OPENAI_API_KEY"
)

var ErrNotFound = errors.New("API key not found (set it with `noticegen apikey set` or OPENAI_API_KEY)")

// GetAPIKey returns the drafting API key, preferring the environment over
// the keychain.
func GetAPIKey() (string, error) {
	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		return v, nil
	}
	pw, err := keyring.Get(KeyringService, DraftAccount)
	if err == nil && strings.TrimSpace(pw) != "" {
		return pw, nil
	}
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return "", err
	}
	return "", ErrNotFound
}

func SetAPIKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("API key is empty")
	}
	return keyring.Set(KeyringService, DraftAccount, strings.TrimSpace(key))
}

func DeleteAPIKey() error {
	err := keyring.Delete(KeyringService, DraftAccount)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
