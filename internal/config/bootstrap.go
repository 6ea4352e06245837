package config

import (
	"errors"
	"os"
	"path/filepath"
)

// FileName is the config file kept in the data dir.
const FileName = "config.yml"

// EnsureUserConfig returns the config path inside dataDir, writing the
// defaults there first when no file exists yet.
func EnsureUserConfig(dataDir string) (string, error) {
	userPath := filepath.Join(dataDir, FileName)

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if err := SaveAtomic(userPath, Default()); err != nil {
		return "", err
	}
	return userPath, nil
}
