// Package config resolves primdb's data paths and optional settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Environment overrides. They win over the settings file; command-line flags
// win over both.
const (
	EnvPrimdbHome = "PRIMDB_HOME"
	EnvPrimdbMeta = "PRIMDB_META"
)

// DataDir returns the directory used to store primdb data.
func DataDir() (string, error) {
	if v := os.Getenv(EnvPrimdbHome); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	// Use a dot-directory in the user's home on all platforms
	return filepath.Join(home, ".primdb"), nil
}

// MetaPath returns the full path to the metadata JSON file.
func MetaPath() (string, error) {
	if v := os.Getenv(EnvPrimdbMeta); v != "" {
		return v, nil
	}
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "db_meta.json"), nil
}

// EnsureDataDir creates the data directory if needed and returns its path.
func EnsureDataDir() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(d, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return d, nil
}
