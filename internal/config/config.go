package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SettingsFileName is the optional per-user settings file inside the data dir.
const SettingsFileName = "config.yaml"

// DefaultCacheTTLSeconds is how long table reads stay cached.
const DefaultCacheTTLSeconds = 300

// Settings holds tunables read from config.yaml. Zero values fall back to
// defaults at load time.
type Settings struct {
	// TablesDir overrides where per-table data files live. Relative paths
	// are resolved against the data dir.
	TablesDir string `yaml:"tables_dir"`
	// CacheTTL is the table read-cache lifetime in seconds.
	CacheTTL int `yaml:"cache_ttl"`
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// Default returns the settings used when no config.yaml exists.
func Default() Settings {
	return Settings{
		TablesDir: "tables",
		CacheTTL:  DefaultCacheTTLSeconds,
		LogLevel:  "warn",
	}
}

// Load reads config.yaml from the data dir, filling unset fields with
// defaults. A missing file is not an error.
func Load() (Settings, error) {
	d, err := DataDir()
	if err != nil {
		return Default(), err
	}
	return loadFile(filepath.Join(d, SettingsFileName))
}

func loadFile(path string) (Settings, error) {
	s := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}
	var in Settings
	if err := yaml.Unmarshal(raw, &in); err != nil {
		return s, fmt.Errorf("parse %s: %w", path, err)
	}
	if in.TablesDir != "" {
		s.TablesDir = in.TablesDir
	}
	if in.CacheTTL > 0 {
		s.CacheTTL = in.CacheTTL
	}
	if in.LogLevel != "" {
		s.LogLevel = in.LogLevel
	}
	return s, nil
}

// ResolveTablesDir turns the configured tables dir into an absolute path
// under the data dir when it is relative.
func ResolveTablesDir(s Settings) (string, error) {
	if filepath.IsAbs(s.TablesDir) {
		return s.TablesDir, nil
	}
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, s.TablesDir), nil
}
