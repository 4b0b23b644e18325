package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file in the working directory.
	userConfigFile = ".todoconfig.yaml"

	// Environment variables that override the config file.
	envFile    = "TODO_FILE"
	envBackend = "TODO_BACKEND"

	// Default configuration values
	DefaultBackend    = BackendFile
	DefaultFilePath   = "todos.json"
	DefaultSQLitePath = "todos.db"
	DefaultColor      = ColorAuto
)

// ErrInvalidConfig is returned when the resolved configuration is unusable.
var ErrInvalidConfig = errors.New("invalid configuration")

// Backend names a Store implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// Color modes for list output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents user configuration from .todoconfig.yaml.
// This file is user-managed and never written by todo.
type Config struct {
	// Backend selects where todos are kept: memory, file or sqlite.
	Backend Backend `yaml:"backend"`

	// Path is the data file for the file and sqlite backends.
	// Relative paths are resolved against the directory holding the config.
	// When empty, the backend's default file name is used.
	Path string `yaml:"path"`

	// Color controls colored output: auto, always or never.
	Color string `yaml:"color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Backend: DefaultBackend,
		Color:   DefaultColor,
	}
}

// Overrides holds values given on the command line. Empty fields are unset.
type Overrides struct {
	Backend string
	Path    string
	NoColor bool
}

// DefaultPath returns the data file name used by b when no path is configured.
func DefaultPath(b Backend) string {
	switch b {
	case BackendSQLite:
		return DefaultSQLitePath
	case BackendFile:
		return DefaultFilePath
	default:
		return ""
	}
}

// LoadConfig loads .todoconfig.yaml from dir if it exists, otherwise returns
// defaults. Partial config files are merged with defaults. TODO_FILE and
// TODO_BACKEND override the file, and o overrides both.
// A path that was never set falls back to the chosen backend's default, so
// switching backends never points one backend at the other's data file.
func LoadConfig(dir string, o Overrides) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath(dir))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
		}
	}

	if v := os.Getenv(envFile); v != "" {
		cfg.Path = v
	}
	if v := os.Getenv(envBackend); v != "" {
		cfg.Backend = Backend(v)
	}

	if o.Path != "" {
		cfg.Path = o.Path
	}
	if o.Backend != "" {
		cfg.Backend = Backend(o.Backend)
	}
	if o.NoColor {
		cfg.Color = ColorNever
	}

	if cfg.Path == "" {
		cfg.Path = DefaultPath(cfg.Backend)
	}
	if cfg.Path != "" && !filepath.IsAbs(cfg.Path) {
		cfg.Path = filepath.Join(dir, cfg.Path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the config names a known backend and color mode.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("%w: invalid backend %q: must be one of memory, file, sqlite", ErrInvalidConfig, c.Backend)
	}
	if c.Backend != BackendMemory && c.Path == "" {
		return fmt.Errorf("%w: backend %q requires a path", ErrInvalidConfig, c.Backend)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: invalid color %q: must be one of auto, always, never", ErrInvalidConfig, c.Color)
	}
	return nil
}

// ConfigPath returns the path to the user config file in dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, userConfigFile)
}
