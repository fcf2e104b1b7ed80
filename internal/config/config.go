// Package config handles the XDG configuration directory, the config file
// and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"ltask/internal/persist"
	"ltask/internal/task"
)

const (
	// AppName is the application directory name.
	AppName = "ltask"

	// ConfigFile is the YAML settings filename.
	ConfigFile = "config.yaml"

	// DotEnvFile is the optional environment filename.
	DotEnvFile = ".env"

	// DatabaseFile is the SQLite database filename.
	DatabaseFile = "ltask.db"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Backend selects the storage backend: file, sqlite or memory.
	Backend string

	// StorageKey is the key the task collection is stored under.
	StorageKey string

	// Priorities is the allowed priority set, in display order.
	Priorities task.PrioritySet

	// DefaultPriority is used by add when no priority is given.
	DefaultPriority task.Priority

	// LogLevel is a zerolog level name.
	LogLevel string

	// LogFormat is console or json.
	LogFormat string
}

// New creates a new Config with defaults and the default or specified
// config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/ltask or $HOME/.config/ltask.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:             dir,
		Backend:         BackendFile,
		StorageKey:      persist.DefaultKey,
		Priorities:      task.DefaultPriorities(),
		DefaultPriority: task.PriorityMedium,
		LogLevel:        zerolog.LevelWarnValue,
		LogFormat:       LogFormatConsole,
	}, nil
}

// Load creates a Config for configDir and applies, in order, the config
// file, the .env file and the process environment. The result is
// validated.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyFile(cfg.ConfigPath()); err != nil {
		return nil, err
	}
	if err := LoadDotEnv(cfg.DotEnvPath()); err != nil {
		return nil, fmt.Errorf("load %s: %w", DotEnvFile, err)
	}
	env, err := LoadFromEnv()
	if err != nil {
		return nil, err
	}
	env.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to the YAML config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// DotEnvPath returns the path to the optional .env file.
func (c *Config) DotEnvPath() string {
	return filepath.Join(c.Dir, DotEnvFile)
}

// DatabasePath returns the path to the SQLite database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Dir, DatabaseFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasConfigFile checks if the config file exists.
func (c *Config) HasConfigFile() bool {
	_, err := os.Stat(c.ConfigPath())
	return err == nil
}

// Validate checks that settings are consistent.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("%w: unknown backend: %s", ErrInvalid, c.Backend)
	}

	if strings.TrimSpace(c.StorageKey) == "" {
		return fmt.Errorf("%w: storage key is empty", ErrInvalid)
	}

	if len(c.Priorities) == 0 {
		return fmt.Errorf("%w: no priorities configured", ErrInvalid)
	}
	seen := make(map[task.Priority]bool, len(c.Priorities))
	for _, p := range c.Priorities {
		if strings.TrimSpace(string(p)) == "" {
			return fmt.Errorf("%w: empty priority", ErrInvalid)
		}
		if seen[p] {
			return fmt.Errorf("%w: duplicate priority: %s", ErrInvalid, p)
		}
		seen[p] = true
	}
	if !c.Priorities.Contains(c.DefaultPriority) {
		return fmt.Errorf("%w: default priority %s is not one of %s", ErrInvalid, c.DefaultPriority, c.Priorities)
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("%w: log level: %s", ErrInvalid, c.LogLevel)
	}
	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("%w: unknown log format: %s", ErrInvalid, c.LogFormat)
	}
	return nil
}
