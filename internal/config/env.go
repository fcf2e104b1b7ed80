package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"ltask/internal/task"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "LTASK"

// EnvConfig holds environment-based overrides.
// Empty values leave the file or default setting in place.
type EnvConfig struct {
	// Backend overrides the storage backend.
	// Env: LTASK_BACKEND
	Backend string `envconfig:"BACKEND"`

	// StorageKey overrides the storage key.
	// Env: LTASK_STORAGE_KEY
	StorageKey string `envconfig:"STORAGE_KEY"`

	// Priorities is a comma-separated priority set.
	// Env: LTASK_PRIORITIES
	Priorities []string `envconfig:"PRIORITIES"`

	// DefaultPriority overrides the default priority.
	// Env: LTASK_DEFAULT_PRIORITY
	DefaultPriority string `envconfig:"DEFAULT_PRIORITY"`

	// LogLevel overrides the log level.
	// Env: LTASK_LOG_LEVEL
	LogLevel string `envconfig:"LOG_LEVEL"`

	// LogFormat overrides the log format.
	// Env: LTASK_LOG_FORMAT
	LogFormat string `envconfig:"LOG_FORMAT"`
}

// LoadFromEnv reads EnvConfig from the process environment.
func LoadFromEnv() (EnvConfig, error) {
	var env EnvConfig
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return EnvConfig{}, fmt.Errorf("%w: environment: %v", ErrInvalid, err)
	}
	return env, nil
}

// Apply copies the non-empty fields of e onto c.
func (e EnvConfig) Apply(c *Config) {
	if e.Backend != "" {
		c.Backend = e.Backend
	}
	if e.StorageKey != "" {
		c.StorageKey = e.StorageKey
	}
	if len(e.Priorities) > 0 {
		c.Priorities = toPriorities(e.Priorities)
	}
	if e.DefaultPriority != "" {
		c.DefaultPriority = task.Priority(e.DefaultPriority)
	}
	if e.LogLevel != "" {
		c.LogLevel = e.LogLevel
	}
	if e.LogFormat != "" {
		c.LogFormat = e.LogFormat
	}
}

// LoadDotEnv loads environment variables from a .env file.
// If the file does not exist, it silently returns nil.
// Variables already set in the environment are not overridden.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}
