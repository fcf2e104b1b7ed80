package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"ltask/internal/task"
)

// File is the on-disk layout of config.yaml. Empty fields keep defaults.
type File struct {
	Backend         string   `yaml:"backend,omitempty"`
	StorageKey      string   `yaml:"storage_key,omitempty"`
	Priorities      []string `yaml:"priorities,omitempty"`
	DefaultPriority string   `yaml:"default_priority,omitempty"`
	LogLevel        string   `yaml:"log_level,omitempty"`
	LogFormat       string   `yaml:"log_format,omitempty"`
}

// ReadFile parses the config file at path.
func ReadFile(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("%w: parse %s: %v", ErrInvalid, path, err)
	}
	return f, nil
}

// applyFile overlays the config file at path; a missing file is ignored.
func (c *Config) applyFile(path string) error {
	f, err := ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	f.Apply(c)
	return nil
}

// Apply copies the non-empty fields of f onto c.
func (f File) Apply(c *Config) {
	if f.Backend != "" {
		c.Backend = f.Backend
	}
	if f.StorageKey != "" {
		c.StorageKey = f.StorageKey
	}
	if len(f.Priorities) > 0 {
		c.Priorities = toPriorities(f.Priorities)
	}
	if f.DefaultPriority != "" {
		c.DefaultPriority = task.Priority(f.DefaultPriority)
	}
	if f.LogLevel != "" {
		c.LogLevel = f.LogLevel
	}
	if f.LogFormat != "" {
		c.LogFormat = f.LogFormat
	}
}

// FileFrom returns the File form of c's settings.
func FileFrom(c *Config) File {
	prios := make([]string, len(c.Priorities))
	for i, p := range c.Priorities {
		prios[i] = string(p)
	}
	return File{
		Backend:         c.Backend,
		StorageKey:      c.StorageKey,
		Priorities:      prios,
		DefaultPriority: string(c.DefaultPriority),
		LogLevel:        c.LogLevel,
		LogFormat:       c.LogFormat,
	}
}

// WriteFile writes c's settings to its config path, creating the config
// directory if needed. An existing file is replaced.
func (c *Config) WriteFile() error {
	if err := c.EnsureDir(); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(FileFrom(c))
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	header := []byte("# ltask configuration\n")
	return os.WriteFile(c.ConfigPath(), append(header, data...), 0600)
}

func toPriorities(names []string) task.PrioritySet {
	out := make(task.PrioritySet, len(names))
	for i, n := range names {
		out[i] = task.Priority(strings.TrimSpace(n))
	}
	return out
}
