package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ltask/internal/task"
)

var envKeys = []string{
	"LTASK_BACKEND",
	"LTASK_STORAGE_KEY",
	"LTASK_PRIORITIES",
	"LTASK_DEFAULT_PRIORITY",
	"LTASK_LOG_LEVEL",
	"LTASK_LOG_FORMAT",
}

// clearEnv unsets every LTASK_ variable for the test and restores the
// original values afterwards, including values set by .env loading.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestNew_Defaults(t *testing.T) {
	cfg, err := New("/tmp/ltask-test")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/ltask-test", cfg.Dir)
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, "tasks", cfg.StorageKey)
	assert.Equal(t, task.PrioritySet{"low", "medium", "high"}, cfg.Priorities)
	assert.Equal(t, task.PriorityMedium, cfg.DefaultPriority)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, LogFormatConsole, cfg.LogFormat)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	assert.Equal(t, filepath.Join("/xdg", "ltask"), DefaultConfigDir())
}

func TestDefaultConfigDir_Home(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/someone")

	assert.Equal(t, filepath.Join("/home/someone", ".config", "ltask"), DefaultConfigDir())
}

func TestPaths(t *testing.T) {
	cfg, _ := New("/cfg")

	assert.Equal(t, "/cfg/config.yaml", cfg.ConfigPath())
	assert.Equal(t, "/cfg/.env", cfg.DotEnvPath())
	assert.Equal(t, "/cfg/ltask.db", cfg.DatabasePath())
}

func TestLoad_NoFilesUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, task.PriorityMedium, cfg.DefaultPriority)
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ConfigFile), `
backend: sqlite
priorities: [p1, p2, p3]
default_priority: p1
log_format: json
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, task.PrioritySet{"p1", "p2", "p3"}, cfg.Priorities)
	assert.Equal(t, task.Priority("p1"), cfg.DefaultPriority)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ConfigFile), "backend: sqlite\n")
	t.Setenv("LTASK_BACKEND", "memory")
	t.Setenv("LTASK_PRIORITIES", "later,now")
	t.Setenv("LTASK_DEFAULT_PRIORITY", "now")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Backend)
	assert.Equal(t, task.PrioritySet{"later", "now"}, cfg.Priorities)
	assert.Equal(t, task.Priority("now"), cfg.DefaultPriority)
}

func TestLoad_EnvPrioritiesTrimmed(t *testing.T) {
	clearEnv(t)
	t.Setenv("LTASK_PRIORITIES", "low, high")
	t.Setenv("LTASK_DEFAULT_PRIORITY", "high")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, task.PrioritySet{"low", "high"}, cfg.Priorities)
	p, err := cfg.Priorities.Parse("HIGH")
	require.NoError(t, err)
	assert.Equal(t, task.PriorityHigh, p)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, DotEnvFile), "LTASK_LOG_LEVEL=debug\nLTASK_STORAGE_KEY=work\n")
	t.Setenv("LTASK_STORAGE_KEY", "home")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "home", cfg.StorageKey, "process env wins over .env")
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ConfigFile), "backend: [unterminated\n")

	_, err := Load(dir)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_InvalidSettings(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ConfigFile), "backend: postgres\n")

	_, err := Load(dir)
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "unknown backend: postgres")
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"unknown backend":      func(c *Config) { c.Backend = "redis" },
		"storage key is empty": func(c *Config) { c.StorageKey = " " },
		"no priorities":        func(c *Config) { c.Priorities = nil },
		"duplicate priority":   func(c *Config) { c.Priorities = task.PrioritySet{"a", "a"} },
		"empty priority":       func(c *Config) { c.Priorities = task.PrioritySet{"", "medium"} },
		"default priority":     func(c *Config) { c.DefaultPriority = "urgent" },
		"log level":            func(c *Config) { c.LogLevel = "loud" },
		"unknown log format":   func(c *Config) { c.LogFormat = "xml" },
	}
	for want, mutate := range cases {
		t.Run(want, func(t *testing.T) {
			cfg, _ := New(t.TempDir())
			mutate(cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), want)
		})
	}
}

func TestWriteFile_RoundTrip(t *testing.T) {
	clearEnv(t)
	dir := filepath.Join(t.TempDir(), "ltask")
	cfg, _ := New(dir)
	cfg.Backend = BackendSQLite
	cfg.Priorities = task.PrioritySet{"someday", "soon"}
	cfg.DefaultPriority = "soon"

	require.NoError(t, cfg.WriteFile())
	assert.True(t, cfg.HasConfigFile())

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg.Backend, loaded.Backend)
	assert.Equal(t, cfg.Priorities, loaded.Priorities)
	assert.Equal(t, cfg.DefaultPriority, loaded.DefaultPriority)
}
