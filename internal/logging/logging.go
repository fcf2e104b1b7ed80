// Package logging builds the zerolog logger used across ltask.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"ltask/internal/config"
)

// New creates a logger writing to w at the configured level and format.
// cfg.Debug forces the debug level.
func New(w io.Writer, cfg *config.Config) zerolog.Logger {
	level := ParseLevel(cfg.LogLevel)
	if cfg.Debug {
		level = zerolog.DebugLevel
	}

	out := w
	if cfg.LogFormat != config.LogFormatJSON {
		out = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    true,
			TimeFormat: time.TimeOnly,
		}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// ParseLevel parses a level name, falling back to warn.
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return level
}
