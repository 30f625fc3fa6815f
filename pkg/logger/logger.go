// Package logger builds the zerolog loggers used across the tourism site.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/wanderlust/tourism-site/internal/pkg/config"
)

const serviceName = "tourism-site"

// New returns the site logger described by cfg. Development runs get a
// coloured console writer; every other environment logs JSON lines.
// A nil out writes to stdout.
func New(cfg *config.Config, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}
	if cfg.IsDevelopment() {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano

	return zerolog.New(out).
		Level(Level(cfg.LogLevel)).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("env", cfg.Env).
		Str("storage", cfg.StorageDriver).
		Logger()
}

// Bootstrap is the logger for failures that happen before configuration
// has loaded.
func Bootstrap() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Str("service", serviceName).Logger()
}

// Component derives a child logger tagged with the subsystem name.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// Level maps a LOG_LEVEL value to a zerolog level. Empty or unknown values
// fall back to info.
func Level(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
