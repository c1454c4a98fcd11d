// Package logging builds the application logger from configuration.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/km-arc/go-bootstrap/framework/config"
)

// New constructs a zerolog.Logger from the log section of cfg.
// Unknown levels fall back to info; Pretty switches from JSON lines to the
// human console writer.
func New(cfg *config.Config) zerolog.Logger {
	return NewWriter(cfg, os.Stderr)
}

// NewWriter is New with an explicit destination, mainly for tests.
func NewWriter(cfg *config.Config, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Log.Pretty {
		out = zerolog.ConsoleWriter{Out: out}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("app", cfg.App.Name).
		Logger()
}
