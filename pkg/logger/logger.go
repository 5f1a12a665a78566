package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"wrstats/pkg/config"
)

// New creates the application logger writing JSON lines to stdout.
func New(cfg *config.Config) zerolog.Logger {
	return NewWithWriter(os.Stdout, cfg.Log.Level)
}

// NewWithWriter creates a logger on the given writer.
// An unknown level falls back to info.
func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).
		With().
		Timestamp().
		Caller().
		Logger().
		Level(lvl)
}
