package cli

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/sicko7947/claimflow"
)

// newLogger builds the service logger from cfg. Unknown levels fall back to info.
func newLogger(cfg claimflow.LogConfig, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(out).
		With().
		Timestamp().
		Str("service", "claimd").
		Logger().
		Level(level)
}
