package observability

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LogConfig selects the level and encoding of structured logs.
type LogConfig struct {
	Level      string `json:"level" yaml:"level" validate:"omitempty,oneof=trace debug info warn error disabled"`
	Format     string `json:"format" yaml:"format" validate:"omitempty,oneof=json pretty"`
	TimeFormat string `json:"time_format" yaml:"time_format"`
}

// NewLogger builds a zerolog logger writing to out (stderr when nil). An
// unknown level falls back to info.
func NewLogger(cfg LogConfig, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}

	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}

	if cfg.Format == "pretty" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: timeFormat}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
}
