package app

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
)

// toolName tags every record so logs stay attributable when the tool runs
// inside a larger build.
const toolName = "targetconf"

// parseLogLevel maps one of logLevels onto its slog level.
func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if !slices.Contains(logLevels, s) {
		return level, fmt.Errorf("invalid log level %q: must be one of %v", s, logLevels)
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// newLogger builds the app's logger from cfg. It does not set the global
// logger, allowing for isolated logger instances.
func newLogger(cfg *Config, w io.Writer) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch cfg.LogFormat {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("invalid log format %q: must be one of %v", cfg.LogFormat, logFormats)
	}

	return slog.New(handler).With("tool", toolName), nil
}
