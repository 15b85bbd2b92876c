package app

import (
	"fmt"
	"slices"
)

// Color modes for diagnostic output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
	colorModes = []string{ColorAuto, ColorAlways, ColorNever}
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LogFormat string
	LogLevel  string
	// OutDir is where generate writes fragments.
	OutDir string
	Color  string
	// Severity overrides the default severity of checks, keyed by check ID.
	Severity map[string]string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if _, err := parseLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if !slices.Contains(logFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log format %q: must be one of %v", cfg.LogFormat, logFormats)
	}
	if !slices.Contains(colorModes, cfg.Color) {
		return nil, fmt.Errorf("invalid color mode %q: must be one of %v", cfg.Color, colorModes)
	}
	if cfg.OutDir == "" {
		return nil, fmt.Errorf("output directory cannot be empty")
	}
	return &cfg, nil
}
