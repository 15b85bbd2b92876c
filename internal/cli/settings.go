package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/specialistvlad/targetconf/internal/app"
	"github.com/spf13/pflag"
)

const (
	// DefaultSettingsFile is read from the working directory when present.
	DefaultSettingsFile = "targetconf.yaml"
	// EnvPrefix prefixes environment variables holding settings.
	EnvPrefix = "TARGETCONF_"
	// DefaultOutDir is where generate writes unless told otherwise.
	DefaultOutDir = "build"
)

// Settings is the on-disk and environment form of the tool settings.
type Settings struct {
	LogLevel  string            `koanf:"log_level"`
	LogFormat string            `koanf:"log_format"`
	OutDir    string            `koanf:"out_dir"`
	Color     string            `koanf:"color"`
	Severity  map[string]string `koanf:"severity"`
}

// LoadSettings merges, from lowest to highest precedence, the defaults,
// the settings file, TARGETCONF_ environment variables and the flags that
// were set on the command line. An empty settingsFile means the default
// file, which may be absent.
func LoadSettings(settingsFile string, flags *pflag.FlagSet) (*app.Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"log_level":  "info",
		"log_format": "text",
		"out_dir":    DefaultOutDir,
		"color":      app.ColorAuto,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	path, err := settingsPath(settingsFile)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading settings file %s: %w", path, err)
		}
	}

	// TARGETCONF_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed || f.Name == "config" || f.Name == "severity" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}

	if flags != nil && flags.Changed("severity") {
		overrides, err := flags.GetStringToString("severity")
		if err != nil {
			return nil, err
		}
		if s.Severity == nil {
			s.Severity = make(map[string]string, len(overrides))
		}
		for id, severity := range overrides {
			s.Severity[id] = severity
		}
	}

	return app.NewConfig(app.Config{
		LogLevel:  strings.ToLower(s.LogLevel),
		LogFormat: strings.ToLower(s.LogFormat),
		OutDir:    s.OutDir,
		Color:     strings.ToLower(s.Color),
		Severity:  s.Severity,
	})
}

// settingsPath returns the file to read, or "" if there is none. An
// explicitly named file must exist.
func settingsPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("settings file: %w", err)
		}
		return explicit, nil
	}
	if _, err := os.Stat(DefaultSettingsFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("settings file: %w", err)
	}
	return DefaultSettingsFile, nil
}
