// SPDX-License-Identifier: MIT

// Package config loads CLI settings from defaults, an optional TOML file,
// GRAPHMETRICS_* environment variables and command-line flags, in rising
// priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultFile is read from the working directory when present.
const DefaultFile = "graphmetrics.toml"

// EnvPrefix marks environment overrides, e.g. GRAPHMETRICS_LOG_LEVEL=debug.
const EnvPrefix = "GRAPHMETRICS_"

// ErrInvalid is returned when a loaded value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds every CLI setting.
type Config struct {
	File       string `koanf:"config"`
	Format     string `koanf:"format"`
	Workers    int    `koanf:"workers"`
	Sequential bool   `koanf:"sequential"`
	Generate   string `koanf:"generate"`
	LogLevel   string `koanf:"log-level"`
	LogJSON    bool   `koanf:"log-json"`
}

// Defaults returns the built-in settings. Workers 0 means one per CPU.
func Defaults() map[string]any {
	return map[string]any{
		"config":     DefaultFile,
		"format":     "text",
		"workers":    0,
		"sequential": false,
		"generate":   "",
		"log-level":  "info",
		"log-json":   false,
	}
}

// RegisterFlags declares the flags Load understands on set.
func RegisterFlags(set *pflag.FlagSet) {
	set.StringP("config", "c", DefaultFile, "TOML config file")
	set.StringP("format", "f", "text", "output format: text, yaml or json")
	set.IntP("workers", "w", 0, "parallel workers (0 = one per CPU)")
	set.Bool("sequential", false, "compute separators sequentially")
	set.StringP("generate", "g", "", "analyse a generated fixture instead of a file (path:N, cycle:N, star:N, wheel:N, complete:N, empty:N)")
	set.String("log-level", "info", "debug, info, warn or error")
	set.Bool("log-json", false, "log as JSON")
}

// Load merges defaults, the config file, the environment and f.
// A missing DefaultFile is ignored; a missing file named explicitly is an error.
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(mapProvider(Defaults()), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}

	path, explicit := DefaultFile, false
	if f != nil {
		if fl := f.Lookup("config"); fl != nil && fl.Changed {
			path, explicit = fl.Value.String(), true
		}
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}

	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("config: flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps GRAPHMETRICS_LOG_LEVEL to log-level.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", "-")
}

// Validate checks ranges that flags and TOML types cannot express.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0 (%d)", ErrInvalid, c.Workers)
	}

	return nil
}

// mapProvider serves an in-memory map to koanf.
type mapProvider map[string]any

func (p mapProvider) Read() (map[string]any, error) { return p, nil }

func (p mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("config: map provider has no byte form")
}
