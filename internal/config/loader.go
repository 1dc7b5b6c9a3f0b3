// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/marclove/tram/internal/log"
)

// CommonPaths is the conventional config file search order. The first
// existing file wins.
var CommonPaths = []string{
	"tram.json",
	"tram.yaml",
	"tram.yml",
	"tram.toml",
	".tram.json",
	".tram.yaml",
	".tram.yml",
	".tram.toml",
}

// Environment variables recognized by ApplyEnvOverrides.
const (
	EnvLogLevel      = "TRAM_LOG_LEVEL"
	EnvOutputFormat  = "TRAM_OUTPUT_FORMAT"
	EnvColor         = "TRAM_COLOR"
	EnvWorkspaceRoot = "TRAM_WORKSPACE_ROOT"
)

// fileConfig mirrors Config with pointer fields so an absent key can be
// told apart from an explicit zero value. Unknown keys are ignored by
// all three decoders.
type fileConfig struct {
	LogLevel      *string `json:"log_level" yaml:"log_level" toml:"log_level"`
	OutputFormat  *string `json:"output_format" yaml:"output_format" toml:"output_format"`
	Color         *bool   `json:"color" yaml:"color" toml:"color"`
	WorkspaceRoot *string `json:"workspace_root" yaml:"workspace_root" toml:"workspace_root"`
}

// apply overlays the file values onto cfg. Present-but-invalid enum
// values are an error; absent fields keep cfg's values.
func (fc *fileConfig) apply(cfg *Config) error {
	if fc.LogLevel != nil {
		lvl, err := ParseLogLevel(*fc.LogLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = lvl
	}
	if fc.OutputFormat != nil {
		format, err := ParseOutputFormat(*fc.OutputFormat)
		if err != nil {
			return err
		}
		cfg.OutputFormat = format
	}
	if fc.Color != nil {
		cfg.Color = *fc.Color
	}
	if fc.WorkspaceRoot != nil {
		cfg.WorkspaceRoot = *fc.WorkspaceRoot
	}
	return nil
}

// LoadFromFile reads one config file, inferring the format from its
// extension. Missing fields keep their defaults. The content is never
// read when the extension is unrecognized.
func LoadFromFile(path string) (Config, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json", ".yaml", ".yml", ".toml":
	default:
		return Config{}, &UnsupportedFormatError{Path: path}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, &NotFoundError{Path: path}
		}
		return Config{}, err
	}

	var fc fileConfig
	switch ext {
	case ".json":
		err = json.Unmarshal(data, &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	case ".toml":
		err = toml.Unmarshal(data, &fc)
	}
	if err != nil {
		return Config{}, &ParseError{Path: path, Err: err}
	}

	cfg := Defaults()
	if err := fc.apply(&cfg); err != nil {
		return Config{}, err
	}

	log.Debugf("loaded config file: %s", path)
	return cfg, nil
}

// LoadFromCommonPaths probes CommonPaths in the current directory and
// loads the first file found. No file at all is not an error; the
// defaults are returned.
func LoadFromCommonPaths() (Config, error) {
	for _, path := range CommonPaths {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return LoadFromFile(path)
		}
	}
	return Defaults(), nil
}

// ApplyEnvOverrides overlays TRAM_* environment variables onto cfg.
// Invalid values are silently ignored and the prior value kept. That
// leniency is deliberate; see the package tests before changing it.
func ApplyEnvOverrides(cfg Config) Config {
	if v := os.Getenv(EnvLogLevel); v != "" {
		if lvl, err := ParseLogLevel(v); err == nil {
			cfg.LogLevel = lvl
		}
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		if format, err := ParseOutputFormat(v); err == nil {
			cfg.OutputFormat = format
		}
	}
	if v := os.Getenv(EnvColor); v != "" {
		if color, err := strconv.ParseBool(v); err == nil {
			cfg.Color = color
		}
	}
	if v := os.Getenv(EnvWorkspaceRoot); v != "" {
		cfg.WorkspaceRoot = v
	}
	return cfg
}

// Overrides carries CLI-supplied values. Nil fields were not passed by
// the user; set fields overwrite unconditionally since presence of a
// flag is unambiguous.
type Overrides struct {
	LogLevel      *LogLevel
	OutputFormat  *OutputFormat
	Color         *bool
	WorkspaceRoot *string
}

// ApplyOverrides overlays CLI values onto cfg.
func ApplyOverrides(cfg Config, o Overrides) Config {
	if o.LogLevel != nil {
		cfg.LogLevel = *o.LogLevel
	}
	if o.OutputFormat != nil {
		cfg.OutputFormat = *o.OutputFormat
	}
	if o.Color != nil {
		cfg.Color = *o.Color
	}
	if o.WorkspaceRoot != nil {
		cfg.WorkspaceRoot = *o.WorkspaceRoot
	}
	return cfg
}

// Load is the composed top-level loader: explicit file (or common
// paths), then environment, then CLI overrides, then validation. The
// order is the precedence contract; do not reorder.
func Load(explicitPath string, o Overrides) (Config, error) {
	var (
		cfg Config
		err error
	)
	if explicitPath != "" {
		cfg, err = LoadFromFile(explicitPath)
	} else {
		cfg, err = LoadFromCommonPaths()
	}
	if err != nil {
		return Config{}, err
	}

	cfg = ApplyEnvOverrides(cfg)
	cfg = ApplyOverrides(cfg, o)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
