// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// LogLevel is the process log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// ParseLogLevel converts a raw string to a LogLevel, case-insensitively.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LogDebug, nil
	case "info":
		return LogInfo, nil
	case "warn":
		return LogWarn, nil
	case "error":
		return LogError, nil
	default:
		return "", &InvalidValueError{Field: "log_level", Value: s}
	}
}

func (l LogLevel) String() string { return string(l) }

// OutputFormat selects how command results are rendered.
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
	FormatTable OutputFormat = "table"
)

// ParseOutputFormat converts a raw string to an OutputFormat,
// case-insensitively.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml":
		return FormatYAML, nil
	case "table":
		return FormatTable, nil
	default:
		return "", &InvalidValueError{Field: "output_format", Value: s}
	}
}

func (f OutputFormat) String() string { return string(f) }

// Config is the resolved, immutable snapshot of all settings. It is a
// plain value type; loads and reloads construct a fresh one rather than
// mutating fields in place.
type Config struct {
	LogLevel     LogLevel     `json:"log_level" yaml:"log_level" toml:"log_level"`
	OutputFormat OutputFormat `json:"output_format" yaml:"output_format" toml:"output_format"`
	Color        bool         `json:"color" yaml:"color" toml:"color"`

	// WorkspaceRoot is the only genuinely optional field; empty means
	// unset.
	WorkspaceRoot string `json:"workspace_root,omitempty" yaml:"workspace_root,omitempty" toml:"workspace_root,omitempty"`
}

// Defaults returns the built-in default configuration. It never fails;
// every field other than WorkspaceRoot has a defined value.
func Defaults() Config {
	return Config{
		LogLevel:     LogInfo,
		OutputFormat: FormatTable,
		Color:        true,
	}
}

// Validate rejects values outside the recognized enum domains. Typed
// loads make this unreachable, but string-sourced inputs must still be
// checked at the boundary.
func (c Config) Validate() error {
	if _, err := ParseLogLevel(string(c.LogLevel)); err != nil {
		return err
	}
	if _, err := ParseOutputFormat(string(c.OutputFormat)); err != nil {
		return err
	}
	return nil
}
