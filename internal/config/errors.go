// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrNotFound indicates the requested config file doesn't exist.
	ErrNotFound = errors.New("config file not found")

	// ErrUnsupportedFormat indicates the file extension is not one of
	// .json, .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrInvalidValue indicates a field holds a value outside its
	// recognized domain.
	ErrInvalidValue = errors.New("invalid config value")
)

// NotFoundError reports a missing config file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("config file not found: %s", e.Path)
}

// Is implements error matching for NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// UnsupportedFormatError reports a config file with an unrecognized
// extension. The file content is never read in this case.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported config format: %s", e.Path)
}

// Is implements error matching for UnsupportedFormatError.
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// ParseError reports config file content that failed to deserialize. It
// carries the underlying parser error for diagnostics.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying parser error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidValueError reports a field whose value is outside its enum
// domain, e.g. log_level "verbose".
type InvalidValueError struct {
	Field string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %s: %q", e.Field, e.Value)
}

// Is implements error matching for InvalidValueError.
func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

// WatchSetupError reports that the filesystem watch subscription could
// not be established. Fatal to NewWatcher.
type WatchSetupError struct {
	Path string
	Err  error
}

func (e *WatchSetupError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("watch setup failed: %v", e.Err)
	}
	return fmt.Sprintf("watch setup failed for %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying watch error.
func (e *WatchSetupError) Unwrap() error {
	return e.Err
}

// ReloadError reports a failed watcher-triggered reload. It is delivered
// to the change handler and never terminates the watcher.
type ReloadError struct {
	Path string
	Err  error
}

func (e *ReloadError) Error() string {
	return fmt.Sprintf("reload of %s failed: %v", e.Path, e.Err)
}

// Unwrap returns the underlying load error.
func (e *ReloadError) Unwrap() error {
	return e.Err
}
