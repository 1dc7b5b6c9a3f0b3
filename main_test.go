// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"reflect"
	"testing"
)

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program and command",
			args:     []string{"tram", "new"},
			expected: []string{"tram", "new"},
		},
		{
			name:     "no duplicates",
			args:     []string{"tram", "new", "myapp", "--type", "rust", "--skip-prompts"},
			expected: []string{"tram", "new", "myapp", "--type", "rust", "--skip-prompts"},
		},
		{
			name:     "duplicate flag with value - last wins",
			args:     []string{"tram", "new", "--type", "rust", "--skip-prompts", "--type", "go"},
			expected: []string{"tram", "new", "--skip-prompts", "--type", "go"},
		},
		{
			name:     "duplicate boolean flag",
			args:     []string{"tram", "generate", "--write", "--no-color", "--write"},
			expected: []string{"tram", "generate", "--no-color", "--write"},
		},
		{
			name:     "duplicate flag with equals syntax",
			args:     []string{"tram", "new", "--type=rust", "--skip-prompts", "--type=go"},
			expected: []string{"tram", "new", "--skip-prompts", "--type=go"},
		},
		{
			name:     "mixed equals and space syntax - same flag",
			args:     []string{"tram", "new", "--type=rust", "--type", "go"},
			expected: []string{"tram", "new", "--type", "go"},
		},
		{
			name:     "positional args preserved",
			args:     []string{"tram", "new", "myapp", "--type", "rust", "--type", "go"},
			expected: []string{"tram", "new", "myapp", "--type", "go"},
		},
		{
			name:     "different flags not affected",
			args:     []string{"tram", "config", "--format", "json", "--no-color"},
			expected: []string{"tram", "config", "--format", "json", "--no-color"},
		},
		{
			name:     "stale boolean flag keeps following positional",
			args:     []string{"tram", "new", "--skip-prompts", "myapp", "--skip-prompts"},
			expected: []string{"tram", "new", "myapp", "--skip-prompts"},
		},
		{
			name:     "triple duplicate",
			args:     []string{"tram", "new", "--type", "a", "--type", "b", "--type", "c"},
			expected: []string{"tram", "new", "--type", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := deduplicateFlags(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("deduplicateFlags(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "bare invocation gets help",
			args:     []string{"tram"},
			expected: []string{"tram", "--help"},
		},
		{
			name:     "command passes through",
			args:     []string{"tram", "config"},
			expected: []string{"tram", "config"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := handleNakedCommand(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("handleNakedCommand(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestHandleVersionNotPresent(t *testing.T) {
	if handleVersion([]string{"tram", "config"}) {
		t.Error("handleVersion reported a version flag that is not there")
	}
}

func TestFlagName(t *testing.T) {
	tests := []struct {
		arg      string
		expected string
	}{
		{"--type", "type"},
		{"--type=go", "type"},
		{"-v", "v"},
		{"--no-color", "no-color"},
	}

	for _, tt := range tests {
		if got := flagName(tt.arg); got != tt.expected {
			t.Errorf("flagName(%q) = %q, want %q", tt.arg, got, tt.expected)
		}
	}
}
