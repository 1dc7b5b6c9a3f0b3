// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

package template

// builtinTemplates holds the boilerplate bodies, keyed by Kind.
var builtinTemplates = map[string]string{
	string(Command): `package command

import (
	"context"

	"github.com/urfave/cli/v3"
)

// {{.NamePascal}}Command implements the "{{.Name}}" command: {{.Description}}.
func New{{.NamePascal}}Command() *cli.Command {
	return &cli.Command{
		Name:  "{{.Name}}",
		Usage: "{{.Description}}",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "show what would be done without doing it",
			},
		},
		Action: run{{.NamePascal}},
	}
}

func run{{.NamePascal}}(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("dry-run") {
		// Describe the work without performing it.
		return nil
	}

	// TODO: implement {{.Name}}
	return nil
}
`,

	string(ConfigSection): `package config

// {{.NamePascal}}Config holds settings for {{.Description}}.
type {{.NamePascal}}Config struct {
	Enabled bool   ` + "`json:\"enabled\" yaml:\"enabled\" toml:\"enabled\"`" + `
	Path    string ` + "`json:\"path,omitempty\" yaml:\"path,omitempty\" toml:\"path,omitempty\"`" + `
}

// {{.NamePascal}}Defaults returns the built-in defaults for the
// {{.Name}} section.
func {{.NamePascal}}Defaults() {{.NamePascal}}Config {
	return {{.NamePascal}}Config{
		Enabled: true,
	}
}

// Environment variable overriding the {{.Name}} section.
const Env{{.NamePascal}}Enabled = "TRAM_{{.NameUpper}}_ENABLED"
`,

	string(ErrorType): `package errors

import (
	"errors"
	"fmt"
)

// Err{{.NamePascal}} indicates a failure in {{.Description}}.
var Err{{.NamePascal}} = errors.New("{{.Name}} failed")

// {{.NamePascal}}Error carries detail about a {{.Name}} failure.
type {{.NamePascal}}Error struct {
	Detail string
	Err    error
}

func (e *{{.NamePascal}}Error) Error() string {
	return fmt.Sprintf("{{.Name}}: %s", e.Detail)
}

// Unwrap returns the underlying error.
func (e *{{.NamePascal}}Error) Unwrap() error {
	return e.Err
}

// Is implements error matching for {{.NamePascal}}Error.
func (e *{{.NamePascal}}Error) Is(target error) bool {
	return target == Err{{.NamePascal}}
}
`,

	string(SessionExtension): `package session

import "sync"

// {{.NamePascal}}State extends the session with {{.Description}}.
type {{.NamePascal}}State struct {
	mu    sync.RWMutex
	items map[string]string
}

// New{{.NamePascal}}State creates an empty state holder.
func New{{.NamePascal}}State() *{{.NamePascal}}State {
	return &{{.NamePascal}}State{items: make(map[string]string)}
}

// Get returns the value for key, if present.
func (s *{{.NamePascal}}State) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.items[key]
	return value, ok
}

// Set stores value under key.
func (s *{{.NamePascal}}State) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
}
`,
}
