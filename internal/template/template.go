// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

// Package template generates boilerplate source files for common CLI
// patterns: commands, config sections, error types and session
// extensions.
package template

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"
	"unicode"
	"unicode/utf8"
)

// Kind selects which boilerplate template to render.
type Kind string

const (
	Command          Kind = "command"
	ConfigSection    Kind = "config-section"
	ErrorType        Kind = "error-type"
	SessionExtension Kind = "session-extension"
)

// ParseKind maps a user-supplied string to a Kind. Unrecognized values
// fall back to Command.
func ParseKind(s string) Kind {
	switch strings.ToLower(s) {
	case "command", "cmd":
		return Command
	case "config-section", "config":
		return ConfigSection
	case "error-type", "error":
		return ErrorType
	case "session-extension", "session":
		return SessionExtension
	default:
		return Command
	}
}

// DisplayName returns the human-facing name for a template kind.
func DisplayName(kind Kind) string {
	switch kind {
	case ConfigSection:
		return "Config Section"
	case ErrorType:
		return "Error Type"
	case SessionExtension:
		return "Session Extension"
	default:
		return "Command"
	}
}

// Spec describes one generation request.
type Spec struct {
	Name        string
	Kind        Kind
	TargetDir   string
	Description string
}

// Generated is a rendered template plus its destination path. Nothing
// has been written to disk yet.
type Generated struct {
	Name     string
	Kind     Kind
	FilePath string
	Content  string
}

// Generator renders boilerplate from the built-in template set.
type Generator struct {
	templates *texttemplate.Template
}

// NewGenerator parses the built-in templates.
func NewGenerator() (*Generator, error) {
	root := texttemplate.New("tram")
	for name, body := range builtinTemplates {
		if _, err := root.New(name).Parse(body); err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
	}
	return &Generator{templates: root}, nil
}

// Generate renders the template for spec. The target directory must
// exist and the destination file must not.
func (g *Generator) Generate(spec Spec) (*Generated, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("template name cannot be empty")
	}
	if info, err := os.Stat(spec.TargetDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("target directory %s does not exist", spec.TargetDir)
	}

	filePath := destination(spec)
	if _, err := os.Stat(filePath); err == nil {
		return nil, fmt.Errorf("file %s already exists", filePath)
	}

	description := spec.Description
	if description == "" {
		description = spec.Name + " functionality"
	}

	var buf bytes.Buffer
	err := g.templates.ExecuteTemplate(&buf, string(spec.Kind), map[string]string{
		"Name":        spec.Name,
		"NamePascal":  ToPascalCase(spec.Name),
		"NameUpper":   strings.ToUpper(strings.ReplaceAll(spec.Name, "-", "_")),
		"Description": description,
	})
	if err != nil {
		return nil, fmt.Errorf("render %s template: %w", spec.Kind, err)
	}

	return &Generated{
		Name:     spec.Name,
		Kind:     spec.Kind,
		FilePath: filePath,
		Content:  buf.String(),
	}, nil
}

// Write persists a generated template, creating parent directories as
// needed.
func (g *Generator) Write(generated *Generated) error {
	if dir := filepath.Dir(generated.FilePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(generated.FilePath, []byte(generated.Content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", generated.FilePath, err)
	}
	return nil
}

func destination(spec Spec) string {
	base := strings.ReplaceAll(spec.Name, "-", "_")
	var suffix string
	switch spec.Kind {
	case ConfigSection:
		suffix = "_config.go"
	case ErrorType:
		suffix = "_errors.go"
	case SessionExtension:
		suffix = "_session.go"
	default:
		suffix = "_command.go"
	}
	return filepath.Join(spec.TargetDir, base+suffix)
}

// ToPascalCase converts kebab- or snake-case names to PascalCase.
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	var b strings.Builder
	for _, part := range parts {
		r, size := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(part[size:])
	}
	return b.String()
}
