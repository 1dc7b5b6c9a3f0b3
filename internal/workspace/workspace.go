// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

// Package workspace detects project roots by walking up the directory
// tree looking for version control directories and well-known project
// marker files.
package workspace

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// ErrNotFound indicates no workspace root was found above the starting
// directory.
var ErrNotFound = errors.New("workspace not found")

// vcsDirs mark a root regardless of project type.
var vcsDirs = []string{".git", ".hg", ".svn"}

// markerFiles mark a root when present in a directory.
var markerFiles = []string{
	"Cargo.toml",     // Rust
	"package.json",   // Node.js
	"pyproject.toml", // Python
	"setup.py",       // Python
	"go.mod",         // Go
	"build.gradle",   // Gradle
	"pom.xml",        // Maven
	"Makefile",       // Make
	"justfile",       // Just
	".project",       // Eclipse
}

// Detector finds workspace roots starting from a directory.
type Detector struct {
	startDir string
}

// NewDetector creates a detector rooted at the current directory.
func NewDetector() (*Detector, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, ErrNotFound
	}
	return &Detector{startDir: dir}, nil
}

// FromDir creates a detector rooted at a specific directory.
func FromDir(dir string) *Detector {
	return &Detector{startDir: dir}
}

// DetectRoot walks up from the starting directory and returns the first
// directory that looks like a workspace root.
func (d *Detector) DetectRoot() (string, error) {
	current := d.startDir
	for {
		if isRoot(current) {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", ErrNotFound
		}
		current = parent
	}
}

func isRoot(dir string) bool {
	for _, vcs := range vcsDirs {
		if _, err := os.Stat(filepath.Join(dir, vcs)); err == nil {
			return true
		}
	}
	for _, marker := range markerFiles {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

// ProjectType classifies a workspace by the marker files present.
type ProjectType string

const (
	Rust    ProjectType = "rust"
	NodeJS  ProjectType = "nodejs"
	Python  ProjectType = "python"
	Go      ProjectType = "go"
	Java    ProjectType = "java"
	Generic ProjectType = "generic"
)

// DetectType classifies the project in dir. A directory with no
// recognized markers is Generic.
func DetectType(dir string) ProjectType {
	switch {
	case exists(dir, "Cargo.toml"):
		return Rust
	case exists(dir, "package.json"):
		return NodeJS
	case exists(dir, "pyproject.toml"), exists(dir, "setup.py"):
		return Python
	case exists(dir, "go.mod"):
		return Go
	case exists(dir, "pom.xml"), exists(dir, "build.gradle"):
		return Java
	default:
		return Generic
	}
}

func exists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

// IgnorePatterns returns common build-artifact patterns for the type.
func (p ProjectType) IgnorePatterns() []string {
	switch p {
	case Rust:
		return []string{"target/", "Cargo.lock"}
	case NodeJS:
		return []string{"node_modules/", "dist/", "build/"}
	case Python:
		return []string{"__pycache__/", "*.pyc", ".venv/", "venv/", "dist/", "build/"}
	case Go:
		return []string{"vendor/"}
	case Java:
		return []string{"target/", "build/", "*.class"}
	default:
		return []string{"build/", "dist/", "out/"}
	}
}

// ProjectName extracts the declared project name for types that carry
// one in a JSON manifest. Returns "" when the name cannot be read.
func ProjectName(dir string, projectType ProjectType) string {
	if projectType != NodeJS {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return ""
	}
	return gjson.GetBytes(data, "name").String()
}
