// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

// Package scaffold creates new project skeletons on disk.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/marclove/tram/internal/log"
	"github.com/marclove/tram/internal/workspace"
)

// Options describes the project to create.
type Options struct {
	Name        string
	Path        string
	ProjectType workspace.ProjectType
	Description string
	Author      string
}

// ParseProjectType maps a user-supplied string to a ProjectType.
// Unrecognized values fall back to Generic.
func ParseProjectType(s string) workspace.ProjectType {
	switch strings.ToLower(s) {
	case "rust":
		return workspace.Rust
	case "nodejs", "node", "js":
		return workspace.NodeJS
	case "python", "py":
		return workspace.Python
	case "go":
		return workspace.Go
	case "java":
		return workspace.Java
	default:
		return workspace.Generic
	}
}

// DisplayName returns the human-facing name for a project type.
func DisplayName(projectType workspace.ProjectType) string {
	switch projectType {
	case workspace.Rust:
		return "Rust"
	case workspace.NodeJS:
		return "Node.js"
	case workspace.Python:
		return "Python"
	case workspace.Go:
		return "Go"
	case workspace.Java:
		return "Java"
	default:
		return "Generic"
	}
}

// Create writes a project skeleton at opts.Path. The target directory
// must not already exist.
func Create(opts Options) error {
	if opts.Name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if _, err := os.Stat(opts.Path); err == nil {
		return fmt.Errorf("directory %s already exists", opts.Path)
	}
	if err := os.MkdirAll(opts.Path, 0o755); err != nil {
		return fmt.Errorf("create project directory: %w", err)
	}

	log.Debugf("scaffolding %s project at %s", opts.ProjectType, opts.Path)

	switch opts.ProjectType {
	case workspace.Rust:
		return createRust(opts)
	case workspace.NodeJS:
		return createNodeJS(opts)
	case workspace.Python:
		return createPython(opts)
	case workspace.Go:
		return createGo(opts)
	default:
		// Java and Generic both get a README-only skeleton.
		return createGeneric(opts)
	}
}

func write(dir, name, content string) error {
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func createRust(opts Options) error {
	var extra string
	if opts.Description != "" {
		extra += fmt.Sprintf("description = %q\n", opts.Description)
	}
	if opts.Author != "" {
		extra += fmt.Sprintf("authors = [%q]\n", opts.Author)
	}
	cargo := fmt.Sprintf("[package]\nname = %q\nversion = \"0.1.0\"\nedition = \"2021\"\n%s\n[dependencies]\n", opts.Name, extra)
	if err := write(opts.Path, "Cargo.toml", cargo); err != nil {
		return err
	}

	srcDir := filepath.Join(opts.Path, "src")
	if err := os.Mkdir(srcDir, 0o755); err != nil {
		return fmt.Errorf("create src directory: %w", err)
	}
	return write(srcDir, "main.rs", "fn main() {\n    println!(\"Hello, world!\");\n}\n")
}

func createNodeJS(opts Options) error {
	pkg := fmt.Sprintf(`{
  "name": %q,
  "version": "1.0.0",
  "description": %q,
  "author": %q,
  "main": "index.js",
  "scripts": {
    "start": "node index.js"
  }
}
`, opts.Name, opts.Description, opts.Author)
	if err := write(opts.Path, "package.json", pkg); err != nil {
		return err
	}
	return write(opts.Path, "index.js", "console.log('Hello, world!');\n")
}

func createPython(opts Options) error {
	module := strings.ReplaceAll(opts.Name, "-", "_")
	pyproject := fmt.Sprintf(`[build-system]
requires = ["hatchling"]
build-backend = "hatchling.build"

[project]
name = %q
version = "0.0.1"
description = %q

[project.scripts]
%s = "%s:main"
`, opts.Name, opts.Description, opts.Name, module)
	if err := write(opts.Path, "pyproject.toml", pyproject); err != nil {
		return err
	}

	mainPy := "def main():\n    print(\"Hello, world!\")\n\nif __name__ == \"__main__\":\n    main()\n"
	return write(opts.Path, module+".py", mainPy)
}

func createGo(opts Options) error {
	if err := write(opts.Path, "go.mod", fmt.Sprintf("module %s\n\ngo 1.21\n", opts.Name)); err != nil {
		return err
	}
	mainGo := "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"Hello, world!\")\n}\n"
	return write(opts.Path, "main.go", mainGo)
}

func createGeneric(opts Options) error {
	desc := opts.Description
	if desc == "" {
		desc = "A new project"
	}
	return write(opts.Path, "README.md", fmt.Sprintf("# %s\n\n%s\n", opts.Name, desc))
}
