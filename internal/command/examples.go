// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/marclove/tram/internal/meta"
)

// ExampleKind names one of the built-in pattern demos.
type ExampleKind string

const (
	ExampleBasicCommand       ExampleKind = "basic-command"
	ExampleAsyncOperations    ExampleKind = "async-operations"
	ExampleConfigUsage        ExampleKind = "config-usage"
	ExampleProgressIndicators ExampleKind = "progress-indicators"
	ExampleInteractivePrompts ExampleKind = "interactive-prompts"
	ExampleFileOperations     ExampleKind = "file-operations"
)

var exampleKinds = []ExampleKind{
	ExampleBasicCommand,
	ExampleAsyncOperations,
	ExampleConfigUsage,
	ExampleProgressIndicators,
	ExampleInteractivePrompts,
	ExampleFileOperations,
}

// ParseExampleKind maps a user-supplied string to an ExampleKind.
func ParseExampleKind(s string) (ExampleKind, error) {
	kind := ExampleKind(strings.ToLower(s))
	for _, known := range exampleKinds {
		if kind == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown example %q (available: %s)", s, joinExampleKinds())
}

func joinExampleKinds() string {
	names := make([]string, len(exampleKinds))
	for i, kind := range exampleKinds {
		names[i] = string(kind)
	}
	return strings.Join(names, ", ")
}

// renderExample produces the demo text for one pattern. The config demo
// reads the live resolved configuration from m.
func renderExample(m *meta.Meta, kind ExampleKind) string {
	var b strings.Builder

	switch kind {
	case ExampleBasicCommand:
		b.WriteString("=== Basic Command Example ===\n")
		b.WriteString("This example demonstrates fundamental command patterns.\n\n")
		b.WriteString("Key features demonstrated:\n")
		b.WriteString("• Command builders with urfave/cli/v3\n")
		b.WriteString("• Shared session state resolved in a Before hook\n")
		b.WriteString("• Explicit error returns mapped to exit codes\n")
		b.WriteString("• Structured logging with apex/log\n\n")
		b.WriteString("Try it:\n")
		b.WriteString("   tram new demo --type go --skip-prompts\n")

	case ExampleAsyncOperations:
		b.WriteString("=== Async Operations Example ===\n")
		b.WriteString("This example demonstrates concurrency patterns in CLI applications.\n\n")
		b.WriteString("Key features demonstrated:\n")
		b.WriteString("• Background goroutines with channel-based shutdown\n")
		b.WriteString("• context.Context cancellation via signals\n")
		b.WriteString("• RWMutex-guarded shared snapshots\n")
		b.WriteString("• Graceful drain with a done channel\n\n")
		b.WriteString("Try it:\n")
		b.WriteString("   tram watch    # Ctrl+C shows graceful shutdown\n")

	case ExampleConfigUsage:
		b.WriteString("=== Configuration Management Example ===\n")
		b.WriteString("This example demonstrates the layered configuration system.\n\n")
		b.WriteString("Current configuration:\n")
		fmt.Fprintf(&b, "  Log Level: %s\n", m.Config.LogLevel)
		fmt.Fprintf(&b, "  Output Format: %s\n", m.Config.OutputFormat)
		fmt.Fprintf(&b, "  Colors: %t\n", m.Config.Color)
		if m.Config.WorkspaceRoot != "" {
			fmt.Fprintf(&b, "  Workspace Root: %s\n", m.Config.WorkspaceRoot)
		}
		b.WriteString("\nKey features demonstrated:\n")
		b.WriteString("• Loading configuration from json/yaml/toml files\n")
		b.WriteString("• Per-field precedence: CLI > environment > file > default\n")
		b.WriteString("• Hot reload with file watching\n")
		b.WriteString("• Last-known-good on a failed reload\n\n")
		b.WriteString("Try it:\n")
		b.WriteString("   TRAM_LOG_LEVEL=debug tram config --format yaml\n")

	case ExampleProgressIndicators:
		b.WriteString("=== Progress Indicators Example ===\n")
		b.WriteString("This example demonstrates terminal UI components.\n\n")
		b.WriteString("Key features demonstrated:\n")
		b.WriteString("• Styled tables with lipgloss\n")
		b.WriteString("• Light/dark background-aware colors\n")
		b.WriteString("• Color suppression when stdout is not a terminal\n\n")
		b.WriteString("Try it:\n")
		b.WriteString("   tram workspace --detailed\n")

	case ExampleInteractivePrompts:
		b.WriteString("=== Interactive Prompts Example ===\n")
		b.WriteString("This example demonstrates user interaction patterns.\n\n")
		b.WriteString("Key features demonstrated:\n")
		b.WriteString("• Text input with Bubble Tea models\n")
		b.WriteString("• Enter/Escape handling and cancellation\n")
		b.WriteString("• TTY detection before prompting\n\n")
		b.WriteString("Try it:\n")
		b.WriteString("   tram new demo    # prompts for a description\n")

	case ExampleFileOperations:
		b.WriteString("=== File Operations Example ===\n")
		b.WriteString("This example demonstrates file system utilities.\n\n")
		b.WriteString("Key features demonstrated:\n")
		b.WriteString("• Walk-up workspace root detection\n")
		b.WriteString("• Project type classification by marker files\n")
		b.WriteString("• File watching with fsnotify\n")
		b.WriteString("• Skeleton generation on disk\n\n")
		b.WriteString("Try it:\n")
		b.WriteString("   tram workspace\n")
	}

	b.WriteString("\n💡 Run tram examples with another name to see the other patterns.\n")
	return b.String()
}

func examplesCommandAction(m *meta.Meta) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		name := cmd.Args().First()
		if name == "" {
			return fmt.Errorf("usage: tram examples <example> (available: %s)", joinExampleKinds())
		}

		kind, err := ParseExampleKind(name)
		if err != nil {
			return err
		}

		fmt.Print(renderExample(m, kind))
		return nil
	}
}

func examplesCommandBuilder(m *meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "examples",
		Usage:     "run examples demonstrating CLI patterns",
		UsageText: "tram examples <example>",
		Action:    examplesCommandAction(m),
	}
}
