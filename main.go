// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/marclove/tram/internal/command"
	"github.com/marclove/tram/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// deduplicateFlags keeps only the last occurrence of each repeated
// flag, so "tram new x --type rust --type go" means --type go. The
// program name and command are never touched.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	// Track where each flag last appears and whether that final
	// occurrence consumes a space-separated value. A stale occurrence
	// of a boolean flag must not swallow the positional after it.
	last := make(map[string]int)
	takesValue := make(map[string]bool)
	for i := 2; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") {
			continue
		}
		name := flagName(a)
		last[name] = i
		takesValue[name] = !strings.Contains(a, "=") &&
			i+1 < len(args) && !strings.HasPrefix(args[i+1], "-")
	}

	out := append([]string{}, args[:2]...)
	for i := 2; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "-") {
			name := flagName(a)
			if last[name] != i {
				if !strings.Contains(a, "=") && takesValue[name] &&
					i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
					i++
				}
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

func flagName(arg string) string {
	name := strings.TrimLeft(arg, "-")
	if eq := strings.Index(name, "="); eq >= 0 {
		name = name[:eq]
	}
	return name
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}

func realMain() int {
	args := os.Args

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip argument processing and let the
	// CLI handle it.
	for _, a := range args {
		if a == "--help" || a == "-h" {
			return initAndRunApp(args)
		}
	}

	return initAndRunApp(deduplicateFlags(args))
}
