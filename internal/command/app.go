// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/marclove/tram/internal/config"
	"github.com/marclove/tram/internal/log"
	"github.com/marclove/tram/internal/meta"
	"github.com/marclove/tram/internal/workspace"
)

// InitApp builds the tram CLI. Configuration is resolved in the root
// Before hook, after flag parsing, so the precedence chain sees the
// flags the user actually passed.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	m := &meta.Meta{
		Args:        args,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "tram",
		Usage: "A batteries-included starter kit for building CLI applications",
		Flags: NewGlobalFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, resolveSession(cmd, m)
		},
	}

	app.Commands = append(app.Commands,
		newCommandBuilder(m),
		generateCommandBuilder(m),
		initCommandBuilder(m),
		workspaceCommandBuilder(m),
		configCommandBuilder(m),
		watchCommandBuilder(m),
		examplesCommandBuilder(m),
		completionCommandBuilder(m),
		manCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}

// resolveSession loads the configuration with full precedence, sets up
// logging and detects the workspace. It runs once, before any command
// action.
func resolveSession(cmd *cli.Command, m *meta.Meta) error {
	o := config.Overrides{}
	if cmd.IsSet("log-level") {
		lvl, err := config.ParseLogLevel(cmd.String("log-level"))
		if err != nil {
			return err
		}
		o.LogLevel = &lvl
	}
	if cmd.IsSet("format") {
		format, err := config.ParseOutputFormat(cmd.String("format"))
		if err != nil {
			return err
		}
		o.OutputFormat = &format
	}
	if cmd.Bool("no-color") {
		color := false
		o.Color = &color
	}

	cfg, err := config.Load(cmd.String("config"), o)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	m.Config = cfg

	log.Init(cfg.LogLevel.String(), cfg.OutputFormat == config.FormatJSON)
	log.Debugf("configuration resolved: %+v", cfg)

	detectWorkspace(m)
	return nil
}

// detectWorkspace fills in the workspace fields of m. Not finding a
// workspace is normal for commands run outside a project. The banner is
// suppressed for utility commands that need clean stdout.
func detectWorkspace(m *meta.Meta) {
	startDir := m.Config.WorkspaceRoot
	if startDir == "" {
		startDir = m.StartingDir
	}

	root, err := workspace.FromDir(startDir).DetectRoot()
	if err != nil {
		log.Debug("no workspace detected")
		return
	}

	m.WorkspaceRoot = root
	m.ProjectType = workspace.DetectType(root)
	log.Infof("detected workspace at %s", root)

	if !isUtilityCommand(m.Args) {
		fmt.Fprintf(os.Stderr, "Working in %s workspace (%s project)\n", root, m.ProjectType)
	}
}

// isUtilityCommand reports whether args invoke a command whose stdout
// is consumed by other tools (shell eval, man page files).
func isUtilityCommand(args []string) bool {
	for _, a := range args[1:] {
		switch a {
		case "completion", "man":
			return true
		}
		if len(a) > 0 && a[0] != '-' {
			return false
		}
	}
	return false
}
