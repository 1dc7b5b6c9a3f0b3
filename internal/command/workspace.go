// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/marclove/tram/internal/meta"
	"github.com/marclove/tram/internal/output"
	"github.com/marclove/tram/internal/workspace"
)

func workspaceCommandAction(m *meta.Meta) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if m.WorkspaceRoot == "" {
			return fmt.Errorf("no workspace found: run inside a project or set %s", "TRAM_WORKSPACE_ROOT")
		}

		fields := []output.Field{
			{Key: "root", Value: m.WorkspaceRoot},
			{Key: "project_type", Value: string(m.ProjectType)},
		}

		if name := workspace.ProjectName(m.WorkspaceRoot, m.ProjectType); name != "" {
			fields = append(fields, output.Field{Key: "project_name", Value: name})
		}

		if cmd.Bool("detailed") {
			fields = append(fields, output.Field{
				Key:   "ignore_patterns",
				Value: strings.Join(m.ProjectType.IgnorePatterns(), ", "),
			})
			if info, err := os.Stat(m.WorkspaceRoot); err == nil {
				fields = append(fields, output.Field{
					Key:   "last_modified",
					Value: humanize.Time(info.ModTime()),
				})
			}
		}

		return output.Render(os.Stdout, m.Config.OutputFormat, output.ColorEnabled(m.Config), fields)
	}
}

func workspaceCommandBuilder(m *meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "workspace",
		Aliases:   []string{"ws"},
		Usage:     "show information about the current workspace",
		UsageText: "tram workspace [--detailed]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "detailed",
				Usage:       "include ignore patterns and timestamps",
				HideDefault: true,
			},
		},
		Action: workspaceCommandAction(m),
	}
}
