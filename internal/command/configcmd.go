// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/marclove/tram/internal/meta"
	"github.com/marclove/tram/internal/output"
)

func configCommandAction(m *meta.Meta) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg := m.Config
		fields := []output.Field{
			{Key: "log_level", Value: cfg.LogLevel.String()},
			{Key: "output_format", Value: cfg.OutputFormat.String()},
			{Key: "color", Value: strconv.FormatBool(cfg.Color)},
			{Key: "workspace_root", Value: cfg.WorkspaceRoot},
		}
		return output.Render(os.Stdout, cfg.OutputFormat, output.ColorEnabled(cfg), fields)
	}
}

func configCommandBuilder(m *meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "config",
		Usage:     "show the resolved configuration",
		UsageText: "tram config [--format FORMAT]",
		Action:    configCommandAction(m),
	}
}
