// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/marclove/tram/internal/log"
	"github.com/marclove/tram/internal/meta"
	"github.com/marclove/tram/internal/scaffold"
	"github.com/marclove/tram/internal/workspace"
)

func initCommandAction(m *meta.Meta) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		name := cmd.Args().First()
		if name == "" {
			return fmt.Errorf("usage: tram init <name>")
		}

		if cmd.Bool("verbose") {
			log.SetLevel("debug")
		}
		log.Debugf("initializing project %s", name)

		cwd, err := os.Getwd()
		if err != nil {
			cwd = "."
		}

		opts := scaffold.Options{
			Name:        name,
			Path:        filepath.Join(cwd, name),
			ProjectType: workspace.Generic,
			Author:      cmd.String("author"),
		}
		if err := scaffold.Create(opts); err != nil {
			return err
		}

		fmt.Printf("✓ Initialized project: %s\n", name)
		return nil
	}
}

func initCommandBuilder(m *meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "initialize a minimal project in a new directory",
		UsageText: "tram init <name>",
		Flags: []cli.Flag{
			NewAuthorFlag(),
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "enable verbose output",
				HideDefault: true,
			},
		},
		Action: initCommandAction(m),
	}
}
