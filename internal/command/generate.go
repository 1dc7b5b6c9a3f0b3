// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/marclove/tram/internal/log"
	"github.com/marclove/tram/internal/meta"
	"github.com/marclove/tram/internal/template"
)

func generateCommandAction(m *meta.Meta) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		name := cmd.Args().First()
		if name == "" {
			return fmt.Errorf("usage: tram generate <name> [--type TYPE]")
		}

		kind := template.ParseKind(cmd.String("type"))
		spec := template.Spec{
			Kind:        kind,
			Name:        name,
			Description: cmd.String("description"),
			TargetDir:   cmd.String("target-dir"),
		}

		gen, err := template.NewGenerator()
		if err != nil {
			return err
		}
		result, err := gen.Generate(spec)
		if err != nil {
			return err
		}

		if !cmd.Bool("write") {
			fmt.Printf("Generated %s %q (dry run, use --write to save):\n\n", template.DisplayName(kind), name)
			fmt.Println(result.Content)
			return nil
		}

		if err := gen.Write(result); err != nil {
			return err
		}
		log.Infof("wrote %s", result.FilePath)
		fmt.Printf("✓ Generated %s: %s\n", template.DisplayName(kind), result.FilePath)
		return nil
	}
}

func generateCommandBuilder(m *meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Aliases:   []string{"gen"},
		Usage:     "generate boilerplate code from a built-in template",
		UsageText: "tram generate <name> [--type TYPE] [--write]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "type",
				Usage: "template type (command, config-section, error-type, session-extension)",
				Value: "command",
			},
			&cli.StringFlag{
				Name:  "description",
				Usage: "description used in generated doc comments",
			},
			&cli.StringFlag{
				Name:  "target-dir",
				Usage: "directory the generated file is placed in",
				Value: ".",
			},
			&cli.BoolFlag{
				Name:        "write",
				Usage:       "write the generated file instead of printing it",
				HideDefault: true,
			},
		},
		Action: generateCommandAction(m),
	}
}
