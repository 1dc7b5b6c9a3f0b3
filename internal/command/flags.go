// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewGlobalFlags returns the flags shared by every command. Environment
// and file values for these settings are resolved by the config loader,
// not by flag sources, so the fixed precedence (CLI > env > file >
// default) holds per field.
func NewGlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "log level (debug, info, warn, error)",
			Validator: func(value string) error {
				return FlagValidators(value, LogLevelValidator)
			},
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "output format (json, yaml, table)",
			Validator: func(value string) error {
				return FlagValidators(value, FormatValidator)
			},
		},
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "disable colored output",
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "config file path",
		},
	}
}

// NewAuthorFlag constructs the "author" flag used by scaffolding
// commands. Besides the CLI value and TRAM_AUTHOR, a value may come
// from the conventional YAML config files.
func NewAuthorFlag() *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:  "author",
		Usage: "author recorded in generated project metadata",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("TRAM_AUTHOR"),
		),
	}

	for _, path := range []string{"tram.yaml", "tram.yml", ".tram.yaml", ".tram.yml"} {
		src := yaml.YAML("author", altsrc.StringSourcer(path))
		flag.Sources.Chain = append(flag.Sources.Chain, src)
	}

	return flag
}
