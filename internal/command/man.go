// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/marclove/tram/internal/meta"
	"github.com/marclove/tram/internal/version"
)

// manSection is the man section every tram page lives in. --section
// filters generation; anything other than 1 matches no pages.
const manSection = 1

func manCommandAction(m *meta.Meta) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		outDir := cmd.String("output-dir")
		section := cmd.Int("section")
		if cmd.IsSet("section") && (section < 1 || section > 9) {
			return fmt.Errorf("section must be between 1 and 9")
		}

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}

		root := cmd.Root()
		wantAll := !cmd.IsSet("section")

		if wantAll || section == manSection {
			path := filepath.Join(outDir, fmt.Sprintf("%s.%d", root.Name, manSection))
			if err := os.WriteFile(path, []byte(renderManPage(root)), 0o644); err != nil {
				return fmt.Errorf("write man page: %w", err)
			}
			fmt.Printf("Generated man page: %s\n", path)

			for _, sub := range root.Commands {
				path := filepath.Join(outDir, fmt.Sprintf("%s-%s.%d", root.Name, sub.Name, manSection))
				if err := os.WriteFile(path, []byte(renderSubcommandManPage(root.Name, sub)), 0o644); err != nil {
					return fmt.Errorf("write man page: %w", err)
				}
				fmt.Printf("Generated man page: %s\n", path)
			}
		}

		fmt.Println()
		fmt.Printf("Manual pages generated in: %s\n", outDir)
		fmt.Println()
		fmt.Println("To install system-wide:")
		fmt.Printf("  sudo cp %s/*.1 /usr/local/share/man/man1/\n", outDir)
		fmt.Println()
		fmt.Println("To view locally:")
		fmt.Printf("  man -M %s %s\n", outDir, root.Name)
		return nil
	}
}

// renderManPage emits the roff document for the root command, with
// subcommands summarized inline.
func renderManPage(root *cli.Command) string {
	var b strings.Builder

	writeManHeader(&b, strings.ToUpper(root.Name))

	b.WriteString(".SH NAME\n")
	fmt.Fprintf(&b, "%s \\- %s\n", root.Name, escapeRoff(root.Usage))

	b.WriteString(".SH SYNOPSIS\n")
	fmt.Fprintf(&b, ".B %s\n[\\fIGLOBAL OPTIONS\\fR] \\fICOMMAND\\fR [\\fICOMMAND OPTIONS\\fR]\n", root.Name)

	b.WriteString(".SH GLOBAL OPTIONS\n")
	writeFlagSection(&b, root.Flags)

	b.WriteString(".SH COMMANDS\n")
	for _, sub := range root.Commands {
		name := sub.Name
		if len(sub.Aliases) > 0 {
			name += ", " + strings.Join(sub.Aliases, ", ")
		}
		b.WriteString(".TP\n")
		fmt.Fprintf(&b, ".B %s\n%s\n", name, escapeRoff(sub.Usage))
	}

	b.WriteString(".SH ENVIRONMENT\n")
	for _, env := range []struct{ name, desc string }{
		{"TRAM_LOG_LEVEL", "log level (debug, info, warn, error)"},
		{"TRAM_OUTPUT_FORMAT", "output format (json, yaml, table)"},
		{"TRAM_COLOR", "enable or disable colored output"},
		{"TRAM_WORKSPACE_ROOT", "directory to start workspace detection from"},
		{"TRAM_AUTHOR", "author recorded in generated project metadata"},
	} {
		b.WriteString(".TP\n")
		fmt.Fprintf(&b, ".B %s\n%s\n", env.name, env.desc)
	}

	b.WriteString(".SH SEE ALSO\n")
	var refs []string
	for _, sub := range root.Commands {
		refs = append(refs, fmt.Sprintf(".BR %s\\-%s (%d)", root.Name, sub.Name, manSection))
	}
	b.WriteString(strings.Join(refs, ",\n") + "\n")

	return b.String()
}

// renderSubcommandManPage emits one page for a single subcommand.
func renderSubcommandManPage(appName string, sub *cli.Command) string {
	var b strings.Builder

	writeManHeader(&b, strings.ToUpper(appName+"-"+sub.Name))

	b.WriteString(".SH NAME\n")
	fmt.Fprintf(&b, "%s\\-%s \\- %s\n", appName, sub.Name, escapeRoff(sub.Usage))

	b.WriteString(".SH SYNOPSIS\n")
	synopsis := sub.UsageText
	if synopsis == "" {
		synopsis = appName + " " + sub.Name
	}
	fmt.Fprintf(&b, ".B %s\n", escapeRoff(synopsis))

	if len(sub.Aliases) > 0 {
		b.WriteString(".SH ALIASES\n")
		fmt.Fprintf(&b, "%s\n", escapeRoff(strings.Join(sub.Aliases, ", ")))
	}

	if len(sub.Flags) > 0 {
		b.WriteString(".SH OPTIONS\n")
		writeFlagSection(&b, sub.Flags)
	}

	b.WriteString(".SH SEE ALSO\n")
	fmt.Fprintf(&b, ".BR %s (%d)\n", appName, manSection)

	return b.String()
}

func writeManHeader(b *strings.Builder, title string) {
	date := time.Now().Format("January 2006")
	fmt.Fprintf(b, ".TH %s %d %q %q %q\n",
		title, manSection, date, "tram "+version.Version, "User Commands")
}

func writeFlagSection(b *strings.Builder, flags []cli.Flag) {
	for _, flag := range flags {
		names := flag.Names()
		var parts []string
		for _, n := range names {
			if len(n) == 1 {
				parts = append(parts, "\\fB\\-"+n+"\\fR")
			} else {
				parts = append(parts, "\\fB\\-\\-"+n+"\\fR")
			}
		}
		b.WriteString(".TP\n")
		fmt.Fprintf(b, "%s\n", strings.Join(parts, ", "))
		if df, ok := flag.(cli.DocGenerationFlag); ok {
			fmt.Fprintf(b, "%s\n", escapeRoff(df.GetUsage()))
		}
	}
}

func escapeRoff(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	return strings.ReplaceAll(s, "-", "\\-")
}

func manCommandBuilder(m *meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "man",
		Usage:     "generate man pages",
		UsageText: "tram man [--output-dir DIR] [--section N]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "output-dir",
				Usage: "directory to write pages to",
				Value: "./man",
			},
			&cli.IntFlag{
				Name:  "section",
				Usage: "generate only pages in this man section (1-9, default all)",
			},
		},
		Action: manCommandAction(m),
	}
}
