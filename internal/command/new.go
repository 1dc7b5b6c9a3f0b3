// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/marclove/tram/internal/log"
	"github.com/marclove/tram/internal/meta"
	"github.com/marclove/tram/internal/scaffold"
)

func newCommandAction(m *meta.Meta) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		name := cmd.Args().First()
		if name == "" {
			return fmt.Errorf("usage: tram new <name> [--type TYPE]")
		}

		log.Infof("creating new project: %s", name)

		description := cmd.String("description")
		if description == "" && !cmd.Bool("skip-prompts") && term.IsTerminal(int(os.Stdin.Fd())) {
			answer, err := promptLine(fmt.Sprintf("Description for %s (enter to skip): ", name))
			if err != nil {
				return err
			}
			description = answer
		}

		projectType := scaffold.ParseProjectType(cmd.String("type"))
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "."
		}

		opts := scaffold.Options{
			Name:        name,
			Path:        filepath.Join(cwd, name),
			ProjectType: projectType,
			Description: description,
			Author:      cmd.String("author"),
		}
		if err := scaffold.Create(opts); err != nil {
			return err
		}

		fmt.Printf("✓ Created new %s project: %s\n", scaffold.DisplayName(projectType), name)
		if description != "" {
			fmt.Printf("  Description: %s\n", description)
		}
		return nil
	}
}

func newCommandBuilder(m *meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "new",
		Usage:     "create a new project",
		UsageText: "tram new <name> [--type TYPE] [--description TEXT]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "type",
				Usage: "project type (rust, nodejs, python, go, java, generic)",
				Value: "rust",
			},
			&cli.StringFlag{
				Name:  "description",
				Usage: "project description",
			},
			NewAuthorFlag(),
			&cli.BoolFlag{
				Name:        "skip-prompts",
				Usage:       "skip interactive prompts",
				HideDefault: true,
			},
		},
		Action: newCommandAction(m),
	}
}

// promptModel is the Bubble Tea model for a single-line prompt.
type promptModel struct {
	input    textinput.Model
	prompt   string
	answer   string
	canceled bool
}

func newPromptModel(prompt string) promptModel {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60
	ti.Prompt = ""

	return promptModel{input: ti, prompt: prompt}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.answer = m.input.Value()
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	return m.prompt + m.input.View()
}

// promptLine asks one question on the terminal and returns the answer.
// A canceled prompt returns an empty answer, not an error.
func promptLine(prompt string) (string, error) {
	final, err := tea.NewProgram(newPromptModel(prompt)).Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	model := final.(promptModel)
	if model.canceled {
		return "", nil
	}
	return model.answer, nil
}
