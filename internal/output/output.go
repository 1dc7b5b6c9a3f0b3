// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

// Package output renders command results as json, yaml or a table,
// honoring the resolved output format and color settings.
package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/marclove/tram/internal/config"
	"github.com/marclove/tram/internal/log"
)

// Field is one labeled value in a result set. Order is preserved in
// table output.
type Field struct {
	Key   string
	Value interface{}
}

// ColorEnabled reports whether colored output should be produced:
// the config must allow it and stdout must be a terminal.
func ColorEnabled(cfg config.Config) bool {
	return cfg.Color && term.IsTerminal(int(os.Stdout.Fd()))
}

// Render writes fields to w in the requested format. If w is nil,
// os.Stdout is used.
func Render(w io.Writer, format config.OutputFormat, useColor bool, fields []Field) error {
	if w == nil {
		w = os.Stdout
	}

	switch format {
	case config.FormatJSON:
		doc := make(map[string]interface{}, len(fields))
		for _, field := range fields {
			doc[field.Key] = field.Value
		}
		jsonOutput, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			log.Errorf("render json marshal: %v", err)
			return err
		}
		jsonOutput = append(jsonOutput, '\n')
		_, err = w.Write(jsonOutput)
		return err
	case config.FormatYAML:
		doc := yaml.MapSlice{}
		for _, field := range fields {
			doc = append(doc, yaml.MapItem{Key: field.Key, Value: field.Value})
		}
		yamlOutput, err := yaml.Marshal(doc)
		if err != nil {
			log.Errorf("render yaml marshal: %v", err)
			return err
		}
		_, err = w.Write(yamlOutput)
		return err
	default:
		TableWriter(w, useColor, fields)
		return nil
	}
}

// TableWriter renders fields as a two-column key/value table. Output is
// written to w. If w is nil, os.Stdout is used.
func TableWriter(w io.Writer, useColor bool, fields []Field) {
	if w == nil {
		w = os.Stdout
	}
	if len(fields) == 0 {
		return
	}

	keyStyle := lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
	valueStyle := lipgloss.NewStyle().Align(lipgloss.Left).PaddingLeft(2)

	if useColor {
		keyColor, valueColor := getColors()
		keyStyle = keyStyle.Foreground(keyColor)
		valueStyle = valueStyle.Foreground(valueColor)
	}

	var rows [][]string
	for _, field := range fields {
		rows = append(rows, []string{field.Key, InterfaceToString(field.Value, "-")})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return keyStyle
			}
			return valueStyle
		}).
		Rows(rows...)

	fmt.Fprintln(w, t)
}

// getColors picks table colors based on terminal background so output
// stays visible for both light and dark themes.
func getColors() (key, value color.Color) {
	if lipgloss.HasDarkBackground(os.Stdin, os.Stdout) {
		return lipgloss.Color("#f6be00"), lipgloss.Color("#00c8f0")
	}
	return lipgloss.Color("#b08800"), lipgloss.Color("#0088a0")
}

// InterfaceToString converts supported primitive or composite values to
// a string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return fmt.Sprintf("%.0f", value)
	case bool:
		return strconv.FormatBool(value)
	case fmt.Stringer:
		return value.String()
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}
