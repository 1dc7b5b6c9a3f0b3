// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderManPage(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"tram"})
	require.NoError(t, err)

	page := renderManPage(app)

	assert.True(t, strings.HasPrefix(page, ".TH TRAM 1"))
	assert.Contains(t, page, ".SH NAME")
	assert.Contains(t, page, ".SH SYNOPSIS")
	assert.Contains(t, page, ".SH GLOBAL OPTIONS")
	assert.Contains(t, page, ".SH COMMANDS")
	assert.Contains(t, page, ".SH ENVIRONMENT")
	assert.Contains(t, page, ".SH SEE ALSO")

	for _, cmd := range []string{"new", "generate", "workspace", "watch", "examples", "completion", "man"} {
		assert.Contains(t, page, ".B "+cmd)
	}

	for _, env := range []string{"TRAM_LOG_LEVEL", "TRAM_OUTPUT_FORMAT", "TRAM_COLOR", "TRAM_WORKSPACE_ROOT", "TRAM_AUTHOR"} {
		assert.Contains(t, page, env)
	}
}

func TestRenderSubcommandManPage(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"tram"})
	require.NoError(t, err)

	for _, sub := range app.Commands {
		page := renderSubcommandManPage("tram", sub)

		assert.True(t, strings.HasPrefix(page, ".TH TRAM-"+strings.ToUpper(sub.Name)+" 1"),
			"header of %s page", sub.Name)
		assert.Contains(t, page, ".SH NAME")
		assert.Contains(t, page, ".SH SYNOPSIS")
		assert.Contains(t, page, ".SH SEE ALSO")
		if len(sub.Flags) > 0 {
			assert.Contains(t, page, ".SH OPTIONS", "flags of %s", sub.Name)
		}
	}
}

// Every subcommand gets its own page next to the main one.
func TestManGeneratesPagePerSubcommand(t *testing.T) {
	t.Chdir(t.TempDir())
	outDir := filepath.Join(t.TempDir(), "man")

	app, err := InitApp(context.Background(), []string{"tram"})
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background(), []string{"tram", "man", "--output-dir", outDir}))

	assert.FileExists(t, filepath.Join(outDir, "tram.1"))
	for _, sub := range []string{"new", "generate", "init", "workspace", "config", "watch", "examples", "completion", "man"} {
		assert.FileExists(t, filepath.Join(outDir, "tram-"+sub+".1"))
	}

	matches, err := filepath.Glob(filepath.Join(outDir, "*.1"))
	require.NoError(t, err)
	assert.Len(t, matches, 10)
}

func TestManSectionFilter(t *testing.T) {
	t.Chdir(t.TempDir())

	// All pages live in section 1; filtering on another section
	// generates nothing.
	outDir := filepath.Join(t.TempDir(), "man2")
	app, err := InitApp(context.Background(), []string{"tram"})
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background(), []string{"tram", "man", "--output-dir", outDir, "--section", "2"}))

	matches, err := filepath.Glob(filepath.Join(outDir, "*.1"))
	require.NoError(t, err)
	assert.Empty(t, matches)

	// Filtering on section 1 generates the full set.
	outDir1 := filepath.Join(t.TempDir(), "man1")
	app, err = InitApp(context.Background(), []string{"tram"})
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background(), []string{"tram", "man", "--output-dir", outDir1, "--section", "1"}))

	matches, err = filepath.Glob(filepath.Join(outDir1, "*.1"))
	require.NoError(t, err)
	assert.Len(t, matches, 10)
}

func TestManRejectsOutOfRangeSection(t *testing.T) {
	t.Chdir(t.TempDir())

	app, err := InitApp(context.Background(), []string{"tram"})
	require.NoError(t, err)
	err = app.Run(context.Background(), []string{"tram", "man", "--output-dir", t.TempDir(), "--section", "12"})
	assert.ErrorContains(t, err, "between 1 and 9")
}

func TestEscapeRoff(t *testing.T) {
	assert.Equal(t, "log \\-\\-level", escapeRoff("log --level"))
	assert.Equal(t, "a\\\\b", escapeRoff("a\\b"))
	assert.Equal(t, "plain text", escapeRoff("plain text"))
}
