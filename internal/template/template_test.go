// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGen(t *testing.T) *Generator {
	t.Helper()
	g, err := NewGenerator()
	require.NoError(t, err)
	return g
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name       string
		kind       Kind
		wantFile   string
		wantInBody []string
	}{
		{
			name:     "command",
			kind:     Command,
			wantFile: "backup_command.go",
			wantInBody: []string{
				"NewBackupCommand",
				`Name:  "backup"`,
				"runBackup",
			},
		},
		{
			name:     "config section",
			kind:     ConfigSection,
			wantFile: "backup_config.go",
			wantInBody: []string{
				"BackupConfig",
				"BackupDefaults",
				"TRAM_BACKUP_ENABLED",
			},
		},
		{
			name:     "error type",
			kind:     ErrorType,
			wantFile: "backup_errors.go",
			wantInBody: []string{
				"ErrBackup",
				"BackupError",
				"func (e *BackupError) Unwrap() error",
			},
		},
		{
			name:     "session extension",
			kind:     SessionExtension,
			wantFile: "backup_session.go",
			wantInBody: []string{
				"BackupState",
				"NewBackupState",
				"sync.RWMutex",
			},
		},
	}

	g := newGen(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			generated, err := g.Generate(Spec{
				Name:        "backup",
				Kind:        tt.kind,
				TargetDir:   dir,
				Description: "backup handling",
			})
			require.NoError(t, err)

			assert.Equal(t, filepath.Join(dir, tt.wantFile), generated.FilePath)
			for _, want := range tt.wantInBody {
				assert.Contains(t, generated.Content, want)
			}
		})
	}
}

func TestGenerateValidation(t *testing.T) {
	g := newGen(t)

	t.Run("empty name", func(t *testing.T) {
		_, err := g.Generate(Spec{Kind: Command, TargetDir: t.TempDir()})
		assert.ErrorContains(t, err, "name cannot be empty")
	})

	t.Run("missing target dir", func(t *testing.T) {
		_, err := g.Generate(Spec{
			Name:      "backup",
			Kind:      Command,
			TargetDir: filepath.Join(t.TempDir(), "nope"),
		})
		assert.ErrorContains(t, err, "does not exist")
	})

	t.Run("existing destination", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "backup_command.go"), nil, 0o644))

		_, err := g.Generate(Spec{Name: "backup", Kind: Command, TargetDir: dir})
		assert.ErrorContains(t, err, "already exists")
	})
}

func TestWrite(t *testing.T) {
	g := newGen(t)
	dir := t.TempDir()

	generated, err := g.Generate(Spec{Name: "deploy", Kind: Command, TargetDir: dir})
	require.NoError(t, err)
	require.NoError(t, g.Write(generated))

	data, err := os.ReadFile(generated.FilePath)
	require.NoError(t, err)
	assert.Equal(t, generated.Content, string(data))
}

func TestWriteCreatesParents(t *testing.T) {
	g := newGen(t)
	dir := t.TempDir()

	generated, err := g.Generate(Spec{Name: "deploy", Kind: Command, TargetDir: dir})
	require.NoError(t, err)

	// Redirect into a nested path that does not exist yet.
	generated.FilePath = filepath.Join(dir, "a", "b", "deploy_command.go")
	require.NoError(t, g.Write(generated))
	assert.FileExists(t, generated.FilePath)
}

func TestParseKind(t *testing.T) {
	assert.Equal(t, Command, ParseKind("cmd"))
	assert.Equal(t, ConfigSection, ParseKind("config"))
	assert.Equal(t, ErrorType, ParseKind("error-type"))
	assert.Equal(t, SessionExtension, ParseKind("session"))
	assert.Equal(t, Command, ParseKind("mystery"))
}

func TestToPascalCase(t *testing.T) {
	assert.Equal(t, "Backup", ToPascalCase("backup"))
	assert.Equal(t, "MyBackupJob", ToPascalCase("my-backup-job"))
	assert.Equal(t, "SnakeCase", ToPascalCase("snake_case"))
	assert.Equal(t, "ÉtatSync", ToPascalCase("état-sync"))
}
