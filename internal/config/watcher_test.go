// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const watchTimeout = 5 * time.Second

// recordingHandler funnels notifications into channels so tests can
// wait on them with a deadline.
type recordingHandler struct {
	changes chan Config
	errors  chan error
}

func newRecordingHandler() *recordingHandler {
	return &recordingHandler{
		changes: make(chan Config, 8),
		errors:  make(chan error, 8),
	}
}

func (h *recordingHandler) OnChange(cfg Config) { h.changes <- cfg }
func (h *recordingHandler) OnError(err error)   { h.errors <- err }

func (h *recordingHandler) waitChange(t *testing.T) Config {
	t.Helper()
	select {
	case cfg := <-h.changes:
		return cfg
	case <-time.After(watchTimeout):
		t.Fatal("timed out waiting for change notification")
		return Config{}
	}
}

func (h *recordingHandler) waitError(t *testing.T) error {
	t.Helper()
	select {
	case err := <-h.errors:
		return err
	case <-time.After(watchTimeout):
		t.Fatal("timed out waiting for error notification")
		return nil
	}
}

func startWatcher(t *testing.T, initial Config, paths []string, handler Handler) *Watcher {
	t.Helper()
	w, err := NewWatcher(initial, paths, handler)
	require.NoError(t, err)
	t.Cleanup(w.Stop)
	return w
}

func TestWatcherReloadsOnEdit(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tram.json", `{"log_level":"info"}`)

	handler := newRecordingHandler()
	w := startWatcher(t, Defaults(), []string{path}, handler)

	require.NoError(t, os.WriteFile(path, []byte(`{"log_level":"error"}`), 0o644))

	got := handler.waitChange(t)
	assert.Equal(t, LogError, got.LogLevel)
	assert.Equal(t, LogError, w.Current().LogLevel)
}

func TestWatcherKeepsLastKnownGoodOnBadEdit(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tram.json", `{"log_level":"debug"}`)

	initial, err := LoadFromFile(path)
	require.NoError(t, err)

	handler := newRecordingHandler()
	w := startWatcher(t, initial, []string{path}, handler)

	require.NoError(t, os.WriteFile(path, []byte(`{"log_level":`), 0o644))

	reloadErr := handler.waitError(t)
	var parseErr *ParseError
	assert.ErrorAs(t, reloadErr, &parseErr)

	// The pre-edit snapshot survives.
	assert.Equal(t, LogDebug, w.Current().LogLevel)
	assert.Empty(t, handler.changes)
}

func TestWatcherIgnoresUnwatchedSiblings(t *testing.T) {
	dir := t.TempDir()
	watched := writeFile(t, dir, "tram.json", `{"log_level":"info"}`)
	other := filepath.Join(dir, "notes.json")

	handler := newRecordingHandler()
	w := startWatcher(t, Defaults(), []string{watched}, handler)

	require.NoError(t, os.WriteFile(other, []byte(`{"log_level":"error"}`), 0o644))
	require.NoError(t, os.WriteFile(watched, []byte(`{"log_level":"warn"}`), 0o644))

	// Only the watched file produces a notification, and it reflects
	// the watched file's content.
	got := handler.waitChange(t)
	assert.Equal(t, LogWarn, got.LogLevel)
	assert.Equal(t, LogWarn, w.Current().LogLevel)
}

func TestWatcherNoExistingPaths(t *testing.T) {
	t.Chdir(t.TempDir())

	// Nothing to watch is degraded, not fatal; the watcher still serves
	// the initial snapshot.
	w, err := NewWatcher(Defaults(), nil, nil)
	require.NoError(t, err)
	defer w.Stop()

	assert.Equal(t, Defaults(), w.Current())
}

func TestWatcherStop(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tram.yaml", "log_level: info\n")

	w, err := NewWatcher(Defaults(), []string{path}, nil)
	require.NoError(t, err)

	w.Stop()

	select {
	case <-w.Done():
	case <-time.After(watchTimeout):
		t.Fatal("watcher loop did not exit after Stop")
	}

	// Second Stop must not panic or double-close.
	assert.NotPanics(t, w.Stop)
}

func TestWatchSetupError(t *testing.T) {
	underlying := os.ErrPermission
	err := &WatchSetupError{Path: "tram.yaml", Err: underlying}

	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Contains(t, err.Error(), "tram.yaml")

	bare := &WatchSetupError{Err: underlying}
	assert.Contains(t, bare.Error(), "watch setup failed")
}

func TestWatcherCurrentConcurrentReads(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tram.json", `{"log_level":"info"}`)

	handler := newRecordingHandler()
	w := startWatcher(t, Defaults(), []string{path}, handler)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			cfg := w.Current()
			// A snapshot is always fully formed: its enums are never
			// out of domain mid-swap.
			assert.NoError(t, cfg.Validate())
		}
	}()

	require.NoError(t, os.WriteFile(path, []byte(`{"log_level":"warn","output_format":"json"}`), 0o644))
	handler.waitChange(t)
	<-done
}
