// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/marclove/tram/internal/log"
)

// Handler receives watcher notifications. OnChange fires after the new
// snapshot has been swapped in; OnError fires when a reload failed and
// the previous snapshot was kept. Both run on the watcher goroutine.
type Handler interface {
	OnChange(cfg Config)
	OnError(err error)
}

// HandlerFuncs adapts plain functions to Handler. Nil funcs are no-ops.
type HandlerFuncs struct {
	Change func(Config)
	Error  func(error)
}

func (h HandlerFuncs) OnChange(cfg Config) {
	if h.Change != nil {
		h.Change(cfg)
	}
}

func (h HandlerFuncs) OnError(err error) {
	if h.Error != nil {
		h.Error(err)
	}
}

// Watcher keeps a live Config fresh by reacting to filesystem changes
// on its source files. One goroutine consumes all events; readers call
// Current concurrently.
type Watcher struct {
	mu      sync.RWMutex
	current Config

	fsw      *fsnotify.Watcher
	watched  map[string]struct{}
	handler  Handler
	done     chan struct{}
	finished chan struct{}
	stopOnce sync.Once
}

// NewWatcher registers a watch on every path that currently exists and
// starts the event loop. An empty path list falls back to CommonPaths.
// Nothing existing to watch degrades to a plain holder of initial and
// logs a warning. A failed fsnotify subscription is fatal.
func NewWatcher(initial Config, paths []string, handler Handler) (*Watcher, error) {
	if len(paths) == 0 {
		paths = CommonPaths
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &WatchSetupError{Err: err}
	}

	w := &Watcher{
		current:  initial,
		fsw:      fsw,
		watched:  make(map[string]struct{}, len(paths)),
		handler:  handler,
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := fsw.Add(path); err != nil {
			_ = fsw.Close()
			return nil, &WatchSetupError{Path: path, Err: err}
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		w.watched[abs] = struct{}{}
		log.Debugf("watching config file: %s", path)
	}

	if len(w.watched) == 0 {
		log.Warnf("no config files exist to watch; hot reload is idle")
	}

	go w.run()
	return w, nil
}

// Current returns a snapshot of the live configuration. The read lock
// is held only for the copy.
func (w *Watcher) Current() Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Stop signals the event loop to exit and releases the watch
// subscription. It is idempotent.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsw.Close()
	})
}

// Done is closed once the event loop has exited.
func (w *Watcher) Done() <-chan struct{} {
	return w.finished
}

func (w *Watcher) run() {
	defer close(w.finished)
	for {
		// Shutdown wins ties with pending events.
		select {
		case <-w.done:
			return
		default:
		}

		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if err != nil {
				log.Warnf("config watch error: %v", err)
			}
		}
	}
}

// handleEvent reloads the fired path on modify-or-create. Deletes,
// renames and metadata-only events are ignored, as are paths outside
// the watch set. A failed reload keeps the last known good snapshot.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}

	abs, err := filepath.Abs(event.Name)
	if err != nil {
		abs = event.Name
	}
	if _, ok := w.watched[abs]; !ok {
		return
	}

	cfg, err := LoadFromFile(event.Name)
	if err != nil {
		log.Debugf("config reload failed for %s: %v", event.Name, err)
		if w.handler != nil {
			w.handler.OnError(&ReloadError{Path: event.Name, Err: err})
		}
		return
	}

	w.mu.Lock()
	w.current = cfg
	w.mu.Unlock()

	log.Infof("config reloaded from %s", event.Name)
	if w.handler != nil {
		w.handler.OnChange(cfg)
	}
}
