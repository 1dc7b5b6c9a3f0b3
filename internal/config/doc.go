// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

// Package config resolves tram's configuration from defaults, config
// files, environment variables and CLI flags, and keeps it fresh at
// runtime through a filesystem watcher.
//
// Precedence is fixed: CLI flag > environment variable > config file >
// built-in default, applied per field. The watcher holds a lock-guarded
// snapshot that readers copy with Current; a failed reload never
// replaces the last known good snapshot.
package config
