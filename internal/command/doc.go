// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

// Package command defines the tram CLI: the root application, its
// subcommands, global flags and flag validators.
package command
