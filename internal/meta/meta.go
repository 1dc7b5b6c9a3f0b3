// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/marclove/tram/internal/config"
	"github.com/marclove/tram/internal/workspace"
)

// Meta contains runtime state shared by commands. It carries CLI
// arguments, the resolved configuration, context, and the detected
// workspace. Commands hold a pointer; the root Before hook fills in the
// config and workspace fields once flags have been parsed.
type Meta struct {
	Args        []string
	Config      config.Config
	Context     context.Context
	StartingDir string

	WorkspaceRoot string
	ProjectType   workspace.ProjectType
}
