// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/vvm-tools/vvm/internal/adapters/config"
	_ "github.com/vvm-tools/vvm/internal/adapters/download"
	_ "github.com/vvm-tools/vvm/internal/adapters/github"
	_ "github.com/vvm-tools/vvm/internal/adapters/logger"
	_ "github.com/vvm-tools/vvm/internal/adapters/prompt"
	_ "github.com/vvm-tools/vvm/internal/adapters/registry"
	_ "github.com/vvm-tools/vvm/internal/adapters/shell"
	// Register app and engine nodes.
	_ "github.com/vvm-tools/vvm/internal/app"
	_ "github.com/vvm-tools/vvm/internal/engine/installer"
)
