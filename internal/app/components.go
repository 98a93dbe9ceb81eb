package app

import "github.com/vvm-tools/vvm/internal/core/ports"

// Components bundles everything the CLI entrypoint needs from the graph.
type Components struct {
	App    *App
	Logger ports.Logger
}
