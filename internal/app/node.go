package app

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/vvm-tools/vvm/internal/adapters/github"   //nolint:depguard // Wired in app layer
	"github.com/vvm-tools/vvm/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"github.com/vvm-tools/vvm/internal/adapters/prompt"   //nolint:depguard // Wired in app layer
	"github.com/vvm-tools/vvm/internal/adapters/registry" //nolint:depguard // Wired in app layer
	"github.com/vvm-tools/vvm/internal/core/ports"
	"github.com/vvm-tools/vvm/internal/engine/installer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			github.NodeID,
			registry.NodeID,
			installer.NodeID,
			prompt.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			catalog, err := graft.Dep[ports.ReleaseCatalog](ctx)
			if err != nil {
				return nil, err
			}

			reg, err := graft.Dep[ports.VersionRegistry](ctx)
			if err != nil {
				return nil, err
			}

			inst, err := graft.Dep[*installer.Installer](ctx)
			if err != nil {
				return nil, err
			}

			prompter, err := graft.Dep[ports.Prompter](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(catalog, reg, inst, prompter, log, os.Stdout), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    application,
				Logger: log,
			}, nil
		},
	})
}
