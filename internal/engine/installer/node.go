package installer

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/vvm-tools/vvm/internal/adapters/config"
	"github.com/vvm-tools/vvm/internal/adapters/download"
	"github.com/vvm-tools/vvm/internal/adapters/logger"
	"github.com/vvm-tools/vvm/internal/core/ports"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "engine.installer"

func init() {
	graft.Register(graft.Node[*Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, download.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Installer, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			fetcher, err := graft.Dep[ports.ArtifactFetcher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.Layout, fetcher, log), nil
		},
	})
}
