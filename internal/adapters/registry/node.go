package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/vvm-tools/vvm/internal/adapters/config"
	"github.com/vvm-tools/vvm/internal/adapters/logger"
	"github.com/vvm-tools/vvm/internal/core/ports"
)

// NodeID is the unique identifier for the version registry Graft node.
const NodeID graft.ID = "adapter.version_registry"

func init() {
	graft.Register(graft.Node[ports.VersionRegistry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.VersionRegistry, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.Layout, log), nil
		},
	})
}
