package download

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/vvm-tools/vvm/internal/adapters/config"
	"github.com/vvm-tools/vvm/internal/core/ports"
)

// NodeID is the unique identifier for the artifact fetcher Graft node.
const NodeID graft.ID = "adapter.artifact_fetcher"

func init() {
	graft.Register(graft.Node[ports.ArtifactFetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.ArtifactFetcher, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewFetcher(cfg.DownloadTimeout), nil
		},
	})
}
