package github

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/vvm-tools/vvm/internal/adapters/config"
	"github.com/vvm-tools/vvm/internal/adapters/platform"
	"github.com/vvm-tools/vvm/internal/core/ports"
)

// NodeID is the unique identifier for the release catalog Graft node.
const NodeID graft.ID = "adapter.release_catalog"

func init() {
	graft.Register(graft.Node[ports.ReleaseCatalog]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.ReleaseCatalog, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}

			p, err := platform.Detect()
			if err != nil {
				return nil, err
			}

			url := cfg.ReleasesURL
			if url == "" {
				url = DefaultReleasesURL
			}
			return NewCatalog(url, p), nil
		},
	})
}
