package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/vvm-tools/vvm/internal/core/ports"
)

const NodeID graft.ID = "adapter.executor"

func init() {
	graft.Register(graft.Node[ports.ToolExecutor]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ToolExecutor, error) {
			return NewExecutor(), nil
		},
	})
}
