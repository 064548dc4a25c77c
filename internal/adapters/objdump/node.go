package objdump

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shlibdeps/internal/core/ports"
)

// NodeID is the unique identifier for the link reader Graft node.
const NodeID graft.ID = "adapter.objdump"

func init() {
	graft.Register(graft.Node[ports.LinkReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.LinkReader, error) {
			return NewReader(), nil
		},
	})
}
