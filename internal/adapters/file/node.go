package file

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shlibdeps/internal/core/ports"
)

// NodeID is the unique identifier for the binary inspector Graft node.
const NodeID graft.ID = "adapter.file"

func init() {
	graft.Register(graft.Node[ports.BinaryInspector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.BinaryInspector, error) {
			return NewInspector(), nil
		},
	})
}
