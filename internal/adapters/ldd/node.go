package ldd

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shlibdeps/internal/core/ports"
)

// NodeID is the unique identifier for the library resolver Graft node.
const NodeID graft.ID = "adapter.ldd"

func init() {
	graft.Register(graft.Node[ports.LibraryResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.LibraryResolver, error) {
			return NewResolver(), nil
		},
	})
}
