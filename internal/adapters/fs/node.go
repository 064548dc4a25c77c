package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shlibdeps/internal/core/ports"
)

// WalkerNodeID is the unique identifier for the file walker Graft node.
const WalkerNodeID graft.ID = "adapter.fs.walker"

// DigesterNodeID is the unique identifier for the digester Graft node.
const DigesterNodeID graft.ID = "adapter.fs.digester"

func init() {
	graft.Register(graft.Node[ports.FileWalker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FileWalker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Digester]{
		ID:        DigesterNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Digester, error) {
			return NewDigester(), nil
		},
	})
}
