package walker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shlibdeps/internal/adapters/ldd"
	"go.trai.ch/shlibdeps/internal/adapters/logger"
	"go.trai.ch/shlibdeps/internal/adapters/objdump"
	"go.trai.ch/shlibdeps/internal/core/ports"
)

// NodeID is the unique identifier for the dependency walker Graft node.
const NodeID graft.ID = "engine.walker"

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			objdump.NodeID,
			ldd.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Walker, error) {
			linker, err := graft.Dep[ports.LinkReader](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.LibraryResolver](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewWalker(linker, resolver, log), nil
		},
	})
}
