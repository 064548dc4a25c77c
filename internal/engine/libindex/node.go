package libindex

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shlibdeps/internal/adapters/file"
	"go.trai.ch/shlibdeps/internal/adapters/fs"
	"go.trai.ch/shlibdeps/internal/adapters/logger"
	"go.trai.ch/shlibdeps/internal/core/ports"
)

// NodeID is the unique identifier for the library index builder Graft node.
const NodeID graft.ID = "engine.libindex"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			file.NodeID,
			fs.WalkerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			inspector, err := graft.Dep[ports.BinaryInspector](ctx)
			if err != nil {
				return nil, err
			}

			walker, err := graft.Dep[ports.FileWalker](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewBuilder(inspector, walker, log), nil
		},
	})
}
