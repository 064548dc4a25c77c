package resolve

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shlibdeps/internal/adapters/dpkg"
	"go.trai.ch/shlibdeps/internal/adapters/logger"
	"go.trai.ch/shlibdeps/internal/core/ports"
)

// NodeID is the unique identifier for the package resolver Graft node.
const NodeID graft.ID = "engine.resolve"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			dpkg.IndexNodeID,
			dpkg.DBNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			index, err := graft.Dep[ports.FileIndex](ctx)
			if err != nil {
				return nil, err
			}

			pkgdb, err := graft.Dep[ports.PackageDB](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(index, pkgdb, log), nil
		},
	})
}
