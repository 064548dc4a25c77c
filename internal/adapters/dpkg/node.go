package dpkg

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shlibdeps/internal/core/ports"
)

const (
	// IndexNodeID is the unique identifier for the file index Graft node.
	IndexNodeID graft.ID = "adapter.dpkg.index"
	// DBNodeID is the unique identifier for the package database Graft node.
	DBNodeID graft.ID = "adapter.dpkg.db"
)

func init() {
	graft.Register(graft.Node[ports.FileIndex]{
		ID:        IndexNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FileIndex, error) {
			return NewIndex(), nil
		},
	})

	graft.Register(graft.Node[ports.PackageDB]{
		ID:        DBNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.PackageDB, error) {
			return NewDB(), nil
		},
	})
}
