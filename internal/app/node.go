package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shlibdeps/internal/adapters/config"
	"go.trai.ch/shlibdeps/internal/adapters/file"
	"go.trai.ch/shlibdeps/internal/adapters/fs"
	"go.trai.ch/shlibdeps/internal/adapters/logger"
	"go.trai.ch/shlibdeps/internal/adapters/manifest"
	"go.trai.ch/shlibdeps/internal/adapters/telemetry"
	"go.trai.ch/shlibdeps/internal/core/ports"
	"go.trai.ch/shlibdeps/internal/engine/libindex"
	"go.trai.ch/shlibdeps/internal/engine/resolve"
	"go.trai.ch/shlibdeps/internal/engine/walker"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			file.NodeID,
			libindex.NodeID,
			walker.NodeID,
			resolve.NodeID,
			fs.DigesterNodeID,
			manifest.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    application,
				Logger: log,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	inspector, err := graft.Dep[ports.BinaryInspector](ctx)
	if err != nil {
		return nil, err
	}

	indexBuilder, err := graft.Dep[*libindex.Builder](ctx)
	if err != nil {
		return nil, err
	}

	libWalker, err := graft.Dep[*walker.Walker](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[*resolve.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	digester, err := graft.Dep[ports.Digester](ctx)
	if err != nil {
		return nil, err
	}

	emitter, err := graft.Dep[ports.ManifestEmitter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, inspector, indexBuilder, libWalker, resolver, digester, emitter, log, tracer), nil
}
