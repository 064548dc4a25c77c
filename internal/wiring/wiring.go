// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/shlibdeps/internal/adapters/config"
	_ "go.trai.ch/shlibdeps/internal/adapters/dpkg"
	_ "go.trai.ch/shlibdeps/internal/adapters/file"
	_ "go.trai.ch/shlibdeps/internal/adapters/fs"
	_ "go.trai.ch/shlibdeps/internal/adapters/ldd"
	_ "go.trai.ch/shlibdeps/internal/adapters/logger"
	_ "go.trai.ch/shlibdeps/internal/adapters/manifest"
	_ "go.trai.ch/shlibdeps/internal/adapters/objdump"
	_ "go.trai.ch/shlibdeps/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/shlibdeps/internal/app"
	_ "go.trai.ch/shlibdeps/internal/engine/libindex"
	_ "go.trai.ch/shlibdeps/internal/engine/resolve"
	_ "go.trai.ch/shlibdeps/internal/engine/walker"
)
