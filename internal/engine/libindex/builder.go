// Package libindex scans locally built library directories and indexes
// the shared objects they provide by architecture and soname.
package libindex

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/shlibdeps/internal/core/domain"
	"go.trai.ch/shlibdeps/internal/core/ports"
)

// Builder constructs a domain.CustomIndex from a list of search
// directories.
type Builder struct {
	inspector ports.BinaryInspector
	walker    ports.FileWalker
	logger    ports.Logger
}

// NewBuilder creates a new Builder.
func NewBuilder(inspector ports.BinaryInspector, walker ports.FileWalker, logger ports.Logger) *Builder {
	return &Builder{
		inspector: inspector,
		walker:    walker,
		logger:    logger,
	}
}

// Build scans the given directories and returns the resulting index
// plus a warning per directory that could not be read. Directories are
// scanned in reverse declaration order so that, for a library name
// provided by several directories, the first-listed one wins by
// overwriting later entries.
func (b *Builder) Build(ctx context.Context, paths []string) (*domain.CustomIndex, []string) {
	index := domain.NewCustomIndex()
	var warnings []string

	for i := len(paths) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return index, warnings
		}

		path := paths[i]
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			warnings = append(warnings, fmt.Sprintf("library path %s is not a readable directory", path))
			continue
		}

		b.scanDir(path, index)
	}

	return index, warnings
}

func (b *Builder) scanDir(dir string, index *domain.CustomIndex) {
	for path := range b.walker.WalkFiles(dir, nil) {
		name := filepath.Base(path)
		if !IsLibraryName(name) {
			continue
		}

		signature, err := b.inspector.Signature(path)
		if err != nil {
			b.logger.Debug("skipping unreadable candidate " + path)
			continue
		}

		arch := domain.ClassifySignature(signature)
		if arch == domain.ArchUnknown {
			b.logger.Debug("skipping candidate with unrecognized signature " + path)
			continue
		}

		index.Put(arch, name, path)
	}
}

// IsLibraryName reports whether a file name looks like a shared
// object. Debug symbol files carry the library name plus a .debug
// suffix and are never link targets.
func IsLibraryName(name string) bool {
	return strings.Contains(name, ".so") && !strings.HasSuffix(name, ".debug")
}
