// Package walker computes the transitive shared library closure of an
// executable.
package walker

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"go.trai.ch/shlibdeps/internal/core/domain"
	"go.trai.ch/shlibdeps/internal/core/ports"
)

// Walker follows the dynamic link chain of a binary. It records every
// directly linked library and descends only into locally built
// libraries, whose own dependencies must appear in the manifest too.
// Distribution-provided libraries are leaves: their dependencies are
// the providing package's concern.
type Walker struct {
	linker   ports.LinkReader
	resolver ports.LibraryResolver
	logger   ports.Logger
}

// NewWalker creates a new Walker.
func NewWalker(linker ports.LinkReader, resolver ports.LibraryResolver, logger ports.Logger) *Walker {
	return &Walker{
		linker:   linker,
		resolver: resolver,
		logger:   logger,
	}
}

// Walk adds the library closure of the binary at rootPath to the
// resolution state, under the given architecture. Binaries already
// visited in this resolution are skipped, so shared subtrees are
// walked once. Libraries the dynamic linker reports but the binary does
// not link directly are skipped, visible only at debug level. It
// returns one warning per library that the dynamic linker could not
// resolve.
func (w *Walker) Walk(ctx context.Context, res *domain.Resolution, arch domain.Architecture, rootPath string) ([]string, error) {
	res.InitArch(arch)

	var warnings []string
	worklist := []string{rootPath}

	for len(worklist) > 0 {
		if err := ctx.Err(); err != nil {
			return warnings, err
		}

		path := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		if !res.MarkVisited(path) {
			continue
		}
		w.logger.Debug("walking " + path)

		needed, err := w.linker.DirectLibraries(path)
		if err != nil {
			return warnings, err
		}
		if len(needed) == 0 {
			continue
		}

		locations, err := w.resolver.ResolveLibraries(path)
		if err != nil {
			return warnings, err
		}

		direct := make(map[string]struct{}, len(needed))
		for _, name := range needed {
			direct[name] = struct{}{}
		}
		for _, name := range slices.Sorted(maps.Keys(locations)) {
			if _, ok := direct[name]; !ok {
				w.logger.Debug(fmt.Sprintf("skipping indirect dependency %s for %s", name, path))
			}
		}

		for _, name := range needed {
			if customPath, ok := res.CustomPath(arch, name); ok {
				res.AddLibrary(arch, domain.LibraryRef{Name: name, Path: customPath})
				worklist = append(worklist, customPath)
				continue
			}

			loc, ok := locations[name]
			if !ok || !loc.Found {
				res.AddLibrary(arch, domain.LibraryRef{Name: name})
				warnings = append(warnings, fmt.Sprintf("library %s could not be resolved for %s", name, path))
				continue
			}

			res.AddLibrary(arch, domain.LibraryRef{Name: name, Path: loc.Path})
		}
	}

	return warnings, nil
}
