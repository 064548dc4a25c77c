// Package resolve maps resolved library files to the distribution
// packages that provide them.
package resolve

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/shlibdeps/internal/core/domain"
	"go.trai.ch/shlibdeps/internal/core/ports"
)

// Resolver turns the library closure of one architecture into a set of
// required packages.
type Resolver struct {
	index  ports.FileIndex
	pkgdb  ports.PackageDB
	logger ports.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(index ports.FileIndex, pkgdb ports.PackageDB, logger ports.Logger) *Resolver {
	return &Resolver{
		index:  index,
		pkgdb:  pkgdb,
		logger: logger,
	}
}

// Resolve looks up the owning package for every resolved,
// non-locally-built library recorded for arch. Locally built libraries
// are skipped: they ship with the product, not from a package.
// Unresolved libraries were already reported by the walk. The result
// maps package keys (name:arch) to packages; a warning is returned for
// every library file no package provides.
func (r *Resolver) Resolve(ctx context.Context, res *domain.Resolution, arch domain.Architecture) (map[string]*domain.Package, []string, error) {
	// Two library names may resolve to the same file; each file is one
	// pending lookup.
	var candidates []string
	pending := make(map[string]struct{})
	for _, ref := range res.Libraries(arch) {
		if !ref.Resolved() {
			continue
		}
		if customPath, ok := res.CustomPath(arch, ref.Name); ok && customPath == ref.Path {
			r.logger.Debug("skipping locally built library " + ref.Path)
			continue
		}
		if _, ok := pending[ref.Path]; ok {
			continue
		}
		pending[ref.Path] = struct{}{}
		candidates = append(candidates, ref.Path)
	}

	packages := make(map[string]*domain.Package)
	matched := make(map[string]struct{}, len(candidates))

	for match, err := range r.index.Search(ctx, arch, candidates) {
		if err != nil {
			return nil, nil, err
		}

		pkg, ok := packages[match.Package+":"+string(arch)]
		if !ok {
			pkg = domain.NewPackage(match.Package, arch)
			packages[pkg.Key()] = pkg
		}
		pkg.AddPath(match.Path)
		matched[match.Path] = struct{}{}
	}

	var warnings []string
	for _, path := range candidates {
		if _, ok := matched[path]; !ok {
			warnings = append(warnings, fmt.Sprintf("no package provides %s", path))
		}
	}

	return packages, warnings, nil
}

// AnnotateVersions fills in the installed version of every package as
// its minimum version constraint. Packages whose version cannot be
// determined stay unconstrained and produce a warning.
func (r *Resolver) AnnotateVersions(ctx context.Context, packages map[string]*domain.Package) ([]string, error) {
	var warnings []string

	for _, pkg := range domain.SortedPackages(packages) {
		version, err := r.pkgdb.InstalledVersion(ctx, pkg.Name)
		if err != nil {
			if errors.Is(err, domain.ErrPackageUnknown) {
				warnings = append(warnings, fmt.Sprintf("no installed version for package %s", pkg.Name))
				continue
			}
			return warnings, err
		}
		pkg.MinVersion = version
	}

	return warnings, nil
}
