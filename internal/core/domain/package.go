package domain

import (
	"slices"
	"strings"
)

// IndexMatch is one streamed result from the package file index: the named
// package provides the matched library path.
type IndexMatch struct {
	Package string
	Path    string
}

// Package is a distribution package that provides one or more of the
// resolved library files. A package may satisfy multiple libraries across
// multiple root files; AddPath is idempotent so repeated matches collapse.
type Package struct {
	// Name is the bare package name, without the architecture qualifier.
	Name string
	// Arch is the architecture the package was resolved for.
	Arch Architecture
	// MinVersion is the installed version recorded as a minimum constraint,
	// when version annotation is requested and the lookup succeeded.
	MinVersion string

	paths map[string]struct{}
}

// NewPackage creates a Package with an empty library-provenance set.
func NewPackage(name string, arch Architecture) *Package {
	return &Package{
		Name:  name,
		Arch:  arch,
		paths: make(map[string]struct{}),
	}
}

// Key returns the composite "name:arch" key used to aggregate matches.
func (p *Package) Key() string {
	return p.Name + ":" + string(p.Arch)
}

// AddPath records a library file path this package provides.
func (p *Package) AddPath(path string) {
	p.paths[path] = struct{}{}
}

// Paths returns the provided library paths, sorted.
func (p *Package) Paths() []string {
	paths := make([]string, 0, len(p.paths))
	for path := range p.paths {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths
}

// SortedPackages flattens a key-to-package map into a slice ordered by
// composite key, so emitted manifests are stable regardless of discovery
// order.
func SortedPackages(pkgs map[string]*Package) []*Package {
	out := make([]*Package, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b *Package) int {
		return strings.Compare(a.Key(), b.Key())
	})
	return out
}
