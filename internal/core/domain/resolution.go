package domain

import "slices"

// Resolution carries the mutable state of one dependency-resolution run:
// the set of files already walked and the per-architecture library sets.
// A fresh Resolution is constructed per top-level invocation and never
// reused across runs; the custom index it references stays read-only.
type Resolution struct {
	custom  *CustomIndex
	visited map[string]struct{}
	libs    map[Architecture]*LibrarySet
}

// NewResolution creates a Resolution backed by the given custom index.
func NewResolution(custom *CustomIndex) *Resolution {
	if custom == nil {
		custom = NewCustomIndex()
	}
	return &Resolution{
		custom:  custom,
		visited: make(map[string]struct{}),
		libs:    make(map[Architecture]*LibrarySet),
	}
}

// InitArch eagerly creates the per-architecture library set, so the walk
// and resolve phases never need existence checks.
func (r *Resolution) InitArch(arch Architecture) {
	if _, ok := r.libs[arch]; !ok {
		r.libs[arch] = NewLibrarySet()
	}
}

// MarkVisited records that a file has been walked. It returns false if the
// file was already visited, which guarantees every reachable file is
// processed at most once regardless of how many chains reach it.
func (r *Resolution) MarkVisited(path string) bool {
	if _, ok := r.visited[path]; ok {
		return false
	}
	r.visited[path] = struct{}{}
	return true
}

// VisitedCount returns the number of files walked so far.
func (r *Resolution) VisitedCount() int {
	return len(r.visited)
}

// CustomPath returns the custom-library path substituted for the named
// library under the given architecture, if one is indexed.
func (r *Resolution) CustomPath(arch Architecture, name string) (string, bool) {
	return r.custom.Lookup(arch, name)
}

// AddLibrary records a discovered dependency edge for an architecture.
func (r *Resolution) AddLibrary(arch Architecture, ref LibraryRef) {
	r.InitArch(arch)
	r.libs[arch].Add(ref)
}

// Libraries returns the accumulated references for an architecture, sorted.
func (r *Resolution) Libraries(arch Architecture) []LibraryRef {
	set, ok := r.libs[arch]
	if !ok {
		return nil
	}
	return set.Refs()
}

// Architectures returns every architecture with an initialized library set,
// sorted so downstream phases run in a stable order.
func (r *Resolution) Architectures() []Architecture {
	archs := make([]Architecture, 0, len(r.libs))
	for arch := range r.libs {
		archs = append(archs, arch)
	}
	slices.Sort(archs)
	return archs
}
