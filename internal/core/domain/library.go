// Package domain contains the core domain models for shared-library
// dependency resolution.
package domain

import (
	"slices"
	"strings"
)

// LibraryRef is one dependency edge discovered for a file. Path is the
// absolute path the dynamic linker resolved the library to, or empty when
// the library could not be located (or is supplied as a custom library and
// therefore has no system path). Identity is the (Name, Path) pair: the same
// name found via two different mechanisms stays distinct until package
// resolution collapses it.
type LibraryRef struct {
	Name string
	Path string
}

// Resolved reports whether the dynamic linker located the library on disk.
func (r LibraryRef) Resolved() bool {
	return r.Path != ""
}

// Location is a dynamic-linker resolution result for a single library name.
type Location struct {
	Path  string
	Found bool
}

// LibrarySet accumulates LibraryRefs with set semantics: inserting an
// identical (name, path) pair twice yields one entry.
type LibrarySet struct {
	refs map[LibraryRef]struct{}
}

// NewLibrarySet creates an empty LibrarySet.
func NewLibrarySet() *LibrarySet {
	return &LibrarySet{refs: make(map[LibraryRef]struct{})}
}

// Add inserts a reference into the set.
func (s *LibrarySet) Add(ref LibraryRef) {
	s.refs[ref] = struct{}{}
}

// Len returns the number of distinct references.
func (s *LibrarySet) Len() int {
	return len(s.refs)
}

// Refs returns the references sorted by name, then path. Iteration order of
// the underlying map must never leak into output, so every consumer goes
// through this accessor.
func (s *LibrarySet) Refs() []LibraryRef {
	refs := make([]LibraryRef, 0, len(s.refs))
	for ref := range s.refs {
		refs = append(refs, ref)
	}
	slices.SortFunc(refs, func(a, b LibraryRef) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})
	return refs
}
