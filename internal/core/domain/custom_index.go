package domain

import "slices"

// CustomIndex maps, per architecture, a shared-library file name to the
// absolute path of a locally supplied copy. It is populated once before
// resolution begins and treated as read-only afterwards.
//
// Precedence between overlapping search paths is the builder's concern: it
// scans the search paths in reverse declaration order so that a later Put
// for the same (arch, name) pair — coming from an earlier-declared path —
// overwrites the previous entry. The net contract is that the first-listed
// search path wins on a name collision.
type CustomIndex struct {
	byArch map[Architecture]map[string]string
}

// NewCustomIndex creates an empty CustomIndex.
func NewCustomIndex() *CustomIndex {
	return &CustomIndex{byArch: make(map[Architecture]map[string]string)}
}

// Put records path as the custom copy of the named library for the given
// architecture, overwriting any previous entry.
func (i *CustomIndex) Put(arch Architecture, name, path string) {
	libs, ok := i.byArch[arch]
	if !ok {
		libs = make(map[string]string)
		i.byArch[arch] = libs
	}
	libs[name] = path
}

// Lookup returns the custom path for the named library under the given
// architecture, if one was indexed.
func (i *CustomIndex) Lookup(arch Architecture, name string) (string, bool) {
	path, ok := i.byArch[arch][name]
	return path, ok
}

// Names returns the indexed library names for an architecture, sorted.
func (i *CustomIndex) Names(arch Architecture) []string {
	names := make([]string, 0, len(i.byArch[arch]))
	for name := range i.byArch[arch] {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the total number of indexed libraries across architectures.
func (i *CustomIndex) Len() int {
	n := 0
	for _, libs := range i.byArch {
		n += len(libs)
	}
	return n
}
