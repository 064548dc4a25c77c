// Package fs provides file system adapters for walking library
// directories and digesting input binaries.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/shlibdeps/internal/core/ports"
)

var _ ports.FileWalker = (*Walker)(nil)

// Walker walks directory trees and yields regular files.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file under root, skipping directories
// whose name matches one of the ignore patterns. Walk errors terminate
// the traversal silently; a missing root yields nothing.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return filepath.SkipAll
			}

			if d.IsDir() {
				if path != root && matchesAny(d.Name(), ignores) {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() || matchesAny(d.Name(), ignores) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
