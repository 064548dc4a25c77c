package ports

import "iter"

// FileWalker yields the regular files under a directory tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=fswalk.go -destination=mocks/mock_fswalk.go -package=mocks
type FileWalker interface {
	// WalkFiles yields every file below root, skipping directories whose
	// name matches one of the ignore patterns.
	WalkFiles(root string, ignores []string) iter.Seq[string]
}

// Digester computes content digests for manifest provenance.
type Digester interface {
	// Digest returns the content hash of the file at path, formatted as a
	// fixed-width hex string.
	Digest(path string) (string, error)
}
