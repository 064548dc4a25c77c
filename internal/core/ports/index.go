package ports

import (
	"context"
	"iter"

	"go.trai.ch/shlibdeps/internal/core/domain"
)

// FileIndex maps library file paths to the distribution packages that
// provide them.
//
//go:generate go run go.uber.org/mock/mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks
type FileIndex interface {
	// Search streams (package, path) matches for the given candidate paths,
	// scoped to the architecture. Matches arrive in index order, not
	// sorted; correctness must not depend on their order. Paths with no
	// owning package simply produce no match. A non-nil error terminates
	// the sequence.
	Search(ctx context.Context, arch domain.Architecture, paths []string) iter.Seq2[domain.IndexMatch, error]
}
