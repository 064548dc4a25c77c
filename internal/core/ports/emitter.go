package ports

import (
	"io"

	"go.trai.ch/shlibdeps/internal/core/domain"
)

// ManifestEmitter formats a manifest into its output artifact.
//
//go:generate go run go.uber.org/mock/mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks
type ManifestEmitter interface {
	// Emit writes the manifest to w. The manifest's entries and warnings
	// are already ordered; Emit performs no reordering.
	Emit(w io.Writer, m *domain.Manifest) error
}
