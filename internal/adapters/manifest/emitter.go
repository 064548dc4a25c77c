// Package manifest renders the dependency manifest to its textual wire
// format.
package manifest

import (
	"fmt"
	"io"
	"strings"

	"go.trai.ch/shlibdeps/internal/core/domain"
	"go.trai.ch/shlibdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestEmitter = (*Emitter)(nil)

// Emitter writes manifests in format version 1.
type Emitter struct{}

// NewEmitter creates a new Emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Emit renders the manifest to w. The output is deterministic: entries
// and warnings are written in the order they appear in the manifest,
// which callers keep sorted.
func (e *Emitter) Emit(w io.Writer, m *domain.Manifest) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# generated by shlibdeps %s\n", m.Tool)
	for _, input := range m.Inputs {
		fmt.Fprintf(&b, "# input: %s xxhash:%s\n", input.Path, input.Digest)
	}
	fmt.Fprintf(&b, "# format: %d\n", m.FormatVersion)

	for _, entry := range m.Entries {
		if entry.MinVersion != "" {
			fmt.Fprintf(&b, "%s (>= %s)\n", entry.Name, entry.MinVersion)
		} else {
			fmt.Fprintf(&b, "%s\n", entry.Name)
		}
	}

	for _, warning := range m.Warnings {
		fmt.Fprintf(&b, "# warning: %s\n", warning)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return zerr.Wrap(err, "failed to write manifest")
	}
	return nil
}
