// Package file implements the binary signature inspector using file(1).
package file

import (
	"bytes"
	"os/exec"
	"strings"

	"go.trai.ch/shlibdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BinaryInspector = (*Inspector)(nil)

// Inspector implements ports.BinaryInspector by invoking the file tool.
type Inspector struct {
	// Tool is the command to invoke. Defaults to "file"; tests point it at
	// a stand-in script.
	Tool string
}

// NewInspector creates an Inspector using the system file tool.
func NewInspector() *Inspector {
	return &Inspector{Tool: "file"}
}

// Signature runs `file -b` on the given path and returns the reported type
// signature. The -b flag suppresses the leading filename so the output is
// the bare signature string.
func (i *Inspector) Signature(path string) (string, error) {
	out := bytes.Buffer{}
	cmd := exec.Command(i.Tool, "-b", path) //nolint:gosec // path is provided by user
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		err = zerr.Wrap(err, "file inspection failed")
		err = zerr.With(err, "path", path)
		return "", zerr.With(err, "output", strings.TrimSpace(out.String()))
	}

	return strings.TrimSpace(out.String()), nil
}
