// Package objdump reads direct link requirements from a binary's dynamic
// section using objdump(1).
package objdump

import (
	"bytes"
	"os/exec"
	"regexp"
	"strings"

	"go.trai.ch/shlibdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LinkReader = (*Reader)(nil)

// neededRe matches NEEDED entries in objdump -p output, e.g.
// "  NEEDED               libc.so.6". Only NEEDED entries are direct link
// requirements; everything else in the dynamic section is ignored.
var neededRe = regexp.MustCompile(`^\s*NEEDED\s+(\S+)\s*$`)

// Reader implements ports.LinkReader by invoking objdump.
type Reader struct {
	// Tool is the command to invoke. Defaults to "objdump".
	Tool string
}

// NewReader creates a Reader using the system objdump.
func NewReader() *Reader {
	return &Reader{Tool: "objdump"}
}

// DirectLibraries runs `objdump -p` on the file and extracts the NEEDED
// entries of its dynamic section. A file without a dynamic section (e.g. a
// statically linked executable) yields an empty list; a file objdump cannot
// read at all is a fatal error.
func (r *Reader) DirectLibraries(path string) ([]string, error) {
	out := bytes.Buffer{}
	cmd := exec.Command(r.Tool, "-p", path) //nolint:gosec // path is provided by user
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		err = zerr.Wrap(err, "reading dynamic section failed")
		err = zerr.With(err, "path", path)
		return nil, zerr.With(err, "output", strings.TrimSpace(out.String()))
	}

	return ParseNeeded(out.String()), nil
}

// ParseNeeded extracts the NEEDED library names from objdump -p output.
// Duplicate entries are preserved as-is; callers treat the result as a set.
func ParseNeeded(output string) []string {
	var names []string
	for line := range strings.Lines(output) {
		if m := neededRe.FindStringSubmatch(strings.TrimRight(line, "\n")); m != nil {
			names = append(names, m[1])
		}
	}
	return names
}
