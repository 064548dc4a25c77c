// Package ldd resolves a binary's shared-library references through the
// dynamic linker, using ldd(1).
package ldd

import (
	"os/exec"
	"regexp"
	"strings"

	"go.trai.ch/shlibdeps/internal/core/domain"
	"go.trai.ch/shlibdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LibraryResolver = (*Resolver)(nil)

var (
	// resolvedRe matches "libfoo.so.1 => /usr/lib/libfoo.so.1 (0x...)".
	resolvedRe = regexp.MustCompile(`^\s*(\S+)\s+=>\s+(/\S+)(?:\s+\(0x[0-9a-f]+\))?$`)
	// notFoundRe matches "libfoo.so.1 => not found".
	notFoundRe = regexp.MustCompile(`^\s*(\S+)\s+=>\s+not found$`)
	// loaderRe matches loader lines like "/lib64/ld-linux-x86-64.so.2 (0x...)",
	// which carry no "=>" because the name is already a path.
	loaderRe = regexp.MustCompile(`^\s*(/\S+)\s+\(0x[0-9a-f]+\)$`)
)

// Resolver implements ports.LibraryResolver by invoking ldd.
type Resolver struct {
	// Tool is the command to invoke. Defaults to "ldd".
	Tool string
}

// NewResolver creates a Resolver using the system ldd.
func NewResolver() *Resolver {
	return &Resolver{Tool: "ldd"}
}

// ResolveLibraries runs ldd on the file and returns every referenced
// library name with the path the dynamic linker resolved it to. Statically
// linked binaries yield an empty map. The command runs with an empty
// environment so LD_PRELOAD and friends cannot distort the resolution.
func (r *Resolver) ResolveLibraries(path string) (map[string]domain.Location, error) {
	cmd := exec.Command(r.Tool, path) //nolint:gosec // path is provided by user
	cmd.Env = []string{}

	out, err := cmd.CombinedOutput()
	if err != nil {
		// ldd exits nonzero for static binaries, which simply have no
		// dynamic dependencies.
		if strings.Contains(string(out), "not a dynamic executable") {
			return map[string]domain.Location{}, nil
		}
		err = zerr.Wrap(err, "dynamic linker resolution failed")
		err = zerr.With(err, "path", path)
		return nil, zerr.With(err, "output", strings.TrimSpace(string(out)))
	}

	return ParseOutput(string(out)), nil
}

// ParseOutput parses ldd output into a name-to-location map. Virtual
// entries like linux-vdso.so.1, which resolve to no on-disk file, are
// dropped; loader lines keep their path as both name and location.
func ParseOutput(output string) map[string]domain.Location {
	locations := make(map[string]domain.Location)

	for line := range strings.Lines(output) {
		line = strings.TrimRight(line, "\n")
		switch {
		case strings.TrimSpace(line) == "" || strings.TrimSpace(line) == "statically linked":
			continue
		case notFoundRe.MatchString(line):
			m := notFoundRe.FindStringSubmatch(line)
			locations[m[1]] = domain.Location{}
		case resolvedRe.MatchString(line):
			m := resolvedRe.FindStringSubmatch(line)
			locations[m[1]] = domain.Location{Path: m[2], Found: true}
		case loaderRe.MatchString(line):
			m := loaderRe.FindStringSubmatch(line)
			locations[m[1]] = domain.Location{Path: m[1], Found: true}
		}
	}

	return locations
}
