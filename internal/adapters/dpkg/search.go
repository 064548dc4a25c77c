// Package dpkg maps library file paths to the packages providing them and
// queries installed package versions, using dpkg-query(1).
package dpkg

import (
	"bufio"
	"context"
	"errors"
	"iter"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/shlibdeps/internal/core/domain"
	"go.trai.ch/shlibdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileIndex = (*Index)(nil)

// Index implements ports.FileIndex on top of the dpkg file database.
type Index struct {
	// Tool is the command to invoke. Defaults to "dpkg-query".
	Tool string
}

// NewIndex creates an Index using the system dpkg-query.
func NewIndex() *Index {
	return &Index{Tool: "dpkg-query"}
}

// Search streams (package, path) matches for the candidate paths. The paths
// are batched into a temporary file and fed through xargs, so arbitrarily
// large candidate sets never hit the kernel argument-length limit. The
// temporary file lives only for the duration of this one search; removal is
// deferred before the command ever runs.
//
// dpkg-query -S exits 1 when any pattern is unmatched, which xargs reports
// as exit status 123. Unmatched paths are exactly what the caller's
// unresolved bookkeeping detects, so neither status is an error here.
func (i *Index) Search(ctx context.Context, arch domain.Architecture, paths []string) iter.Seq2[domain.IndexMatch, error] {
	return func(yield func(domain.IndexMatch, error) bool) {
		if len(paths) == 0 {
			return
		}

		batch, err := writeBatchFile(paths)
		if err != nil {
			yield(domain.IndexMatch{}, err)
			return
		}
		defer func() { _ = os.Remove(batch) }()

		// -d '\n' keeps paths containing spaces as single patterns.
		//nolint:gosec // tool name is fixed, paths travel via the batch file
		cmd := exec.CommandContext(ctx, "xargs", "-a", batch, "-d", "\n", i.Tool, "-S")
		out, err := cmd.Output()
		if err != nil {
			var exitErr *exec.ExitError
			if !errors.As(err, &exitErr) || (exitErr.ExitCode() != 1 && exitErr.ExitCode() != 123) {
				err = zerr.Wrap(err, "package file index lookup failed")
				yield(domain.IndexMatch{}, zerr.With(err, "arch", string(arch)))
				return
			}
		}

		scanner := bufio.NewScanner(strings.NewReader(string(out)))
		for scanner.Scan() {
			for _, match := range ParseSearchLine(scanner.Text(), arch) {
				if !yield(match, nil) {
					return
				}
			}
		}
	}
}

// writeBatchFile writes one path per line to a fresh temporary file and
// returns its name.
func writeBatchFile(paths []string) (string, error) {
	f, err := os.CreateTemp("", "shlibdeps-paths-")
	if err != nil {
		return "", zerr.Wrap(err, "creating path batch file failed")
	}

	for _, path := range paths {
		if _, err := f.WriteString(path + "\n"); err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
			return "", zerr.Wrap(err, "writing path batch file failed")
		}
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", zerr.Wrap(err, "closing path batch file failed")
	}
	return f.Name(), nil
}

// ParseSearchLine parses one dpkg-query -S output line, e.g.
//
//	libc6:amd64: /lib/x86_64-linux-gnu/libc.so.6
//	libfoo1, libfoo1-extra: /usr/lib/libfoo.so.1
//	diversion by glibc from: /lib/ld-linux.so.2
//
// Packages qualified with a different architecture are dropped; diversion
// records are not package matches at all.
func ParseSearchLine(line string, arch domain.Architecture) []domain.IndexMatch {
	if strings.HasPrefix(line, "diversion ") {
		return nil
	}

	names, path, ok := strings.Cut(line, ": ")
	if !ok || !strings.HasPrefix(path, "/") {
		return nil
	}

	var matches []domain.IndexMatch
	for _, name := range strings.Split(names, ", ") {
		bare, qualifier, qualified := strings.Cut(name, ":")
		if bare == "" {
			continue
		}
		if qualified && qualifier != string(arch) && qualifier != "all" {
			continue
		}
		matches = append(matches, domain.IndexMatch{Package: bare, Path: path})
	}
	return matches
}
