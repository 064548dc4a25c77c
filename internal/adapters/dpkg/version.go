package dpkg

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/shlibdeps/internal/core/domain"
	"go.trai.ch/shlibdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageDB = (*DB)(nil)

// DB implements ports.PackageDB using dpkg-query's package database.
type DB struct {
	// Tool is the command to invoke. Defaults to "dpkg-query".
	Tool string
}

// NewDB creates a DB using the system dpkg-query.
func NewDB() *DB {
	return &DB{Tool: "dpkg-query"}
}

// InstalledVersion returns the installed version of the named package.
// An unknown package maps to domain.ErrPackageUnknown so callers can treat
// it as a warning rather than a failure.
func (d *DB) InstalledVersion(ctx context.Context, name string) (string, error) {
	out := bytes.Buffer{}
	//nolint:gosec // tool name is fixed, name comes from the package index
	cmd := exec.CommandContext(ctx, d.Tool, "-W", "-f=${Version}", name)
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", zerr.With(zerr.Wrap(domain.ErrPackageUnknown, "package is not installed"), "package", name)
		}
		err = zerr.Wrap(err, "package version lookup failed")
		return "", zerr.With(err, "package", name)
	}

	version := strings.TrimSpace(out.String())
	if version == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrPackageUnknown, "package has no version recorded"), "package", name)
	}
	return version, nil
}
