package ports

import "context"

// PackageDB queries the installed-package database.
//
//go:generate go run go.uber.org/mock/mockgen -source=pkgdb.go -destination=mocks/mock_pkgdb.go -package=mocks
type PackageDB interface {
	// InstalledVersion returns the version of the installed package with
	// the given name. It returns domain.ErrPackageUnknown when no such
	// package is installed; callers treat that as a warning, never fatal.
	InstalledVersion(ctx context.Context, name string) (string, error)
}
