package ports

import "go.trai.ch/shlibdeps/internal/core/domain"

// LibraryResolver asks the dynamic linker where a file's libraries (direct
// and indirect) resolve to.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type LibraryResolver interface {
	// ResolveLibraries returns, for every library name the file references,
	// the location the dynamic linker resolved it to. Names the linker
	// could not locate are present with Found set to false.
	ResolveLibraries(path string) (map[string]domain.Location, error)
}
