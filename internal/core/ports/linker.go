package ports

// LinkReader lists the shared libraries a file explicitly links against.
//
//go:generate go run go.uber.org/mock/mockgen -source=linker.go -destination=mocks/mock_linker.go -package=mocks
type LinkReader interface {
	// DirectLibraries returns the library names recorded as direct link
	// requirements in the file's dynamic section. Transitively inherited
	// libraries do not appear here; the walker relies on that to avoid
	// charging a package to every file in a dependency chain.
	DirectLibraries(path string) ([]string, error)
}
