// Package ports defines the core interfaces for the application.
package ports

// BinaryInspector reads the on-disk type signature of a binary.
//
//go:generate go run go.uber.org/mock/mockgen -source=inspector.go -destination=mocks/mock_inspector.go -package=mocks
type BinaryInspector interface {
	// Signature returns the raw type signature of the file at path, as
	// reported by the system's file-type inspection tool. A failure to run
	// the tool is an I/O error and must be propagated, not retried.
	Signature(path string) (string, error)
}
