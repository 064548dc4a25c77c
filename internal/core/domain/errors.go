package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrOutputNotWritable is returned when the manifest output destination
	// cannot be opened.
	ErrOutputNotWritable = zerr.New("cannot open output file")

	// ErrInputNotFound is returned when a root executable does not exist.
	ErrInputNotFound = zerr.New("input file not found")

	// ErrUnknownArchitecture is returned when a root executable's binary
	// signature matches no known architecture.
	ErrUnknownArchitecture = zerr.New("unrecognized binary architecture")

	// ErrPackageUnknown is returned by the package database when no
	// installed package carries the queried name.
	ErrPackageUnknown = zerr.New("package not installed")
)

// Exit codes. Warnings never change the exit status; only the fatal error
// classes below get distinct codes so automation can tell them apart.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitBadOutput   = 2
	ExitMissingFile = 3
	ExitUnknownArch = 4
)

// ExitCode maps an error from a resolution run to its process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrOutputNotWritable):
		return ExitBadOutput
	case errors.Is(err, ErrInputNotFound):
		return ExitMissingFile
	case errors.Is(err, ErrUnknownArchitecture):
		return ExitUnknownArch
	default:
		return ExitFailure
	}
}
