package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	original := os.Args
	t.Cleanup(func() { os.Args = original })
	os.Args = append([]string{"shlibdeps"}, args...)
}

func TestRun_Version(t *testing.T) {
	withArgs(t, "version")

	assert.Equal(t, 0, run())
}

func TestRun_UnknownCommand(t *testing.T) {
	withArgs(t, "frobnicate")

	assert.Equal(t, 1, run())
}

func TestRun_MissingInputExitCode(t *testing.T) {
	t.Chdir(t.TempDir())
	withArgs(t, "generate", filepath.Join(t.TempDir(), "nope"))

	assert.Equal(t, 3, run())
}
