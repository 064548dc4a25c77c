package file_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shlibdeps/internal/adapters/file"
)

// fakeTool writes a shell script that mimics the file tool, so the adapter
// can be exercised without depending on file(1) being installed.
func fakeTool(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script tools are not available on windows")
	}

	path := filepath.Join(t.TempDir(), "file")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o700) //nolint:gosec // test fixture must be executable
	require.NoError(t, err)
	return path
}

func TestInspector_Signature(t *testing.T) {
	inspector := file.NewInspector()
	inspector.Tool = fakeTool(t, `echo "ELF 64-bit LSB pie executable, x86-64, version 1 (SYSV)"`)

	sig, err := inspector.Signature("/usr/bin/true")
	require.NoError(t, err)
	assert.Equal(t, "ELF 64-bit LSB pie executable, x86-64, version 1 (SYSV)", sig)
}

func TestInspector_SignatureToolFails(t *testing.T) {
	inspector := file.NewInspector()
	inspector.Tool = fakeTool(t, `echo "cannot open input" >&2; exit 1`)

	_, err := inspector.Signature("/nope")
	require.Error(t, err)
}

func TestInspector_ToolMissing(t *testing.T) {
	inspector := file.NewInspector()
	inspector.Tool = filepath.Join(t.TempDir(), "no-such-tool")

	_, err := inspector.Signature("/usr/bin/true")
	require.Error(t, err)
}
