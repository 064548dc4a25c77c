package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shlibdeps/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)
	return l, &buf
}

func TestLogger_Info(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Info("resolving libraries")

	assert.Contains(t, buf.String(), "resolving libraries")
}

func TestLogger_Warn(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Warn("library not matched")

	assert.Contains(t, buf.String(), "! library not matched")
}

func TestLogger_DebugHiddenByDefault(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Debug("visiting node")
	assert.Empty(t, buf.String())

	l.SetVerbose(true)
	l.Debug("visiting node")
	assert.Contains(t, buf.String(), "visiting node")
}

func TestLogger_ErrorChain(t *testing.T) {
	l, buf := newBufferedLogger(t)

	inner := zerr.New("exit status 1")
	err := zerr.Wrap(inner, "failed to run objdump")

	l.Error(err)

	out := buf.String()
	assert.Contains(t, out, "Error: failed to run objdump")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "→ exit status 1")
}

func TestLogger_ErrorNil(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_JSONMode(t *testing.T) {
	l, buf := newBufferedLogger(t)
	l.SetJSON(true)

	l.Info("resolving libraries")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "resolving libraries", record["msg"])
	assert.Equal(t, "INFO", record["level"])
}
