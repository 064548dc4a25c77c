package libindex_test

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shlibdeps/internal/core/domain"
	"go.trai.ch/shlibdeps/internal/core/ports/mocks"
	"go.trai.ch/shlibdeps/internal/engine/libindex"
	"go.uber.org/mock/gomock"
)

const (
	sigAmd64 = "ELF 64-bit LSB shared object, x86-64, version 1 (SYSV), dynamically linked"
	sigArmhf = "ELF 32-bit LSB shared object, ARM, EABI5 version 1 (SYSV), dynamically linked"
)

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return logger
}

func TestIsLibraryName(t *testing.T) {
	assert.True(t, libindex.IsLibraryName("libfoo.so"))
	assert.True(t, libindex.IsLibraryName("libfoo.so.1.2"))
	assert.False(t, libindex.IsLibraryName("libfoo.so.1.debug"))
	assert.False(t, libindex.IsLibraryName("README"))
}

func TestBuilder_Build(t *testing.T) {
	ctrl := gomock.NewController(t)

	root := t.TempDir()

	walker := mocks.NewMockFileWalker(ctrl)
	walker.EXPECT().WalkFiles(root, nil).Return(slices.Values([]string{
		root + "/libfoo.so.1",
		root + "/libbar.so.2",
		root + "/libbar.so.2.debug",
		root + "/notes.txt",
		root + "/libbroken.so",
	}))

	inspector := mocks.NewMockBinaryInspector(ctrl)
	inspector.EXPECT().Signature(root + "/libfoo.so.1").Return(sigAmd64, nil)
	inspector.EXPECT().Signature(root + "/libbar.so.2").Return(sigArmhf, nil)
	inspector.EXPECT().Signature(root + "/libbroken.so").Return("ASCII text", nil)

	builder := libindex.NewBuilder(inspector, walker, quietLogger(ctrl))

	index, warnings := builder.Build(context.Background(), []string{root})
	assert.Empty(t, warnings)

	path, ok := index.Lookup(domain.ArchAmd64, "libfoo.so.1")
	require.True(t, ok)
	assert.Equal(t, root+"/libfoo.so.1", path)

	path, ok = index.Lookup(domain.ArchArmhf, "libbar.so.2")
	require.True(t, ok)
	assert.Equal(t, root+"/libbar.so.2", path)

	_, ok = index.Lookup(domain.ArchAmd64, "libbroken.so")
	assert.False(t, ok)
	_, ok = index.Lookup(domain.ArchArmhf, "libbar.so.2.debug")
	assert.False(t, ok)
}

func TestBuilder_Build_FirstListedDirectoryWins(t *testing.T) {
	ctrl := gomock.NewController(t)

	first := t.TempDir()
	second := t.TempDir()

	walker := mocks.NewMockFileWalker(ctrl)
	walker.EXPECT().WalkFiles(first, nil).Return(slices.Values([]string{first + "/libfoo.so.1"}))
	walker.EXPECT().WalkFiles(second, nil).Return(slices.Values([]string{second + "/libfoo.so.1"}))

	inspector := mocks.NewMockBinaryInspector(ctrl)
	inspector.EXPECT().Signature(gomock.Any()).Return(sigAmd64, nil).Times(2)

	builder := libindex.NewBuilder(inspector, walker, quietLogger(ctrl))

	index, warnings := builder.Build(context.Background(), []string{first, second})
	assert.Empty(t, warnings)

	path, ok := index.Lookup(domain.ArchAmd64, "libfoo.so.1")
	require.True(t, ok)
	assert.Equal(t, first+"/libfoo.so.1", path)
}

func TestBuilder_Build_UnreadableDirectoryWarns(t *testing.T) {
	ctrl := gomock.NewController(t)

	builder := libindex.NewBuilder(
		mocks.NewMockBinaryInspector(ctrl),
		mocks.NewMockFileWalker(ctrl),
		quietLogger(ctrl),
	)

	index, warnings := builder.Build(context.Background(), []string{"/nonexistent/libs"})
	assert.Zero(t, index.Len())
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "/nonexistent/libs")
}

func TestBuilder_Build_InspectorFailureSkipsCandidate(t *testing.T) {
	ctrl := gomock.NewController(t)

	root := t.TempDir()

	walker := mocks.NewMockFileWalker(ctrl)
	walker.EXPECT().WalkFiles(root, nil).Return(slices.Values([]string{root + "/libfoo.so"}))

	inspector := mocks.NewMockBinaryInspector(ctrl)
	inspector.EXPECT().Signature(root+"/libfoo.so").Return("", assert.AnError)

	builder := libindex.NewBuilder(inspector, walker, quietLogger(ctrl))

	index, warnings := builder.Build(context.Background(), []string{root})
	assert.Empty(t, warnings)
	assert.Zero(t, index.Len())
}
