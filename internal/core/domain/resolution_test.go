package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/shlibdeps/internal/core/domain"
)

func TestResolution_MarkVisited(t *testing.T) {
	res := domain.NewResolution(nil)

	assert.True(t, res.MarkVisited("/usr/bin/foo"))
	assert.False(t, res.MarkVisited("/usr/bin/foo"))
	assert.True(t, res.MarkVisited("/usr/bin/bar"))
	assert.Equal(t, 2, res.VisitedCount())
}

func TestResolution_ArchitecturesSorted(t *testing.T) {
	res := domain.NewResolution(nil)
	res.InitArch(domain.ArchI386)
	res.InitArch(domain.ArchAmd64)
	res.InitArch(domain.ArchAmd64)

	assert.Equal(t, []domain.Architecture{domain.ArchAmd64, domain.ArchI386}, res.Architectures())
}

func TestResolution_AddLibraryInitializesArch(t *testing.T) {
	res := domain.NewResolution(nil)
	res.AddLibrary(domain.ArchAmd64, domain.LibraryRef{Name: "libc.so.6", Path: "/lib/libc.so.6"})

	libs := res.Libraries(domain.ArchAmd64)
	assert.Len(t, libs, 1)
	assert.Nil(t, res.Libraries(domain.ArchI386))
}

func TestResolution_CustomPath(t *testing.T) {
	idx := domain.NewCustomIndex()
	idx.Put(domain.ArchAmd64, "libbar.so", "/src/libs/libbar.so")

	res := domain.NewResolution(idx)

	path, ok := res.CustomPath(domain.ArchAmd64, "libbar.so")
	assert.True(t, ok)
	assert.Equal(t, "/src/libs/libbar.so", path)

	_, ok = res.CustomPath(domain.ArchI386, "libbar.so")
	assert.False(t, ok)
}

func TestCustomIndex_PutOverwrites(t *testing.T) {
	idx := domain.NewCustomIndex()
	idx.Put(domain.ArchAmd64, "libbar.so", "/second/libbar.so")
	idx.Put(domain.ArchAmd64, "libbar.so", "/first/libbar.so")

	path, ok := idx.Lookup(domain.ArchAmd64, "libbar.so")
	assert.True(t, ok)
	assert.Equal(t, "/first/libbar.so", path)
	assert.Equal(t, 1, idx.Len())
}
