package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/shlibdeps/internal/core/domain"
)

func TestLibrarySet_Idempotence(t *testing.T) {
	set := domain.NewLibrarySet()

	ref := domain.LibraryRef{Name: "libfoo.so.1", Path: "/usr/lib/libfoo.so.1"}
	set.Add(ref)
	set.Add(ref)

	assert.Equal(t, 1, set.Len())
}

func TestLibrarySet_DistinctPathsStayDistinct(t *testing.T) {
	set := domain.NewLibrarySet()

	// The same name found via two mechanisms with different paths is two
	// entries until package resolution collapses it.
	set.Add(domain.LibraryRef{Name: "libfoo.so.1", Path: "/usr/lib/libfoo.so.1"})
	set.Add(domain.LibraryRef{Name: "libfoo.so.1", Path: "/opt/lib/libfoo.so.1"})
	set.Add(domain.LibraryRef{Name: "libfoo.so.1"})

	assert.Equal(t, 3, set.Len())
}

func TestLibrarySet_RefsSorted(t *testing.T) {
	set := domain.NewLibrarySet()
	set.Add(domain.LibraryRef{Name: "libz.so.1", Path: "/usr/lib/libz.so.1"})
	set.Add(domain.LibraryRef{Name: "liba.so.2", Path: "/usr/lib/liba.so.2"})
	set.Add(domain.LibraryRef{Name: "liba.so.2", Path: "/opt/lib/liba.so.2"})

	refs := set.Refs()
	assert.Equal(t, []domain.LibraryRef{
		{Name: "liba.so.2", Path: "/opt/lib/liba.so.2"},
		{Name: "liba.so.2", Path: "/usr/lib/liba.so.2"},
		{Name: "libz.so.1", Path: "/usr/lib/libz.so.1"},
	}, refs)
}

func TestLibraryRef_Resolved(t *testing.T) {
	assert.True(t, domain.LibraryRef{Name: "libfoo.so", Path: "/usr/lib/libfoo.so"}.Resolved())
	assert.False(t, domain.LibraryRef{Name: "libfoo.so"}.Resolved())
}
