package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/shlibdeps/internal/core/domain"
)

func TestPackage_Key(t *testing.T) {
	pkg := domain.NewPackage("libc6", domain.ArchAmd64)
	assert.Equal(t, "libc6:amd64", pkg.Key())
}

func TestPackage_AddPathIsIdempotent(t *testing.T) {
	pkg := domain.NewPackage("libc6", domain.ArchAmd64)
	pkg.AddPath("/lib/libm.so.6")
	pkg.AddPath("/lib/libc.so.6")
	pkg.AddPath("/lib/libc.so.6")

	assert.Equal(t, []string{"/lib/libc.so.6", "/lib/libm.so.6"}, pkg.Paths())
}

func TestSortedPackages(t *testing.T) {
	libssl := domain.NewPackage("libssl3", domain.ArchAmd64)
	libcArm := domain.NewPackage("libc6", domain.ArchArm64)
	libcAmd := domain.NewPackage("libc6", domain.ArchAmd64)

	sorted := domain.SortedPackages(map[string]*domain.Package{
		libssl.Key():  libssl,
		libcArm.Key(): libcArm,
		libcAmd.Key(): libcAmd,
	})

	keys := make([]string, 0, len(sorted))
	for _, pkg := range sorted {
		keys = append(keys, pkg.Key())
	}
	assert.Equal(t, []string{"libc6:amd64", "libc6:arm64", "libssl3:amd64"}, keys)
}
