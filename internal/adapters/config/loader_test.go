package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shlibdeps/internal/adapters/config"
	"go.trai.ch/shlibdeps/internal/core/domain"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `version: "1"
libraryPaths:
  - ./build/lib
  - ./vendor/lib
output: deps.manifest
versions: true
exclude:
  - libc6
  - libgcc-s1
  - libc6
`)

	settings, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"./build/lib", "./vendor/lib"}, settings.LibraryPaths)
	assert.Equal(t, "deps.manifest", settings.Output)
	assert.True(t, settings.Versions)
	assert.Equal(t, []string{"libc6", "libgcc-s1"}, settings.Exclude)
}

func TestLoad_UnsupportedVersion(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `version: "2"`)

	_, err := config.Load(path)
	assert.ErrorContains(t, err, "unsupported config version")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "libraryPaths: [unclosed")

	_, err := config.Load(path)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestFileConfigLoader_MissingDefaultFileIsNotAnError(t *testing.T) {
	t.Chdir(t.TempDir())
	loader := config.NewFileConfigLoader()

	settings, err := loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{}, settings)
}

func TestFileConfigLoader_MissingExplicitFileIsAnError(t *testing.T) {
	loader := config.NewFileConfigLoader()

	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestSettings_Merge(t *testing.T) {
	base := domain.Settings{
		LibraryPaths: []string{"./lib"},
		Output:       "from-file.manifest",
		Exclude:      []string{"libc6"},
	}

	merged := base.Merge(domain.Settings{
		Output:   "from-flag.manifest",
		Versions: true,
	})

	assert.Equal(t, []string{"./lib"}, merged.LibraryPaths)
	assert.Equal(t, "from-flag.manifest", merged.Output)
	assert.True(t, merged.Versions)
	assert.True(t, merged.Excluded("libc6"))
	assert.False(t, merged.Excluded("libfoo1"))
}
