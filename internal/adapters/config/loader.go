// Package config provides the configuration loader for shlibdeps.
package config

import (
	"os"
	"slices"

	"go.trai.ch/shlibdeps/internal/core/domain"
	"go.trai.ch/shlibdeps/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working
// directory.
const DefaultFilename = "shlibdeps.yaml"

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// NewFileConfigLoader creates a loader for the default filename.
func NewFileConfigLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: DefaultFilename}
}

// Load reads the configuration from the given file path. An empty path
// falls back to discovery of the default filename in the working
// directory, where a missing file yields zero-valued settings.
func (l *FileConfigLoader) Load(path string) (domain.Settings, error) {
	if path == "" {
		path = l.Filename
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return domain.Settings{}, nil
		}
	}
	return Load(path)
}

// File represents the structure of the shlibdeps.yaml configuration
// file.
type File struct {
	Version      string   `yaml:"version"`
	LibraryPaths []string `yaml:"libraryPaths"`
	Output       string   `yaml:"output"`
	Versions     bool     `yaml:"versions"`
	Exclude      []string `yaml:"exclude"`
}

// Load reads a configuration file from the given path and returns the
// run settings it declares.
func Load(path string) (domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to read config file")
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to parse config file")
	}

	if file.Version != "" && file.Version != "1" {
		return domain.Settings{}, zerr.With(zerr.New("unsupported config version"), "version", file.Version)
	}

	return domain.Settings{
		// Search path order is significant: the first directory that
		// provides a library name wins. Exclusions are order free and
		// deduplicated.
		LibraryPaths: file.LibraryPaths,
		Output:       file.Output,
		Versions:     file.Versions,
		Exclude:      dedupeStrings(file.Exclude),
	}, nil
}

func dedupeStrings(strs []string) []string {
	if len(strs) == 0 {
		return nil
	}

	sorted := make([]string, len(strs))
	copy(sorted, strs)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
