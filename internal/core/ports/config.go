package ports

import "go.trai.ch/shlibdeps/internal/core/domain"

// ConfigLoader loads run settings from a configuration file.
//
//go:generate go run go.uber.org/mock/mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given file path. An empty
	// path means discovery in the working directory, where a missing
	// file is not an error and yields zero-valued settings. A missing
	// explicitly named file is an error.
	Load(path string) (domain.Settings, error)
}
