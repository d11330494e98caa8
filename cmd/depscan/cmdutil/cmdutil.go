// Package cmdutil provides shared helpers for command implementations.
package cmdutil

import (
	"github.com/depscan/depscan-cli/buildtools/maven"
	"github.com/depscan/depscan-cli/cache"
	"github.com/depscan/depscan-cli/config"
	"github.com/depscan/depscan-cli/errors"
	"github.com/depscan/depscan-cli/module"
)

// NewProvider constructs the configured manifest structure provider.
func NewProvider() (module.StructureProvider, error) {
	switch config.ProviderType() {
	case "maven":
		return maven.NewProvider(config.ProviderOptions())
	default:
		return nil, &errors.Error{
			Type:            errors.User,
			Message:         "unknown provider type: " + config.ProviderType(),
			Troubleshooting: "Supported provider types: maven.",
		}
	}
}

// OpenCache opens the configured scan cache, falling back to the per-user
// default directory.
func OpenCache() (*cache.Store, error) {
	dir := config.CacheDir()
	if dir == "" {
		d, err := cache.DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	return cache.Open(dir)
}
