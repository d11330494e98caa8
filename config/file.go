package config

import (
	"github.com/urfave/cli"

	"github.com/depscan/depscan-cli/cmd/depscan/flags"
	"github.com/depscan/depscan-cli/errors"
	"github.com/depscan/depscan-cli/files"
)

// DefaultFilenames are searched in order when --config is not passed.
var DefaultFilenames = []string{".depscan.yml", ".depscan.yaml"}

// A File is the parsed configuration file.
type File struct {
	Version int `yaml:"version"`

	Endpoint string `yaml:"server,omitempty"`
	APIKey   string `yaml:"apikey,omitempty"`
	Project  string `yaml:"project,omitempty"`
	CacheDir string `yaml:"cache_dir,omitempty"`

	Provider ProviderConfig `yaml:"provider,omitempty"`
}

// ProviderConfig selects and configures the manifest structure provider.
type ProviderConfig struct {
	Type    string                 `yaml:"type,omitempty"`
	Options map[string]interface{} `yaml:"options,omitempty"`
}

// ReadFile loads the configuration file named by --config, or the first
// default filename that exists. A missing file is not an error: every value
// has a flag or inferred fallback.
func ReadFile(c *cli.Context) (File, string, error) {
	candidates := DefaultFilenames
	if flagged := c.GlobalString(flags.ConfigFlagName); flagged != "" {
		candidates = []string{flagged}
	} else if flagged := c.String(flags.ConfigFlagName); flagged != "" {
		candidates = []string{flagged}
	}

	for _, name := range candidates {
		ok, err := files.Exists(name)
		if err != nil {
			return File{}, "", errors.Wrapf(err, "could not check configuration file %q", name)
		}
		if !ok {
			continue
		}

		var f File
		if err := files.ReadYAML(&f, name); err != nil {
			return File{}, "", errors.Wrapf(err, "could not parse configuration file %q", name)
		}
		return f, name, nil
	}

	return File{}, "", nil
}
