// Package config implements application-level configuration functionality.
//
// It works by loading configuration sources (CLI flags, a configuration
// file, the local VCS) and providing functions which compute relevant
// configuration values from these sources. This keeps how a particular
// value is computed very clear, and lets each value's strategy change
// independently.
package config

import (
	"github.com/apex/log"
	"github.com/urfave/cli"

	"github.com/depscan/depscan-cli/vcs"
)

var (
	ctx  *cli.Context
	file File
	repo *vcs.GitRepository
)

// SetContext initializes configuration from the CLI context: flags first,
// then the configuration file, then the local git repository (if any).
func SetContext(c *cli.Context) error {
	ctx = c

	f, fname, err := ReadFile(c)
	if err != nil {
		return err
	}
	file = f
	filename = fname
	if fname != "" {
		log.WithField("filename", fname).Debug("loaded configuration file")
	}

	dir, err := vcs.Nearest(".")
	if err == vcs.ErrNoNearestVCS {
		return nil
	}
	if err != nil {
		return err
	}
	r, err := vcs.NewGitRepository(dir)
	if err != nil {
		// A broken checkout only costs us default values.
		log.Debugf("could not open git repository: %s", err.Error())
		return nil
	}
	repo = r

	return nil
}
