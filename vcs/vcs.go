// Package vcs implements functions for interacting with version control
// systems.
package vcs

import (
	"github.com/depscan/depscan-cli/errors"
	"github.com/depscan/depscan-cli/files"
)

var ErrNoNearestVCS = errors.New("could not find nearest VCS repository in directory")

// A Revision identifies the current state of a repository.
type Revision struct {
	Branch     string
	RevisionID string
}

// Nearest returns the directory of the nearest enclosing git repository,
// walking upwards from dirname.
func Nearest(dirname string) (string, error) {
	dir, err := files.WalkUp(dirname, func(d string) error {
		ok, err := files.ExistsFolder(d, ".git")
		if err != nil {
			return err
		}
		if ok {
			return files.ErrStopWalk
		}
		return nil
	})
	if err == files.ErrDirNotFound {
		return "", ErrNoNearestVCS
	}
	return dir, err
}
