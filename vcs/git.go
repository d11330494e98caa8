package vcs

import (
	git "gopkg.in/src-d/go-git.v4"

	"github.com/depscan/depscan-cli/errors"
)

// A GitRepository provides project and revision metadata from a local git
// checkout.
type GitRepository struct {
	r   *git.Repository
	dir string
}

// NewGitRepository opens the git repository at dir.
func NewGitRepository(dir string) (*GitRepository, error) {
	r, err := git.PlainOpen(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open git repository at %q", dir)
	}
	return &GitRepository{
		r:   r,
		dir: dir,
	}, nil
}

// Head returns the current branch and revision hash.
func (gr *GitRepository) Head() (Revision, error) {
	ref, err := gr.r.Head()
	if err != nil {
		return Revision{}, errors.Wrap(err, "could not read repository HEAD")
	}
	return Revision{
		Branch:     ref.Name().Short(),
		RevisionID: ref.Hash().String(),
	}, nil
}

// Project returns the URL of the "origin" remote, or "" if there is none.
func (gr *GitRepository) Project() string {
	origin, err := gr.r.Remote("origin")
	if err != nil || origin == nil {
		return ""
	}
	urls := origin.Config().URLs
	if len(urls) == 0 {
		return ""
	}
	return urls[0]
}
