// Package gitrepo resolves the target GitHub repository from the local git checkout.
package gitrepo

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/seedtools/ghseed/internal/domain"
)

// Locator implements domain.RepoLocator using go-git.
type Locator struct {
	dir string
}

// NewLocator creates a new Locator rooted at the given directory.
func NewLocator(dir string) *Locator {
	return &Locator{dir: dir}
}

// Ensure Locator implements domain.RepoLocator interface.
var _ domain.RepoLocator = (*Locator)(nil)

// OriginRepo returns the "owner/name" of the origin remote.
// The directory may be anywhere inside the repository.
func (l *Locator) OriginRepo() (string, error) {
	repo, err := git.PlainOpenWithOptions(l.dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("open repository: %w", err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", domain.ErrNoOriginRemote
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", domain.ErrNoOriginRemote
	}
	return domain.ParseRepoURL(urls[0])
}
