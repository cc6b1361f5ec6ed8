// Package gitinfo resolves the dist-git context of an artifact: spec files
// are usually edited inside a dist-git checkout, and reports carry the HEAD
// commit so a finding can be tied to a revision.
package gitinfo

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// Adapter reads repository metadata using go-git.
type Adapter struct{}

// New creates an Adapter.
func New() *Adapter { return &Adapter{} }

// openFor opens the repository containing path, walking up from the
// artifact's directory the way git itself does.
func openFor(path string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(filepath.Dir(path), &git.PlainOpenOptions{
		DetectDotGit: true,
	})
}

// InRepo reports whether the artifact at path lives inside a git worktree.
func (a *Adapter) InRepo(path string) bool {
	_, err := openFor(path)
	return err == nil
}

// HeadCommit returns the HEAD commit hash of the repository containing the
// artifact at path.
func (a *Adapter) HeadCommit(path string) (string, error) {
	repo, err := openFor(path)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}
	return head.Hash().String(), nil
}
