// Package gitutil resolves the repository enclosing a path so searches
// can be scoped to the current project instead of the home default.
package gitutil

import (
	"os"

	git "github.com/go-git/go-git/v5"
)

// RepoRoot returns the worktree root of the repository enclosing path,
// walking parent directories the way git itself does. The second return
// is false when path is not inside a repository (or the repository is
// bare and has no worktree).
func RepoRoot(path string) (string, bool) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", false
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", false
	}
	return wt.Filesystem.Root(), true
}

// CurrentRepoRoot resolves the repository root from the working directory.
func CurrentRepoRoot() (string, bool) {
	wd, err := os.Getwd()
	if err != nil {
		return "", false
	}
	return RepoRoot(wd)
}
