package git

import (
	"context"
	"fmt"
)

// ErrGitNotFound indicates git is not installed or not in PATH.
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// CheckGit verifies that a working git binary is available.
func CheckGit(ctx context.Context) error {
	if err := runGit(ctx, "", "--version"); err != nil {
		return ErrGitNotFound
	}
	return nil
}

// IsInsideRepo returns true if path is inside a git repository.
// An empty path means the current working directory.
func IsInsideRepo(ctx context.Context, path string) bool {
	return runGit(ctx, path, "rev-parse", "--is-inside-work-tree") == nil
}
