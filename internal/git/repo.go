package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNotARepo indicates a path is not inside a git repository.
var ErrNotARepo = fmt.Errorf("not inside a git repository")

// RepoRoot returns the top-level directory of the worktree enclosing dir.
// An empty dir means the current working directory.
func RepoRoot(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotARepo, displayDir(dir))
	}
	return strings.TrimSpace(string(out)), nil
}

// MainRepoPath resolves the main repository directory for dir, whether
// dir is inside the main worktree or a linked one. Worktree-level
// commands (add, remove, prune, branches) must run against this path.
func MainRepoPath(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "rev-parse", "--git-common-dir")
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotARepo, displayDir(dir))
	}

	// The common dir is the main repo's .git directory. Git reports it
	// relative to dir when dir sits inside the main worktree itself.
	common := strings.TrimSpace(string(out))
	if !filepath.IsAbs(common) {
		common = filepath.Join(dir, common)
	}
	abs, err := filepath.Abs(common)
	if err != nil {
		return "", fmt.Errorf("resolve git common dir: %w", err)
	}
	return filepath.Dir(abs), nil
}

// RepoName returns the display name for the repository at repoPath.
func RepoName(repoPath string) string {
	return filepath.Base(repoPath)
}

func displayDir(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}
