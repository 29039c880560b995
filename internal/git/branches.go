package git

import (
	"context"
	"fmt"
	"strings"
)

// BranchInfo is one local or remote-tracking branch. IsCheckedOut is
// only ever set on local branches.
type BranchInfo struct {
	Name         string `json:"name"`
	IsRemote     bool   `json:"is_remote"`
	IsCheckedOut bool   `json:"is_checked_out"`
}

// ListBranches returns the local and remote-tracking branches of the
// repository at repoPath, local branches first, alphabetical within
// each group. Remote HEAD pointers such as origin/HEAD are skipped.
// A branch is remote when its full ref lives under refs/remotes/, so
// local names containing slashes are never misclassified.
func ListBranches(ctx context.Context, repoPath string) ([]BranchInfo, error) {
	out, err := outputGit(ctx, repoPath, "for-each-ref",
		"refs/heads", "refs/remotes",
		"--format=%(refname:short)%09%(refname)")
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}

	checkedOut, err := checkedOutRefs(ctx, repoPath)
	if err != nil {
		return nil, err
	}

	// for-each-ref sorts by full refname, which already yields local
	// branches (refs/heads) before remote ones (refs/remotes).
	var branches []BranchInfo
	for _, line := range strings.Split(string(out), "\n") {
		if line == "" {
			continue
		}
		short, full, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		if strings.HasSuffix(full, "/HEAD") {
			continue
		}
		isRemote := strings.HasPrefix(full, "refs/remotes/")
		branches = append(branches, BranchInfo{
			Name:         short,
			IsRemote:     isRemote,
			IsCheckedOut: !isRemote && checkedOut[full],
		})
	}

	return branches, nil
}

// BranchExists reports whether a local branch exists in the
// repository at repoPath.
func BranchExists(ctx context.Context, repoPath, branch string) bool {
	return runGit(ctx, repoPath, "rev-parse", "--verify", "refs/heads/"+branch) == nil
}

// checkedOutRefs returns the full refs checked out across all
// worktrees of the repository. Detached worktrees contribute nothing.
func checkedOutRefs(ctx context.Context, repoPath string) (map[string]bool, error) {
	out, err := outputGit(ctx, repoPath, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("list worktrees: %w", err)
	}

	refs := make(map[string]bool)
	for _, line := range strings.Split(string(out), "\n") {
		if ref, ok := strings.CutPrefix(line, "branch "); ok {
			refs[ref] = true
		}
	}
	return refs, nil
}
