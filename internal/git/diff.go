package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/grovekit/grove/internal/gitparse"
)

// CommitDiff pairs a commit with the changes it introduced.
type CommitDiff struct {
	Commit gitparse.CommitInfo `json:"commit"`
	Files  []gitparse.FileDiff `json:"files"`
	Stats  gitparse.DiffStats  `json:"stats"`
}

// WorkingDiff holds the uncommitted changes of a worktree. Untracked
// files appear in Unstaged as added files without hunks.
type WorkingDiff struct {
	Staged   []gitparse.FileDiff `json:"staged_files"`
	Unstaged []gitparse.FileDiff `json:"unstaged_files"`
	Stats    gitparse.DiffStats  `json:"stats"`
}

// GetCommitDiff resolves commitIsh in the worktree at path and returns
// the commit together with its diff against the first parent. Renames
// are detected so moved files show as one entry.
func GetCommitDiff(ctx context.Context, path, commitIsh string) (*CommitDiff, error) {
	logOut, err := outputGit(ctx, path, "log", "-1", "--format="+gitparse.LogFormat, commitIsh)
	if err != nil {
		return nil, fmt.Errorf("resolve commit %q: %w", commitIsh, err)
	}
	commits := gitparse.ParseCommitLog(string(logOut))
	if len(commits) == 0 {
		return nil, fmt.Errorf("no commit found for %q", commitIsh)
	}

	showOut, err := outputGit(ctx, path, "show", commitIsh, "--format=", "-U3", "-M")
	if err != nil {
		return nil, fmt.Errorf("show commit %q: %w", commitIsh, err)
	}
	files := gitparse.ParseDiff(string(showOut))

	return &CommitDiff{
		Commit: commits[0],
		Files:  files,
		Stats:  gitparse.ComputeStats(files),
	}, nil
}

// GetWorkingDiff returns the staged and unstaged changes of the
// worktree at path. Stats cover both sides, counting each untracked
// file as a changed file with no line counts.
func GetWorkingDiff(ctx context.Context, path string) (*WorkingDiff, error) {
	stagedOut, err := outputGit(ctx, path, "diff", "--cached", "-U3")
	if err != nil {
		return nil, fmt.Errorf("staged diff: %w", err)
	}
	staged := gitparse.ParseDiff(string(stagedOut))

	unstagedOut, err := outputGit(ctx, path, "diff", "-U3")
	if err != nil {
		return nil, fmt.Errorf("unstaged diff: %w", err)
	}
	unstaged := gitparse.ParseDiff(string(unstagedOut))

	untrackedOut, err := outputGit(ctx, path, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return nil, fmt.Errorf("untracked files: %w", err)
	}
	for _, line := range strings.Split(string(untrackedOut), "\n") {
		if line == "" {
			continue
		}
		unstaged = append(unstaged, gitparse.FileDiff{
			Path:   line,
			Status: gitparse.StatusAdded,
		})
	}

	all := make([]gitparse.FileDiff, 0, len(staged)+len(unstaged))
	all = append(all, staged...)
	all = append(all, unstaged...)

	return &WorkingDiff{
		Staged:   staged,
		Unstaged: unstaged,
		Stats:    gitparse.ComputeStats(all),
	}, nil
}
