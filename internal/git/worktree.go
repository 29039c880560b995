package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/grovekit/grove/internal/gitparse"
)

// Worktree is one checked-out working copy of a repository. Status is
// nil until populated by [AttachStatuses]; an empty Head.Branch means a
// detached HEAD.
type Worktree struct {
	Path       string                   `json:"path"`
	Name       string                   `json:"name"`
	IsMain     bool                     `json:"is_main"`
	Head       HeadInfo                 `json:"head"`
	Status     *gitparse.WorktreeStatus `json:"status,omitempty"`
	LastCommit int64                    `json:"last_commit_timestamp"`
}

// HeadInfo describes what a worktree has checked out.
type HeadInfo struct {
	Branch        string `json:"branch,omitempty"`
	CommitSHA     string `json:"commit_sha"`
	CommitMessage string `json:"commit_message"`
}

// AddOptions controls worktree creation. Path is required; NewBranch
// creates and checks out a branch, CommitIsh overrides the starting
// point, and Detach checks out without a branch.
type AddOptions struct {
	Path      string
	NewBranch string
	CommitIsh string
	Detach    bool
}

// PruneResult reports what a prune pass removed.
type PruneResult struct {
	PrunedCount int      `json:"pruned_count"`
	Messages    []string `json:"messages"`
}

// listWorktreePaths returns the worktree paths of repoPath in porcelain
// order. Git lists the main worktree first.
func listWorktreePaths(ctx context.Context, repoPath string) ([]string, error) {
	out, err := outputGit(ctx, repoPath, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("list worktrees: %w", err)
	}

	var paths []string
	for _, line := range strings.Split(string(out), "\n") {
		if p, ok := strings.CutPrefix(line, "worktree "); ok {
			paths = append(paths, p)
		}
	}
	return paths, nil
}

// buildWorktree collects head info for the worktree at path with four
// short git queries. Status is left nil for lazy loading.
func buildWorktree(ctx context.Context, path string, isMain bool) (Worktree, error) {
	sha, err := outputGit(ctx, path, "rev-parse", "--short", "HEAD")
	if err != nil {
		return Worktree{}, fmt.Errorf("resolve HEAD: %w", err)
	}

	// --abbrev-ref prints the literal string "HEAD" when detached.
	branchOut, err := outputGit(ctx, path, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return Worktree{}, fmt.Errorf("resolve branch: %w", err)
	}
	branch := strings.TrimSpace(string(branchOut))
	if branch == "HEAD" {
		branch = ""
	}

	subject, err := outputGit(ctx, path, "log", "-1", "--format=%s")
	if err != nil {
		return Worktree{}, fmt.Errorf("last commit subject: %w", err)
	}

	ctOut, err := outputGit(ctx, path, "log", "-1", "--format=%ct")
	if err != nil {
		return Worktree{}, fmt.Errorf("last commit time: %w", err)
	}
	timestamp, err := strconv.ParseInt(strings.TrimSpace(string(ctOut)), 10, 64)
	if err != nil {
		timestamp = 0
	}

	return Worktree{
		Path:   path,
		Name:   filepath.Base(path),
		IsMain: isMain,
		Head: HeadInfo{
			Branch:        branch,
			CommitSHA:     strings.TrimSpace(string(sha)),
			CommitMessage: strings.TrimSpace(string(subject)),
		},
		LastCommit: timestamp,
	}, nil
}

// Status returns the porcelain status counters for one worktree.
func Status(ctx context.Context, path string) (gitparse.WorktreeStatus, error) {
	out, err := outputGit(ctx, path, "status", "--porcelain")
	if err != nil {
		return gitparse.WorktreeStatus{}, fmt.Errorf("status: %w", err)
	}
	return gitparse.ParseStatus(string(out)), nil
}

// AddWorktree creates a worktree in the repository at repoPath and
// returns its loaded info.
func AddWorktree(ctx context.Context, repoPath string, opts AddOptions) (*Worktree, error) {
	args := []string{"worktree", "add"}
	if opts.NewBranch != "" {
		args = append(args, "-b", opts.NewBranch)
	}
	if opts.Detach {
		args = append(args, "--detach")
	}
	args = append(args, opts.Path)
	if opts.CommitIsh != "" {
		args = append(args, opts.CommitIsh)
	}

	if err := runGit(ctx, repoPath, args...); err != nil {
		return nil, fmt.Errorf("create worktree: %w", err)
	}

	wt, err := buildWorktree(ctx, opts.Path, false)
	if err != nil {
		return nil, fmt.Errorf("load new worktree: %w", err)
	}
	return &wt, nil
}

// RemoveWorktree removes the worktree at wtPath from the repository at
// repoPath. Without force, git refuses to remove a dirty worktree.
func RemoveWorktree(ctx context.Context, repoPath, wtPath string, force bool) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, wtPath)

	if err := runGit(ctx, repoPath, args...); err != nil {
		return fmt.Errorf("remove worktree: %w", err)
	}
	return nil
}

// PruneDryRun reports what [PruneWorktrees] would remove without
// touching anything.
func PruneDryRun(ctx context.Context, repoPath string) (*PruneResult, error) {
	out, err := outputGit(ctx, repoPath, "worktree", "prune", "--dry-run")
	if err != nil {
		return nil, fmt.Errorf("prune dry run: %w", err)
	}

	var messages []string
	for _, line := range strings.Split(string(out), "\n") {
		if line != "" {
			messages = append(messages, line)
		}
	}

	return &PruneResult{PrunedCount: len(messages), Messages: messages}, nil
}

// PruneWorktrees drops stale worktree bookkeeping. A dry run first
// collects what will be removed so the count and messages can be
// reported alongside the real prune.
func PruneWorktrees(ctx context.Context, repoPath string) (*PruneResult, error) {
	result, err := PruneDryRun(ctx, repoPath)
	if err != nil {
		return nil, err
	}

	if err := runGit(ctx, repoPath, "worktree", "prune"); err != nil {
		return nil, fmt.Errorf("prune worktrees: %w", err)
	}

	return result, nil
}
