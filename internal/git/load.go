package git

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// LoadWarning records a non-fatal failure while loading one worktree.
// The remaining worktrees are still returned.
type LoadWarning struct {
	Path string
	Err  error
}

// ListWorktrees returns all worktrees of the repository at repoPath,
// newest commit first. Head info is loaded in parallel; Status stays
// nil until [AttachStatuses]. Worktrees that fail to load are reported
// as warnings rather than failing the whole listing.
func ListWorktrees(ctx context.Context, repoPath string) ([]Worktree, []LoadWarning, error) {
	paths, err := listWorktreePaths(ctx, repoPath)
	if err != nil {
		return nil, nil, err
	}

	// Per-path results stored by index for stable ordering.
	type result struct {
		worktree Worktree
		warning  *LoadWarning
	}

	results := make([]result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8) // Bound concurrent git operations

	for i, path := range paths {
		g.Go(func() error {
			// Porcelain output lists the main worktree first.
			wt, err := buildWorktree(ctx, path, i == 0)
			if err != nil {
				results[i] = result{warning: &LoadWarning{Path: path, Err: err}}
				return nil // Never fail — warnings are non-fatal
			}
			results[i] = result{worktree: wt}
			return nil
		})
	}

	_ = g.Wait() // Always nil — goroutines collect errors as warnings

	var worktrees []Worktree
	var warnings []LoadWarning
	for _, r := range results {
		if r.warning != nil {
			warnings = append(warnings, *r.warning)
			continue
		}
		worktrees = append(worktrees, r.worktree)
	}

	sort.Slice(worktrees, func(i, j int) bool {
		return worktrees[i].LastCommit > worktrees[j].LastCommit
	})

	return worktrees, warnings, nil
}

// AttachStatuses populates Status on each worktree in place, in
// parallel. Worktrees whose status cannot be read keep a nil Status
// and are reported as warnings.
func AttachStatuses(ctx context.Context, worktrees []Worktree) []LoadWarning {
	warnings := make([]*LoadWarning, len(worktrees))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i := range worktrees {
		g.Go(func() error {
			status, err := Status(ctx, worktrees[i].Path)
			if err != nil {
				warnings[i] = &LoadWarning{Path: worktrees[i].Path, Err: err}
				return nil
			}
			worktrees[i].Status = &status
			return nil
		})
	}

	_ = g.Wait()

	var out []LoadWarning
	for _, w := range warnings {
		if w != nil {
			out = append(out, *w)
		}
	}
	return out
}
