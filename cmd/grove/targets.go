package main

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/history"
	"github.com/grovekit/grove/internal/log"
	"github.com/grovekit/grove/internal/registry"
	"github.com/grovekit/grove/internal/ui/prompt"
)

// worktreeCandidate is one selectable worktree. RepoName is set when
// the candidates span multiple repositories.
type worktreeCandidate struct {
	RepoName string
	Worktree git.Worktree
}

func (c worktreeCandidate) label() string {
	name := c.Worktree.Name
	if c.RepoName != "" {
		name = c.RepoName + ":" + name
	}
	if b := c.Worktree.Head.Branch; b != "" && b != c.Worktree.Name {
		return fmt.Sprintf("%s (%s)", name, b)
	}
	return name
}

// matchKey is what fuzzy matching runs against: worktree name plus
// branch, so either one finds the worktree.
func (c worktreeCandidate) matchKey() string {
	return c.Worktree.Name + " " + c.Worktree.Head.Branch
}

// matchWorktree resolves name against candidates: exact worktree name
// first, then exact branch name, then fuzzy matching over both. Exact
// matches in more than one repository are ambiguous, as are fuzzy ties.
func matchWorktree(candidates []worktreeCandidate, name string) (*worktreeCandidate, error) {
	var exact []*worktreeCandidate
	for i := range candidates {
		if candidates[i].Worktree.Name == name {
			exact = append(exact, &candidates[i])
		}
	}
	if len(exact) == 0 {
		for i := range candidates {
			if candidates[i].Worktree.Head.Branch == name {
				exact = append(exact, &candidates[i])
			}
		}
	}
	if len(exact) == 1 {
		return exact[0], nil
	}
	if len(exact) > 1 {
		return nil, ambiguousMatchError(name, exact)
	}

	keys := make([]string, len(candidates))
	for i, c := range candidates {
		keys[i] = c.matchKey()
	}
	matches := fuzzy.Find(name, keys)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no worktree matching %q", name)
	}
	if len(matches) > 1 && matches[1].Score == matches[0].Score {
		var tied []*worktreeCandidate
		for _, m := range matches {
			if m.Score != matches[0].Score {
				break
			}
			tied = append(tied, &candidates[m.Index])
		}
		return nil, ambiguousMatchError(name, tied)
	}
	return &candidates[matches[0].Index], nil
}

func ambiguousMatchError(name string, cands []*worktreeCandidate) error {
	labels := make([]string, len(cands))
	for i, c := range cands {
		labels[i] = c.label()
	}
	return fmt.Errorf("%q matches multiple worktrees: %s", name, strings.Join(labels, ", "))
}

// pickWorktree shows an interactive picker over candidates, most
// recently accessed first, then alphabetical. A cancelled picker
// returns (nil, nil).
func pickWorktree(promptText string, candidates []worktreeCandidate, hist *history.History) (*worktreeCandidate, error) {
	if hist == nil {
		hist = &history.History{}
	}

	sorted := make([]worktreeCandidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		var it, jt time.Time
		if e := hist.FindByPath(sorted[i].Worktree.Path); e != nil {
			it = e.LastAccess
		}
		if e := hist.FindByPath(sorted[j].Worktree.Path); e != nil {
			jt = e.LastAccess
		}
		if !it.Equal(jt) {
			return it.After(jt)
		}
		return sorted[i].label() < sorted[j].label()
	})

	labels := make([]string, len(sorted))
	for i, c := range sorted {
		labels[i] = c.label()
	}

	result, err := prompt.Select(promptText, labels)
	if err != nil {
		return nil, err
	}
	if result.Cancelled {
		return nil, nil
	}
	return &sorted[result.Index], nil
}

// repoCandidates wraps the worktrees of a single repository.
func repoCandidates(worktrees []git.Worktree) []worktreeCandidate {
	candidates := make([]worktreeCandidate, len(worktrees))
	for i, wt := range worktrees {
		candidates[i] = worktreeCandidate{Worktree: wt}
	}
	return candidates
}

// registeredCandidates loads the worktrees of every registered
// repository. Repositories that fail to load are skipped.
func registeredCandidates(ctx context.Context, reg *registry.Registry) []worktreeCandidate {
	l := log.FromContext(ctx)

	var candidates []worktreeCandidate
	for _, repo := range reg.Repos {
		worktrees, warnings, err := git.ListWorktrees(ctx, repo.Path)
		if err != nil {
			l.Debug("skipping repo", "repo", repo.Name, "error", err)
			continue
		}
		for _, w := range warnings {
			l.Debug("skipping worktree", "path", w.Path, "error", w.Err)
		}
		for _, wt := range worktrees {
			candidates = append(candidates, worktreeCandidate{RepoName: repo.Name, Worktree: wt})
		}
	}
	return candidates
}
