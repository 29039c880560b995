package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/config"
	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/log"
	"github.com/grovekit/grove/internal/output"
	"github.com/grovekit/grove/internal/registry"
	"github.com/grovekit/grove/internal/ui/static"
)

type listOptions struct {
	json     bool
	global   bool
	noStatus bool
}

func newListCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List worktrees",
		GroupID: GroupInspect,
		Args:    cobra.NoArgs,
		Long: `List the worktrees of the current repository.

Each row shows the worktree name, checked-out branch, HEAD commit and
subject, the age of the last commit and a dirty/clean summary.

With --global, lists worktrees across every registered repository
(see 'grove repos add').`,
		Example: `  grove list              # worktrees of the current repo
  grove list --global      # worktrees of all registered repos
  grove list --no-status   # skip status collection (faster)
  grove list --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			registryPath, err := config.RegistryPath()
			if err != nil && opts.global {
				return fmt.Errorf("locate registry: %w", err)
			}
			return runList(cmd.Context(), workDir, registryPath, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.global, "global", "g", false, "List worktrees of all registered repositories")
	cmd.Flags().BoolVar(&opts.noStatus, "no-status", false, "Skip per-worktree status collection")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output as JSON")

	return cmd
}

// listEntry is one row of list output. Repo qualifies the worktree when
// listing across repositories.
type listEntry struct {
	Repo string `json:"repo"`
	git.Worktree
}

func runList(ctx context.Context, workDir, registryPath string, opts listOptions) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	type repoRef struct {
		name string
		path string
	}
	var repos []repoRef

	if opts.global {
		reg, err := registry.Load(registryPath)
		if err != nil {
			return err
		}
		if len(reg.Repos) == 0 {
			out.Println("No repositories registered (use 'grove repos add')")
			return nil
		}
		for _, r := range reg.Repos {
			repos = append(repos, repoRef{name: r.Name, path: r.Path})
		}
	} else {
		repoPath, err := git.MainRepoPath(ctx, workDir)
		if err != nil {
			return err
		}
		repos = append(repos, repoRef{name: git.RepoName(repoPath), path: repoPath})
	}

	entries := make([]listEntry, 0)
	for _, repo := range repos {
		worktrees, warnings, err := git.ListWorktrees(ctx, repo.path)
		if err != nil {
			if !opts.global {
				return err
			}
			l.Printf("Warning: %s: %v\n", repo.name, err)
			continue
		}
		for _, w := range warnings {
			l.Printf("Warning: %s: %v\n", w.Path, w.Err)
		}
		if !opts.noStatus {
			for _, w := range git.AttachStatuses(ctx, worktrees) {
				l.Printf("Warning: %s: %v\n", w.Path, w.Err)
			}
		}
		for _, wt := range worktrees {
			entries = append(entries, listEntry{Repo: repo.name, Worktree: wt})
		}
	}

	if opts.global {
		// Per-repo listings are already newest-first; keep that
		// ordering across repos too.
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].LastCommit > entries[j].LastCommit
		})
	}

	if opts.json {
		enc := json.NewEncoder(out.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		out.Println("No worktrees found")
		return nil
	}

	headers := static.WorktreeHeaders(!opts.noStatus)
	if opts.global {
		headers = append([]string{"REPO"}, headers...)
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		row := static.WorktreeRow(e.Worktree, !opts.noStatus)
		if opts.global {
			row = append([]string{e.Repo}, row...)
		}
		rows = append(rows, row)
	}

	fmt.Fprintln(colorWriter(out.Writer()), static.RenderTable(headers, rows))
	return nil
}
