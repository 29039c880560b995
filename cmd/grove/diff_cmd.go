package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/gitparse"
	"github.com/grovekit/grove/internal/output"
	"github.com/grovekit/grove/internal/ui/static"
	"github.com/grovekit/grove/internal/ui/styles"
)

type diffOptions struct {
	json   bool
	stat   bool
	staged bool
}

func newDiffCmd() *cobra.Command {
	var opts diffOptions

	cmd := &cobra.Command{
		Use:     "diff [path]",
		Short:   "Show uncommitted changes of a worktree",
		GroupID: GroupInspect,
		Args:    cobra.MaximumNArgs(1),
		Long: `Show the uncommitted changes of a worktree, split into staged and
unstaged sections. Untracked files are listed as new files.

With --staged, only the index is shown.`,
		Example: `  grove diff                # all uncommitted changes
  grove diff --staged       # only what's staged
  grove diff --stat         # per-file change counts
  grove diff ../api-fix --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var pathArg string
			if len(args) > 0 {
				pathArg = args[0]
			}
			return runDiff(cmd.Context(), workDir, pathArg, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.staged, "staged", false, "Show only staged changes")
	cmd.Flags().BoolVar(&opts.stat, "stat", false, "Show per-file stats instead of the full diff")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output as JSON")

	return cmd
}

func runDiff(ctx context.Context, workDir, pathArg string, opts diffOptions) error {
	out := output.FromContext(ctx)

	root, err := worktreeRoot(ctx, workDir, pathArg)
	if err != nil {
		return err
	}

	diff, err := git.GetWorkingDiff(ctx, root)
	if err != nil {
		return err
	}

	if opts.staged {
		diff.Unstaged = []gitparse.FileDiff{}
		diff.Stats = gitparse.ComputeStats(diff.Staged)
	}

	if opts.json {
		enc := json.NewEncoder(out.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(diff)
	}

	if len(diff.Staged) == 0 && len(diff.Unstaged) == 0 {
		out.Println("No changes")
		return nil
	}

	w := colorWriter(out.Writer())

	if opts.stat {
		files := append(append([]gitparse.FileDiff{}, diff.Staged...), diff.Unstaged...)
		fmt.Fprint(w, static.RenderFileStats(files))
		return nil
	}

	if len(diff.Staged) > 0 {
		fmt.Fprintln(w, styles.Bold.Render("Staged changes:"))
		fmt.Fprint(w, static.RenderDiff(diff.Staged))
	}
	if len(diff.Unstaged) > 0 {
		if len(diff.Staged) > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, styles.Bold.Render("Unstaged changes:"))
		fmt.Fprint(w, static.RenderDiff(diff.Unstaged))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, static.RenderDiffStats(diff.Stats))
	return nil
}
