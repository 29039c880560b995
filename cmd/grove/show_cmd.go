package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/output"
	"github.com/grovekit/grove/internal/ui/static"
)

type showOptions struct {
	json bool
	stat bool
}

func newShowCmd() *cobra.Command {
	var opts showOptions

	cmd := &cobra.Command{
		Use:     "show <commit> [path]",
		Short:   "Show a commit with its diff",
		GroupID: GroupInspect,
		Args:    cobra.RangeArgs(1, 2),
		Long: `Show a single commit: header, message and the diff against its
first parent.

The commit may be anything git can resolve (hash, branch, tag, HEAD~2).
Renames are detected so moved files show as one entry.`,
		Example: `  grove show HEAD           # the latest commit
  grove show abc1234 --stat # per-file change counts only
  grove show v1.2.0 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var pathArg string
			if len(args) > 1 {
				pathArg = args[1]
			}
			return runShow(cmd.Context(), workDir, args[0], pathArg, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.stat, "stat", false, "Show per-file stats instead of the full diff")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output as JSON")

	return cmd
}

func runShow(ctx context.Context, workDir, commitIsh, pathArg string, opts showOptions) error {
	out := output.FromContext(ctx)

	root, err := worktreeRoot(ctx, workDir, pathArg)
	if err != nil {
		return err
	}

	diff, err := git.GetCommitDiff(ctx, root, commitIsh)
	if err != nil {
		return err
	}

	if opts.json {
		enc := json.NewEncoder(out.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(diff)
	}

	w := colorWriter(out.Writer())
	fmt.Fprint(w, static.RenderCommit(diff.Commit))

	if len(diff.Files) == 0 {
		return nil
	}
	fmt.Fprintln(w)

	if opts.stat {
		fmt.Fprint(w, static.RenderFileStats(diff.Files))
		return nil
	}

	fmt.Fprint(w, static.RenderDiff(diff.Files))
	fmt.Fprintln(w)
	fmt.Fprintln(w, static.RenderDiffStats(diff.Stats))
	return nil
}
