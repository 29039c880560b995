package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/config"
	"github.com/grovekit/grove/internal/format"
	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/gitparse"
	"github.com/grovekit/grove/internal/output"
	"github.com/grovekit/grove/internal/ui/styles"
)

type logOptions struct {
	json  bool
	limit int
	skip  int
}

func newLogCmd() *cobra.Command {
	var opts logOptions

	cmd := &cobra.Command{
		Use:     "log [path]",
		Short:   "Show recent commits of a worktree",
		GroupID: GroupInspect,
		Args:    cobra.MaximumNArgs(1),
		Long: `Show the recent commit history of a worktree.

The number of commits defaults to log_limit from the config file
(20 unless configured). Use --skip for simple paging.`,
		Example: `  grove log                # last commits of the current worktree
  grove log -n 5            # just the last 5
  grove log -n 5 --skip 5   # the 5 before that
  grove log ../api-fix --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var pathArg string
			if len(args) > 0 {
				pathArg = args[0]
			}
			return runLog(cmd.Context(), cfg, workDir, pathArg, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "Number of commits to show (default from config)")
	cmd.Flags().IntVar(&opts.skip, "skip", 0, "Skip this many commits before listing")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output as JSON")

	return cmd
}

func runLog(ctx context.Context, cfg *config.Config, workDir, pathArg string, opts logOptions) error {
	out := output.FromContext(ctx)

	root, err := worktreeRoot(ctx, workDir, pathArg)
	if err != nil {
		return err
	}

	limit := opts.limit
	if limit <= 0 {
		limit = cfg.LogLimit
	}

	commits, err := git.CommitHistory(ctx, root, limit, opts.skip)
	if err != nil {
		return err
	}

	if opts.json {
		if commits == nil {
			commits = []gitparse.CommitInfo{}
		}
		enc := json.NewEncoder(out.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(commits)
	}

	if len(commits) == 0 {
		out.Println("No commits found")
		return nil
	}

	w := colorWriter(out.Writer())
	for _, c := range commits {
		age := format.RelativeTime(time.Unix(c.Timestamp, 0))
		fmt.Fprintf(w, "%s %s %s\n",
			styles.WarningStyle.Render(c.ShortHash),
			c.Summary,
			styles.MutedStyle.Render("("+c.AuthorName+", "+age+")"))
	}
	return nil
}
