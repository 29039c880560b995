package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/output"
	"github.com/grovekit/grove/internal/ui/styles"
)

func newStatusCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:     "status [path]",
		Short:   "Show the status of a worktree",
		GroupID: GroupInspect,
		Args:    cobra.MaximumNArgs(1),
		Long: `Show a summary of uncommitted changes in a worktree.

Counts staged, modified, untracked and conflicted files. The path may
be any directory inside the worktree; it defaults to the current
directory.`,
		Example: `  grove status             # status of the current worktree
  grove status ../api-fix   # status of another worktree
  grove status --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var pathArg string
			if len(args) > 0 {
				pathArg = args[0]
			}
			return runStatus(cmd.Context(), workDir, pathArg, jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

func runStatus(ctx context.Context, workDir, pathArg string, jsonOut bool) error {
	out := output.FromContext(ctx)

	root, err := worktreeRoot(ctx, workDir, pathArg)
	if err != nil {
		return err
	}

	status, err := git.Status(ctx, root)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(out.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	}

	w := colorWriter(out.Writer())

	if status.IsClean {
		fmt.Fprintf(w, "%s clean\n", styles.CleanSymbol())
		return nil
	}
	fmt.Fprintf(w, "%s uncommitted changes\n", styles.DirtySymbol())

	counters := []struct {
		label string
		count int
		style lipgloss.Style
	}{
		{"staged", status.Staged, styles.SuccessStyle},
		{"modified", status.Modified, styles.WarningStyle},
		{"untracked", status.Untracked, styles.InfoStyle},
		{"conflicted", status.Conflicted, styles.ErrorStyle},
	}
	for _, c := range counters {
		if c.count == 0 {
			continue
		}
		fmt.Fprintf(w, "%-11s %s\n", c.label, c.style.Render(strconv.Itoa(c.count)))
	}
	return nil
}
