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

func newBranchesCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:     "branches [path]",
		Short:   "List branches of a repository",
		GroupID: GroupInspect,
		Args:    cobra.MaximumNArgs(1),
		Long: `List the local and remote-tracking branches of a repository, local
branches first. Branches checked out in a worktree are marked.`,
		Example: `  grove branches
  grove branches ../api --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var pathArg string
			if len(args) > 0 {
				pathArg = args[0]
			}
			return runBranches(cmd.Context(), workDir, pathArg, jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

func runBranches(ctx context.Context, workDir, pathArg string, jsonOut bool) error {
	out := output.FromContext(ctx)

	repoPath, err := mainRepo(ctx, workDir, pathArg)
	if err != nil {
		return err
	}

	branches, err := git.ListBranches(ctx, repoPath)
	if err != nil {
		return err
	}

	if jsonOut {
		if branches == nil {
			branches = []git.BranchInfo{}
		}
		enc := json.NewEncoder(out.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(branches)
	}

	if len(branches) == 0 {
		out.Println("No branches found")
		return nil
	}

	rows := make([][]string, len(branches))
	for i, b := range branches {
		rows[i] = static.BranchRow(b)
	}

	fmt.Fprintln(colorWriter(out.Writer()), static.RenderTable(static.BranchHeaders(), rows))
	return nil
}
