package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/output"
	"github.com/grovekit/grove/internal/ui/prompt"
)

func newPruneCmd() *cobra.Command {
	var dryRun bool
	var force bool

	cmd := &cobra.Command{
		Use:     "prune",
		Short:   "Prune stale worktree bookkeeping",
		GroupID: GroupManage,
		Args:    cobra.NoArgs,
		Long: `Remove stale worktree bookkeeping from the repository.

This cleans up administrative entries for worktrees whose directories
no longer exist, for example after deleting one manually instead of
with 'grove remove'. Shows what would be pruned and asks first.`,
		Example: `  grove prune --dry-run  # only show what would be pruned
  grove prune --force    # prune without asking`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			repoPath, err := git.MainRepoPath(ctx, workDir)
			if err != nil {
				return err
			}

			dry, err := git.PruneDryRun(ctx, repoPath)
			if err != nil {
				return err
			}

			if dry.PrunedCount == 0 {
				out.Println("Nothing to prune")
				return nil
			}

			for _, msg := range dry.Messages {
				out.Println(msg)
			}

			if dryRun {
				return nil
			}

			if !force {
				if !stdinIsTTY() {
					return fmt.Errorf("refusing to prune without confirmation (use --force)")
				}
				result, err := prompt.Confirm(fmt.Sprintf("Prune %d worktree(s)?", dry.PrunedCount))
				if err != nil {
					return err
				}
				if result.Cancelled || !result.Confirmed {
					out.Println("Cancelled")
					return nil
				}
			}

			result, err := git.PruneWorktrees(ctx, repoPath)
			if err != nil {
				return err
			}

			out.Printf("Pruned %d worktree(s)\n", result.PrunedCount)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Only show what would be pruned")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Prune without confirmation")

	return cmd
}
