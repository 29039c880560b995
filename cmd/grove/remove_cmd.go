package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/config"
	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/history"
	"github.com/grovekit/grove/internal/log"
	"github.com/grovekit/grove/internal/output"
	"github.com/grovekit/grove/internal/ui/prompt"
)

func newRemoveCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "remove [name]",
		Aliases: []string{"rm"},
		Short:   "Remove a worktree",
		GroupID: GroupManage,
		Args:    cobra.MaximumNArgs(1),
		Long: `Remove a worktree of the current repository.

The name is fuzzy-matched against worktree names and branches. With no
argument and a terminal, shows an interactive picker. The main worktree
can never be removed.

Worktrees with uncommitted changes are refused unless --force is given.`,
		Example: `  grove remove api-fix     # fuzzy matched
  grove remove             # interactive picker
  grove remove api-fix -f  # remove even if dirty`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			repoPath, err := git.MainRepoPath(ctx, workDir)
			if err != nil {
				return err
			}

			worktrees, warnings, err := git.ListWorktrees(ctx, repoPath)
			if err != nil {
				return err
			}
			for _, w := range warnings {
				l.Printf("Warning: %s: %v\n", w.Path, w.Err)
			}

			historyPath, err := config.HistoryPath()
			if err != nil {
				return err
			}

			var target *worktreeCandidate
			if len(args) > 0 {
				target, err = matchWorktree(repoCandidates(worktrees), args[0])
				if err != nil {
					return err
				}
			} else {
				if !stdinIsTTY() {
					return fmt.Errorf("worktree name required")
				}

				var removable []worktreeCandidate
				for _, c := range repoCandidates(worktrees) {
					if !c.Worktree.IsMain {
						removable = append(removable, c)
					}
				}
				if len(removable) == 0 {
					out.Println("No removable worktrees")
					return nil
				}

				hist, err := history.Load(historyPath)
				if err != nil {
					hist = &history.History{}
				}
				target, err = pickWorktree("Remove which worktree?", removable, hist)
				if err != nil {
					return err
				}
				if target == nil {
					out.Println("Cancelled")
					return nil
				}
			}

			if !force {
				if !stdinIsTTY() {
					return fmt.Errorf("refusing to remove without confirmation (use --force)")
				}
				result, err := prompt.Confirm(fmt.Sprintf("Remove worktree %s (%s)?", target.Worktree.Name, target.Worktree.Path))
				if err != nil {
					return err
				}
				if result.Cancelled || !result.Confirmed {
					out.Println("Cancelled")
					return nil
				}
			}

			return runRemove(ctx, repoPath, historyPath, target.Worktree, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Remove even if the worktree is dirty")

	cmd.ValidArgsFunction = completeWorktreeNames

	return cmd
}

func runRemove(ctx context.Context, repoPath, historyPath string, wt git.Worktree, force bool) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	if wt.IsMain {
		return fmt.Errorf("cannot remove the main worktree")
	}

	if !force {
		status, err := git.Status(ctx, wt.Path)
		if err == nil && !status.IsClean {
			return fmt.Errorf("worktree %s has uncommitted changes (use --force to remove anyway)", wt.Name)
		}
	}

	if err := git.RemoveWorktree(ctx, repoPath, wt.Path, force); err != nil {
		return err
	}

	// Scrub the removed worktree from the access history.
	hist, err := history.Load(historyPath)
	if err == nil && hist.RemoveByPath(wt.Path) {
		if err := hist.Save(historyPath); err != nil {
			l.Printf("Warning: failed to save history: %v\n", err)
		}
	}

	out.Printf("Removed worktree %s\n", wt.Name)
	return nil
}
