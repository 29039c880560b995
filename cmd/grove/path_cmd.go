package main

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/config"
	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/history"
	"github.com/grovekit/grove/internal/log"
	"github.com/grovekit/grove/internal/output"
	"github.com/grovekit/grove/internal/registry"
)

func newPathCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "path [name]",
		Short:   "Print a worktree path for shell scripting",
		GroupID: GroupManage,
		Args:    cobra.MaximumNArgs(1),
		Long: `Print the path of a worktree.

Use with shell command substitution: cd $(grove path api-fix)

The name is fuzzy-matched against worktree names and branches. Inside a
repository only its worktrees are searched; outside, the worktrees of
all registered repositories are. With no argument, prints the most
recently accessed worktree.`,
		Example: `  cd $(grove path)      # most recently accessed worktree
  cd $(grove path api)  # fuzzy matched
  grove path api --copy # copy the path to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			historyPath, err := config.HistoryPath()
			if err != nil {
				return err
			}
			registryPath, err := config.RegistryPath()
			if err != nil {
				return err
			}
			var name string
			if len(args) > 0 {
				name = args[0]
			}
			return runPath(cmd.Context(), workDir, historyPath, registryPath, name, copyToClipboard)
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the path to the clipboard")

	cmd.ValidArgsFunction = completePathArg

	return cmd
}

func runPath(ctx context.Context, workDir, historyPath, registryPath, name string, copyToClipboard bool) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	var targetPath, repoName, branch string

	if name == "" {
		hist, err := history.Load(historyPath)
		if err != nil {
			return err
		}
		if removed := hist.RemoveStale(); removed > 0 {
			if err := hist.Save(historyPath); err != nil {
				l.Printf("Warning: failed to save history after cleanup: %v\n", err)
			}
		}
		if len(hist.Entries) == 0 {
			return fmt.Errorf("no worktree history (use 'grove path <name>' first)")
		}
		hist.SortByRecency()
		entry := hist.Entries[0]
		targetPath, repoName, branch = entry.Path, entry.RepoName, entry.Branch
	} else {
		var candidates []worktreeCandidate
		var enclosingRepo string

		if repoPath, err := git.MainRepoPath(ctx, workDir); err == nil {
			worktrees, warnings, err := git.ListWorktrees(ctx, repoPath)
			if err != nil {
				return err
			}
			for _, w := range warnings {
				l.Printf("Warning: %s: %v\n", w.Path, w.Err)
			}
			candidates = repoCandidates(worktrees)
			enclosingRepo = git.RepoName(repoPath)
		} else {
			reg, err := registry.Load(registryPath)
			if err != nil {
				return err
			}
			if len(reg.Repos) == 0 {
				return fmt.Errorf("not inside a repository and none registered (use 'grove repos add')")
			}
			candidates = registeredCandidates(ctx, reg)
		}

		if len(candidates) == 0 {
			return fmt.Errorf("no worktrees found")
		}

		target, err := matchWorktree(candidates, name)
		if err != nil {
			return err
		}
		targetPath = target.Worktree.Path
		branch = target.Worktree.Head.Branch
		repoName = target.RepoName
		if repoName == "" {
			repoName = enclosingRepo
		}
	}

	if err := history.RecordAccess(targetPath, repoName, branch, historyPath); err != nil {
		l.Printf("Warning: failed to record history: %v\n", err)
	}

	if copyToClipboard {
		if err := clipboard.WriteAll(targetPath); err != nil {
			l.Printf("Warning: failed to copy to clipboard: %v\n", err)
		}
	}

	out.Println(targetPath)
	return nil
}
