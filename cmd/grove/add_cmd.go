package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/config"
	"github.com/grovekit/grove/internal/format"
	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/history"
	"github.com/grovekit/grove/internal/log"
	"github.com/grovekit/grove/internal/output"
	"github.com/grovekit/grove/internal/ui/prompt"
)

type addOptions struct {
	base   string
	path   string
	detach bool
}

func newAddCmd() *cobra.Command {
	var opts addOptions

	cmd := &cobra.Command{
		Use:     "add [branch]",
		Short:   "Create a new worktree",
		GroupID: GroupManage,
		Args:    cobra.MaximumNArgs(1),
		Long: `Create a worktree for a branch.

If the branch exists it is checked out; otherwise a new branch is
created from --base (HEAD when omitted). The worktree path defaults to
<worktree_dir>/<repo>-<branch> with a numeric suffix on collisions.

With no argument and a terminal, prompts for the branch name.`,
		Example: `  grove add feature-x                  # new branch and worktree
  grove add feature-x --base main      # branch off main
  grove add hotfix --path /tmp/hotfix  # explicit location
  grove add v1.2.0 --detach            # detached checkout of a tag`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var branch string
			if len(args) > 0 {
				branch = args[0]
			} else {
				if !stdinIsTTY() {
					return fmt.Errorf("branch name required")
				}
				result, err := prompt.TextInput("Branch name", "feature-x")
				if err != nil {
					return err
				}
				if result.Cancelled || result.Value == "" {
					output.FromContext(ctx).Println("Cancelled")
					return nil
				}
				branch = result.Value
			}

			historyPath, err := config.HistoryPath()
			if err != nil {
				return err
			}

			return runAdd(ctx, cfg, workDir, historyPath, branch, opts)
		},
	}

	cmd.Flags().StringVar(&opts.base, "base", "", "Commit-ish the new branch starts from (default HEAD)")
	cmd.Flags().StringVar(&opts.path, "path", "", "Where to create the worktree")
	cmd.Flags().BoolVar(&opts.detach, "detach", false, "Check out a detached HEAD instead of a branch")

	cmd.ValidArgsFunction = completeBranchNames
	cmd.RegisterFlagCompletionFunc("base", completeBranchNames)

	return cmd
}

func runAdd(ctx context.Context, cfg *config.Config, workDir, historyPath, branch string, opts addOptions) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	repoPath, err := git.MainRepoPath(ctx, workDir)
	if err != nil {
		return err
	}
	repoName := git.RepoName(repoPath)

	target := opts.path
	if target == "" {
		name := format.FormatWorktreeName(format.DefaultWorktreeFormat, format.FormatParams{
			RepoName:   repoName,
			BranchName: branch,
			Origin:     repoName,
		})
		target = format.UniqueWorktreePath(filepath.Join(cfg.WorktreeDir, name), func(p string) bool {
			_, err := os.Stat(p)
			return err == nil
		})
	} else if !filepath.IsAbs(target) {
		target = filepath.Join(workDir, target)
	}

	addOpts := git.AddOptions{Path: target, Detach: opts.detach}
	switch {
	case opts.detach:
		addOpts.CommitIsh = branch
		if opts.base != "" {
			addOpts.CommitIsh = opts.base
		}
	case git.BranchExists(ctx, repoPath, branch):
		if opts.base != "" {
			return fmt.Errorf("branch %q already exists; --base only applies to new branches", branch)
		}
		l.Printf("Branch %s exists, checking it out\n", branch)
		addOpts.CommitIsh = branch
	default:
		addOpts.NewBranch = branch
		addOpts.CommitIsh = opts.base
	}

	wt, err := git.AddWorktree(ctx, repoPath, addOpts)
	if err != nil {
		return err
	}

	if err := history.RecordAccess(wt.Path, repoName, wt.Head.Branch, historyPath); err != nil {
		l.Printf("Warning: failed to record history: %v\n", err)
	}

	out.Printf("Created worktree %s at %s\n", wt.Name, wt.Path)
	return nil
}
