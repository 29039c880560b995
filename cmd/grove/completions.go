package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/config"
	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/registry"
)

// completeWorktreeNames offers the worktree names of the enclosing
// repository.
func completeWorktreeNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ctx := context.Background()

	repoPath, err := git.MainRepoPath(ctx, workDir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	worktrees, _, err := git.ListWorktrees(ctx, repoPath)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, wt := range worktrees {
		if strings.HasPrefix(wt.Name, toComplete) {
			matches = append(matches, wt.Name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completePathArg offers worktree names for `grove path`: the enclosing
// repository's worktrees when inside one, otherwise the worktrees of
// all registered repositories.
func completePathArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ctx := context.Background()

	if repoPath, err := git.MainRepoPath(ctx, workDir); err == nil {
		worktrees, _, err := git.ListWorktrees(ctx, repoPath)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var matches []string
		for _, wt := range worktrees {
			if strings.HasPrefix(wt.Name, toComplete) {
				matches = append(matches, wt.Name)
			}
		}
		return matches, cobra.ShellCompDirectiveNoFileComp
	}

	registryPath, err := config.RegistryPath()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	reg, err := registry.Load(registryPath)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, repo := range reg.Repos {
		worktrees, _, err := git.ListWorktrees(ctx, repo.Path)
		if err != nil {
			continue
		}
		for _, wt := range worktrees {
			if strings.HasPrefix(wt.Name, toComplete) {
				matches = append(matches, wt.Name)
			}
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeBranchNames offers the local branch names of the enclosing
// repository.
func completeBranchNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ctx := context.Background()

	repoPath, err := git.MainRepoPath(ctx, workDir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	branches, err := git.ListBranches(ctx, repoPath)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, b := range branches {
		if !b.IsRemote && strings.HasPrefix(b.Name, toComplete) {
			matches = append(matches, b.Name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeRepoNames offers the names of registered repositories.
func completeRepoNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	registryPath, err := config.RegistryPath()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	reg, err := registry.Load(registryPath)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, name := range reg.AllRepoNames() {
		if strings.HasPrefix(name, toComplete) {
			matches = append(matches, name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
