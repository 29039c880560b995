package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/config"
	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/output"
	"github.com/grovekit/grove/internal/registry"
	"github.com/grovekit/grove/internal/ui/static"
)

func newReposCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "repos",
		Short:   "Manage the repository registry",
		GroupID: GroupSetup,
		Long: `Manage the registry of repositories used by 'grove list --global' and
by 'grove path' outside a repository.

The registry lives at ~/.config/grove/repos.json.`,
	}

	cmd.AddCommand(newReposAddCmd())
	cmd.AddCommand(newReposRemoveCmd())
	cmd.AddCommand(newReposListCmd())

	return cmd
}

func newReposAddCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add [path]",
		Short: "Register a repository",
		Args:  cobra.MaximumNArgs(1),
		Long: `Register a repository. The path may be any directory inside it,
including a linked worktree; the main repository path is stored.`,
		Example: `  grove repos add                   # register the current repo
  grove repos add ~/code/api        # register another repo
  grove repos add . --name backend  # with a custom name`,
		RunE: func(cmd *cobra.Command, args []string) error {
			registryPath, err := config.RegistryPath()
			if err != nil {
				return err
			}
			var pathArg string
			if len(args) > 0 {
				pathArg = args[0]
			}
			return runReposAdd(cmd.Context(), workDir, registryPath, pathArg, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name (defaults to the directory name)")

	return cmd
}

func runReposAdd(ctx context.Context, workDir, registryPath, pathArg, name string) error {
	out := output.FromContext(ctx)

	repoPath, err := git.MainRepoPath(ctx, resolveDir(workDir, pathArg))
	if err != nil {
		return err
	}

	if name == "" {
		name = git.RepoName(repoPath)
	}

	reg, err := registry.Load(registryPath)
	if err != nil {
		return err
	}
	if err := reg.Add(registry.Repo{Name: name, Path: repoPath}); err != nil {
		return err
	}
	if err := reg.Save(registryPath); err != nil {
		return err
	}

	out.Printf("Registered %s (%s)\n", name, repoPath)
	return nil
}

func newReposRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <name-or-path>",
		Aliases: []string{"rm"},
		Short:   "Unregister a repository",
		Args:    cobra.ExactArgs(1),
		Long:    `Unregister a repository. The repository itself is not touched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			registryPath, err := config.RegistryPath()
			if err != nil {
				return err
			}
			return runReposRemove(cmd.Context(), registryPath, args[0])
		},
	}

	cmd.ValidArgsFunction = completeRepoNames

	return cmd
}

func runReposRemove(ctx context.Context, registryPath, nameOrPath string) error {
	out := output.FromContext(ctx)

	reg, err := registry.Load(registryPath)
	if err != nil {
		return err
	}
	if err := reg.Remove(nameOrPath); err != nil {
		return err
	}
	if err := reg.Save(registryPath); err != nil {
		return err
	}

	out.Printf("Unregistered %s\n", nameOrPath)
	return nil
}

func newReposListCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List registered repositories",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registryPath, err := config.RegistryPath()
			if err != nil {
				return err
			}
			return runReposList(cmd.Context(), registryPath, jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

func runReposList(ctx context.Context, registryPath string, jsonOut bool) error {
	out := output.FromContext(ctx)

	reg, err := registry.Load(registryPath)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(out.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(reg.Repos)
	}

	if len(reg.Repos) == 0 {
		out.Println("No repositories registered (use 'grove repos add')")
		return nil
	}

	rows := make([][]string, len(reg.Repos))
	for i, r := range reg.Repos {
		rows[i] = []string{r.Name, r.Path}
	}

	fmt.Fprintln(colorWriter(out.Writer()), static.RenderTable([]string{"NAME", "PATH"}, rows))
	return nil
}
