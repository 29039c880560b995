package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/config"
	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/log"
	"github.com/grovekit/grove/internal/output"
	"github.com/grovekit/grove/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	cfg     *config.Config
	workDir string
)

// Command group IDs for organizing help output
const (
	GroupInspect = "inspect"
	GroupManage  = "manage"
	GroupSetup   = "setup"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "grove",
	Short: "Inspect and manage git worktrees",
	Long: `grove is a CLI tool for inspecting and managing git worktrees.

It lists worktrees with their head and dirty state, pages through commit
history, renders commit and working-tree diffs, and creates, removes and
prunes worktrees across one or many repositories.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Completion, help and config management work without git
		switch cmd.Name() {
		case "completion", "__complete", "help":
			return nil
		}
		for c := cmd; c != nil; c = c.Parent() {
			if c.Name() == "config" {
				return nil
			}
		}

		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		return git.CheckGit(cmd.Context())
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg
	styles.Init(cfg)

	// Get working directory
	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "grove: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Create logger (stderr for diagnostics)
	logger := log.New(os.Stderr, verbose, quiet)
	ctx = log.WithLogger(ctx, logger)

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'grove -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupInspect, Title: "Inspect Commands:"},
		&cobra.Group{ID: GroupManage, Title: "Manage Commands:"},
		&cobra.Group{ID: GroupSetup, Title: "Setup Commands:"},
	)

	// Inspect commands
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newBranchesCmd())

	// Manage commands
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newPruneCmd())
	rootCmd.AddCommand(newPathCmd())

	// Setup commands
	rootCmd.AddCommand(newReposCmd())
	rootCmd.AddCommand(newConfigCmd())
}
