package main

import (
	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/config"
	"github.com/grovekit/grove/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage grove configuration",
		GroupID: GroupSetup,
		Long:    `Manage the grove config file at ~/.config/grove/config.toml.`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default config file",
		Args:  cobra.NoArgs,
		Long: `Create a commented default config file. Refuses to overwrite an
existing file unless --force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			path, err := config.Init(force)
			if err != nil {
				return err
			}

			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			path, err := config.Path()
			if err != nil {
				return err
			}

			out.Println(path)
			return nil
		},
	}
}
