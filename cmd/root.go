// Package cmd defines the quadro command line
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/cli/board"
	"github.com/thenoetrevino/quadro/internal/config"
	"github.com/thenoetrevino/quadro/internal/launcher"
	"github.com/thenoetrevino/quadro/internal/logging"
)

// NewRootCmd builds the quadro command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quadro",
		Short: "Quadro - a drag-and-drop task board for the terminal",
		Long: `Quadro is a two-column task board for the terminal.

Run it without arguments to open the board, then drag cards between
"Requested" and "To Do" with the mouse. Press ? for help.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context(), cli.ConfigFromContext(cmd.Context()))
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default $XDG_CONFIG_HOME/quadro/config.yaml)")

	rootCmd.AddCommand(board.BoardCmd())

	return rootCmd
}

// setup loads the configuration and starts logging before any command runs
func setup(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cli.WithExitCode(cli.ExitUsage, fmt.Errorf("failed to load configuration: %w", err))
	}

	if err := logging.Init(cfg.SlogLevel()); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
	return nil
}

// Execute runs the command line
func Execute() error {
	return NewRootCmd().Execute()
}
