package board

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/cli/styles"
	"github.com/thenoetrevino/quadro/internal/models"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the seed board",
		Long: `Print the columns and tasks of the board.

Examples:
  quadro board show

  # JSON output for scripts
  quadro board show --json
`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	formatter := &cli.OutputFormatter{
		JSON:   jsonOutput,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}

	cfg := cli.ConfigFromContext(cmd.Context())
	styles.Init(cfg.ColorScheme)

	out := NewBoardOutput(cfg.Board.Title, models.SeedBoard())
	if err := formatter.Success(out); err != nil {
		slog.Error("failed to write board", "error", err)
		return cli.WithExitCode(cli.ExitError, err)
	}
	return nil
}
