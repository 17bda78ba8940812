package board

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/cli/styles"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/reorder"
	"github.com/thenoetrevino/quadro/internal/store"
)

// MoveCmd returns the board move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a task and print the resulting board",
		Long: `Move the task at --from to --to on the seed board and print the result.

Locations are written column:index, with indices counted from 0.
Within one column the destination index is a position in the column
after the task has been taken out. Leaving out --to is the same as
dropping the task outside every column: nothing changes.

Examples:
  # Move the second task into the empty To Do column
  quadro board move --from requested:1 --to toDo:0

  # Reorder within a column
  quadro board move --from requested:0 --to requested:2

  # JSON output for scripts
  quadro board move --from requested:1 --to toDo:0 --json

  # Quiet mode prints only the moved task ID
  quadro board move --from requested:1 --to toDo:0 --quiet
`,
		Args: cobra.NoArgs,
		RunE: runMove,
	}

	// Required flags
	cmd.Flags().String("from", "", "Source location, column:index (required)")
	if err := cmd.MarkFlagRequired("from"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("to", "", "Destination location, column:index")

	// Script-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (task ID only)")

	return cmd
}

// MoveOutput is the result of a move
type MoveOutput struct {
	TaskID string           `json:"task_id"`
	From   models.Location  `json:"from"`
	To     *models.Location `json:"to"`
	Moves  int              `json:"moves"`
	Board  BoardOutput      `json:"board"`
}

// GetID returns the moved task, printed in quiet mode
func (o MoveOutput) GetID() string {
	return o.TaskID
}

// String renders the move for humans
func (o MoveOutput) String() string {
	var summary string
	if o.To == nil {
		summary = styles.WarningStyle.Render(fmt.Sprintf("drop cancelled: task %s stays at %s", o.TaskID, o.From))
	} else {
		summary = styles.SuccessStyle.Render(fmt.Sprintf("moved task %s: %s -> %s", o.TaskID, o.From, o.To))
	}
	return summary + "\n\n" + o.Board.String()
}

func runMove(cmd *cobra.Command, args []string) error {
	fromFlag, _ := cmd.Flags().GetString("from")
	toFlag, _ := cmd.Flags().GetString("to")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}

	cfg := cli.ConfigFromContext(cmd.Context())
	styles.Init(cfg.ColorScheme)

	result, err := parseResult(fromFlag, toFlag)
	if err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_LOCATION", err.Error(),
			"Use column:index, for example --from requested:0 --to toDo:0"); fmtErr != nil {
			slog.Error("failed to format error message", "error", fmtErr)
		}
		return cli.WithExitCode(cli.ExitUsage, err)
	}

	s := store.New(models.SeedBoard())

	if err := reorder.Validate(result, s.State()); err != nil {
		code, exit := "INVALID_MOVE", cli.ExitValidation
		if errors.Is(err, models.ErrColumnNotFound) {
			code, exit = "COLUMN_NOT_FOUND", cli.ExitNotFound
		}
		if fmtErr := formatter.ErrorWithSuggestion(code, err.Error(),
			"Run 'quadro board show' to see the columns and their tasks"); fmtErr != nil {
			slog.Error("failed to format error message", "error", fmtErr)
		}
		return cli.WithExitCode(exit, err)
	}

	// The gesture layer reports the ID of the card it tracked
	result.DraggableID = s.State().Column(result.Source.ColumnID).Items[result.Source.Index].ID

	store.NewBinding(s).OnMoveRequested(result)

	out := MoveOutput{
		TaskID: result.DraggableID,
		From:   result.Source,
		To:     result.Destination,
		Moves:  s.Moves(),
		Board:  NewBoardOutput(cfg.Board.Title, s.State()),
	}
	if err := formatter.Success(out); err != nil {
		slog.Error("failed to write move result", "error", err)
		return cli.WithExitCode(cli.ExitError, err)
	}
	return nil
}

// parseResult builds a drag result from the --from and --to flag values.
// An empty to leaves the destination nil.
func parseResult(from, to string) (models.DragResult, error) {
	src, err := cli.ParseLocation(from)
	if err != nil {
		return models.DragResult{}, fmt.Errorf("--from: %w", err)
	}

	result := models.DragResult{Source: src}
	if to == "" {
		return result, nil
	}

	dst, err := cli.ParseLocation(to)
	if err != nil {
		return models.DragResult{}, fmt.Errorf("--to: %w", err)
	}
	result.Destination = &dst
	return result, nil
}
