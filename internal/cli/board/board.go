// Package board implements the "quadro board" commands, which drive the
// reorder engine without the terminal UI.
package board

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli/styles"
	"github.com/thenoetrevino/quadro/internal/models"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Inspect the board and apply moves from the command line",
		Long: `Inspect the board and apply moves from the command line.

Every invocation starts from the seed board; nothing is saved between runs.`,
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}

// ColumnOutput is one column as printed by the board commands
type ColumnOutput struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Tasks []models.Task `json:"tasks"`
}

// BoardOutput is the board as printed by the board commands
type BoardOutput struct {
	Title   string         `json:"title"`
	Columns []ColumnOutput `json:"columns"`
}

// NewBoardOutput lists the columns of b in display order
func NewBoardOutput(title string, b models.Board) BoardOutput {
	out := BoardOutput{Title: title, Columns: []ColumnOutput{}}
	for _, col := range b.OrderedColumns() {
		tasks := col.Items
		if tasks == nil {
			tasks = []models.Task{}
		}
		out.Columns = append(out.Columns, ColumnOutput{
			ID:    col.ID,
			Name:  col.Name,
			Tasks: tasks,
		})
	}
	return out
}

// String renders the board for humans, one column after another
func (o BoardOutput) String() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(o.Title))
	b.WriteString("\n")

	for _, col := range o.Columns {
		b.WriteString("\n")
		header := fmt.Sprintf("%s (%d)", col.Name, len(col.Tasks))
		b.WriteString(styles.HeaderStyle.Render(header))
		b.WriteString(" " + styles.SubtitleStyle.Render(col.ID))
		b.WriteString("\n")

		if len(col.Tasks) == 0 {
			b.WriteString("  " + styles.SubtitleStyle.Render("No tasks") + "\n")
			continue
		}
		for i, task := range col.Tasks {
			fmt.Fprintf(&b, "  %d. %s %s\n",
				i,
				styles.ValueStyle.Render(task.Content),
				styles.LabelStyle.Render("#"+task.ID))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
