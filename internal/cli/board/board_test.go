package board

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/testutil"
)

// run executes the board command with args and captures its output
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	return testutil.ExecuteCommand(t, BoardCmd(), args...)
}

// taskIDs returns the task IDs of every column in order, keyed by column ID
func taskIDs(b BoardOutput) map[string][]string {
	out := make(map[string][]string)
	for _, col := range b.Columns {
		ids := []string{}
		for _, task := range col.Tasks {
			ids = append(ids, task.ID)
		}
		out[col.ID] = ids
	}
	return out
}

func TestShow_JSON(t *testing.T) {
	stdout, _, err := run(t, "show", "--json")
	require.NoError(t, err)

	resp := testutil.DecodeResponse[BoardOutput](t, stdout)
	assert.True(t, resp.Success)
	assert.Equal(t, "Task Board", resp.Data.Title)
	require.Len(t, resp.Data.Columns, 2)
	assert.Equal(t, "Requested", resp.Data.Columns[0].Name)
	assert.Equal(t, "To Do", resp.Data.Columns[1].Name)
	assert.Equal(t, map[string][]string{
		"requested": {"1", "2", "3", "4", "5"},
		"toDo":      {},
	}, taskIDs(resp.Data))
}

func TestShow_Human(t *testing.T) {
	stdout, _, err := run(t, "show")
	require.NoError(t, err)

	plain := ansi.Strip(stdout)
	assert.Contains(t, plain, "Requested (5)")
	assert.Contains(t, plain, "To Do (0)")
	assert.Contains(t, plain, "0. First task #1")
	assert.Contains(t, plain, "No tasks")
}

func TestMove_AcrossColumns(t *testing.T) {
	stdout, _, err := run(t, "move", "--from", "requested:1", "--to", "toDo:0", "--json")
	require.NoError(t, err)

	resp := testutil.DecodeResponse[MoveOutput](t, stdout)
	assert.True(t, resp.Success)
	assert.Equal(t, "2", resp.Data.TaskID)
	assert.Equal(t, 1, resp.Data.Moves)
	assert.Equal(t, map[string][]string{
		"requested": {"1", "3", "4", "5"},
		"toDo":      {"2"},
	}, taskIDs(resp.Data.Board))
}

func TestMove_WithinColumn(t *testing.T) {
	stdout, _, err := run(t, "move", "--from", "requested:0", "--to", "requested:2", "--json")
	require.NoError(t, err)

	resp := testutil.DecodeResponse[MoveOutput](t, stdout)
	assert.Equal(t, []string{"2", "3", "1", "4", "5"}, taskIDs(resp.Data.Board)["requested"])
}

func TestMove_NoDestination(t *testing.T) {
	stdout, _, err := run(t, "move", "--from", "requested:3")
	require.NoError(t, err)

	plain := ansi.Strip(stdout)
	assert.Contains(t, plain, "drop cancelled: task 4 stays at requested:3")
	assert.Contains(t, plain, "Requested (5)")
}

func TestMove_Quiet(t *testing.T) {
	stdout, _, err := run(t, "move", "--from", "requested:4", "--to", "toDo:0", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "5\n", stdout)
}

func TestMove_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode string
		wantExit int
	}{
		{
			name:     "malformed location",
			args:     []string{"--from", "requested", "--to", "toDo:0"},
			wantCode: "INVALID_LOCATION",
			wantExit: cli.ExitUsage,
		},
		{
			name:     "negative index",
			args:     []string{"--from", "requested:-1", "--to", "toDo:0"},
			wantCode: "INVALID_LOCATION",
			wantExit: cli.ExitUsage,
		},
		{
			name:     "unknown source column",
			args:     []string{"--from", "done:0", "--to", "toDo:0"},
			wantCode: "COLUMN_NOT_FOUND",
			wantExit: cli.ExitNotFound,
		},
		{
			name:     "unknown destination column",
			args:     []string{"--from", "requested:0", "--to", "done:0"},
			wantCode: "COLUMN_NOT_FOUND",
			wantExit: cli.ExitNotFound,
		},
		{
			name:     "source index past the end",
			args:     []string{"--from", "requested:5", "--to", "toDo:0"},
			wantCode: "INVALID_MOVE",
			wantExit: cli.ExitValidation,
		},
		{
			name:     "destination past the end of an empty column",
			args:     []string{"--from", "requested:0", "--to", "toDo:1"},
			wantCode: "INVALID_MOVE",
			wantExit: cli.ExitValidation,
		},
		{
			name:     "same column destination past the last slot",
			args:     []string{"--from", "requested:0", "--to", "requested:5"},
			wantCode: "INVALID_MOVE",
			wantExit: cli.ExitValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"move", "--json"}, tt.args...)
			stdout, _, err := run(t, args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantExit, cli.ExitCode(err))

			resp := testutil.DecodeResponse[MoveOutput](t, stdout)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestMove_HumanError(t *testing.T) {
	_, stderr, err := run(t, "move", "--from", "nowhere:0", "--to", "toDo:0")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(stderr, "Error: "), "stderr: %q", stderr)
	assert.Contains(t, stderr, "Suggestion: ")
}

func TestMove_RequiresFrom(t *testing.T) {
	_, _, err := run(t, "move", "--to", "toDo:0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "from")
}
