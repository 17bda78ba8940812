// Package testutil holds helpers shared by command tests
package testutil

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// IsolateHome points HOME, the config dir and the theme file at a fresh temp
// dir, so tests never read or write the user's real files.
// Returns the temp home.
func IsolateHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("QUADRO_THEME_FILE", "")
	return home
}

// ExecuteCommand runs a cobra command with args and captures its output
func ExecuteCommand(t *testing.T, cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// Response is the envelope cli.OutputFormatter writes in JSON mode
type Response[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	Error   struct {
		Code       string `json:"code"`
		Message    string `json:"message"`
		Suggestion string `json:"suggestion"`
	} `json:"error"`
}

// DecodeResponse parses JSON command output, failing the test if it is not
// a valid response
func DecodeResponse[T any](t *testing.T, output string) Response[T] {
	t.Helper()

	var resp Response[T]
	if err := json.Unmarshal([]byte(output), &resp); err != nil {
		t.Fatalf("output is not a JSON response: %v\n%s", err, output)
	}
	return resp
}
