package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/thenoetrevino/quadro/cmd"
	"github.com/thenoetrevino/quadro/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)

		// Commands that set an exit code have already reported the error
		var exitErr *cli.ExitCodeError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
