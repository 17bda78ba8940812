package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: config errors, output errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing required flags, or a location that is not "column:index".
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: a column ID that is not on the board.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: an index outside the column it refers to.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code for a failed command.
// The message has already been reported to the user when it is returned.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit %d: %v", e.Code, e.Err)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// WithExitCode wraps err so the process exits with code
func WithExitCode(code int, err error) error {
	return &ExitCodeError{Code: code, Err: err}
}

// ExitCode returns the exit code err should end the process with
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}
