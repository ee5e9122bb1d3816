package cli

import (
	"errors"

	"github.com/yaklabco/gobasic/pkg/runner"
)

// Exit codes for gobasic.
const (
	// ExitSuccess indicates successful execution with no findings.
	ExitSuccess = 0

	// ExitSyntaxErrors indicates a file failed to parse, or any other failure.
	ExitSyntaxErrors = 1

	// ExitNotFormatted indicates check found files that are not canonical.
	ExitNotFormatted = 2

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Errors that only signal an exit code; main does not log them.
var (
	ErrSyntaxErrorsFound = errors.New("syntax errors found")
	ErrNotFormatted      = errors.New("files are not formatted")
	ErrFilesFailed       = errors.New("some files could not be processed")
)

// ErrInvalidConfig wraps configuration load and validation failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// ResultError maps a run result to the signal error of its exit code.
// Syntax errors win over unreadable files, which win over formatting.
// Formatting counts only when requireFormatted is set.
func ResultError(result *runner.Result, requireFormatted bool) error {
	switch {
	case result == nil:
		return nil
	case result.HasSyntaxErrors():
		return ErrSyntaxErrorsFound
	case result.HasFileErrors():
		return ErrFilesFailed
	case requireFormatted && result.HasUnformatted():
		return ErrNotFormatted
	default:
		return nil
	}
}

// ExitCode returns the process exit code for an error from Execute.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrNotFormatted):
		return ExitNotFormatted
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrFilesFailed):
		return ExitIOError
	default:
		return ExitSyntaxErrors
	}
}

// IsSignal reports whether err only carries an exit code.
func IsSignal(err error) bool {
	return errors.Is(err, ErrSyntaxErrorsFound) ||
		errors.Is(err, ErrNotFormatted) ||
		errors.Is(err, ErrFilesFailed)
}
