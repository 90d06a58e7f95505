package cli

import (
	"errors"

	"github.com/thenoetrevino/todolist/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, unknown flags or a malformed positional ID.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Task, label or task list IDs and names that don't exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unparseable due dates or unreadable stdin.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, invalid status or priority values, bad colors.
	ExitValidation = 5

	// ExitConflict indicates a uniqueness rule rejected the write.
	// Use for: Duplicate task titles, label names or label colors.
	ExitConflict = 6
)

// ExitCodeError carries the process exit code for a failed command. The error
// has already been reported to the user when it is returned.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// ErrMalformedInput marks input the CLI itself could not parse
var ErrMalformedInput = errors.New("malformed input")

// ExitCode maps an error onto the exit code taxonomy
func ExitCode(err error) int {
	var exitErr *ExitCodeError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, ErrMalformedInput):
		return ExitDataErr
	case errors.Is(err, models.ErrInvalid):
		return ExitValidation
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrAlreadyExists):
		return ExitConflict
	default:
		return ExitError
	}
}

// ErrorCode returns the machine readable code printed with an error
func ErrorCode(err error) string {
	switch ExitCode(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitDataErr:
		return "MALFORMED_INPUT"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitConflict:
		return "ALREADY_EXISTS"
	default:
		return "INTERNAL_ERROR"
	}
}
