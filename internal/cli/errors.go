// Package cli provides CLI infrastructure for todo.
package cli

import (
	"errors"

	"github.com/jacksmith/todo/internal/model"
)

// UsageError indicates the command was invoked with bad arguments.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		notFound   *model.NotFoundError
		validation *model.ValidationError
		usage      *UsageError
	)
	switch {
	case errors.As(err, &notFound):
		return ExitNotFound
	case errors.As(err, &validation):
		return ExitValidation
	case errors.As(err, &usage), errors.Is(err, model.ErrInvalidID):
		return ExitUsage
	default:
		return ExitError
	}
}
