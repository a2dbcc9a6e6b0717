package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/models"
	boardservice "github.com/thenoetrevino/taskboard/internal/services/board"
	cardservice "github.com/thenoetrevino/taskboard/internal/services/card"
	queryservice "github.com/thenoetrevino/taskboard/internal/services/query"
	"github.com/thenoetrevino/taskboard/internal/templates"
)

// Exit codes for CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage failures, I/O errors and anything not covered below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing required flags, bad positional arguments.
	ExitUsage = 2

	// ExitNotFound indicates a referenced board, column or card does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates a board template could not be read.
	ExitDataErr = 4

	// ExitValidation indicates input failed validation before any write.
	// Use for: empty titles, bad layouts, empty block reasons.
	ExitValidation = 5

	// ExitConflict indicates the card's state does not allow the operation.
	// Use for: blocked, finished, wrong column kind, stale card, no successor.
	ExitConflict = 6
)

var validationErrors = []error{
	cardservice.ErrEmptyTitle,
	cardservice.ErrTitleTooLong,
	cardservice.ErrInvalidCardID,
	cardservice.ErrInvalidColumnID,
	cardservice.ErrEmptyReason,
	boardservice.ErrEmptyBoardName,
	boardservice.ErrBoardNameTooLong,
	boardservice.ErrInvalidBoardID,
	boardservice.ErrEmptyColumnName,
	boardservice.ErrInvalidKind,
	boardservice.ErrNegativeOrder,
	boardservice.ErrDuplicateOrder,
	boardservice.ErrInitialColumnCount,
	boardservice.ErrFinalColumnCount,
	boardservice.ErrCancelColumnCount,
	boardservice.ErrColumnOrdering,
	queryservice.ErrInvalidBoardID,
	queryservice.ErrInvalidColumnID,
	queryservice.ErrInvalidCardID,
}

// CodeError carries the process exit code of a failed command. Its message
// has already been written by the command's formatter.
type CodeError struct {
	Code int
	Err  error
}

func (e *CodeError) Error() string {
	return e.Err.Error()
}

func (e *CodeError) Unwrap() error {
	return e.Err
}

// UsageError marks an error caused by how the command was invoked
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// Usagef builds a UsageError from a format string
func Usagef(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// ExactArgs is cobra.ExactArgs reporting a UsageError
func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &UsageError{Err: err}
		}
		return nil
	}
}

// ExitCode maps an error returned by a command to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *CodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsage
	}

	switch models.KindOf(err) {
	case models.ErrNotFound:
		return ExitNotFound
	case models.ErrBlockedConflict,
		models.ErrAlreadyFinished,
		models.ErrInvalidColumnKind,
		models.ErrCrossBoardReference,
		models.ErrNoSuccessorColumn,
		models.ErrStaleCard:
		return ExitConflict
	case models.ErrStorageFailure:
		return ExitError
	}

	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return ExitValidation
		}
	}
	if errors.Is(err, templates.ErrNoColumns) || errors.Is(err, templates.ErrInvalidTemplate) {
		return ExitDataErr
	}
	return ExitError
}

// ErrorCode returns the machine readable code reported in JSON error output
func ErrorCode(err error) string {
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return "USAGE_ERROR"
	}

	switch models.KindOf(err) {
	case models.ErrNotFound:
		return "NOT_FOUND"
	case models.ErrBlockedConflict:
		return "BLOCKED_CONFLICT"
	case models.ErrAlreadyFinished:
		return "ALREADY_FINISHED"
	case models.ErrInvalidColumnKind:
		return "INVALID_COLUMN_KIND"
	case models.ErrCrossBoardReference:
		return "CROSS_BOARD_REFERENCE"
	case models.ErrNoSuccessorColumn:
		return "NO_SUCCESSOR_COLUMN"
	case models.ErrStaleCard:
		return "STALE_CARD"
	case models.ErrStorageFailure:
		return "STORAGE_FAILURE"
	}

	switch ExitCode(err) {
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitDataErr:
		return "TEMPLATE_ERROR"
	}
	return "ERROR"
}
