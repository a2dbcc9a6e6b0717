package board

import "errors"

// Board validation errors, returned before any transaction is opened
var (
	ErrEmptyBoardName   = errors.New("board name cannot be empty")
	ErrBoardNameTooLong = errors.New("board name cannot exceed 255 characters")
	ErrInvalidBoardID   = errors.New("invalid board ID")
)

// Layout validation errors
var (
	ErrEmptyColumnName    = errors.New("column name cannot be empty")
	ErrInvalidKind        = errors.New("invalid column kind")
	ErrNegativeOrder      = errors.New("column order cannot be negative")
	ErrDuplicateOrder     = errors.New("column orders must be unique within a board")
	ErrInitialColumnCount = errors.New("board must have exactly one INITIAL column")
	ErrFinalColumnCount   = errors.New("board must have exactly one FINAL column")
	ErrCancelColumnCount  = errors.New("board can have at most one CANCEL column")
	ErrColumnOrdering     = errors.New("column kinds are out of order")
)
