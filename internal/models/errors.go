package models

import (
	"errors"
	"fmt"
)

// Error kinds returned by the lifecycle operations. Callers inspect the kind
// with errors.Is or KindOf rather than matching on messages.
var (
	// ErrNotFound indicates that a referenced card, board or column does not exist
	ErrNotFound = errors.New("not found")

	// ErrBlockedConflict indicates the card is blocked when it must not be, or the reverse
	ErrBlockedConflict = errors.New("blocked state conflict")

	// ErrAlreadyFinished indicates the card sits in a FINAL column
	ErrAlreadyFinished = errors.New("card already finished")

	// ErrInvalidColumnKind indicates the operation is not allowed for the column's kind
	ErrInvalidColumnKind = errors.New("invalid column kind")

	// ErrCrossBoardReference indicates a column id is not part of the supplied board layout
	ErrCrossBoardReference = errors.New("column belongs to another board")

	// ErrNoSuccessorColumn indicates no column with order current+1 exists
	ErrNoSuccessorColumn = errors.New("no successor column")

	// ErrStaleCard indicates the card changed between read and write
	ErrStaleCard = errors.New("card was modified concurrently")

	// ErrStorageFailure indicates the underlying transactional operation failed
	ErrStorageFailure = errors.New("storage failure")
)

var kinds = []error{
	ErrNotFound,
	ErrBlockedConflict,
	ErrAlreadyFinished,
	ErrInvalidColumnKind,
	ErrCrossBoardReference,
	ErrNoSuccessorColumn,
	ErrStaleCard,
	ErrStorageFailure,
}

// OperationError is the failure result of a lifecycle operation. Kind is one
// of the sentinels above; Err, when set, is the underlying cause.
type OperationError struct {
	Op   string // e.g. "card.advance"
	Kind error
	ID   int64 // entity the operation targeted, 0 if none
	Msg  string
	Err  error
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Op == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *OperationError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewOperationError builds an OperationError with a formatted message.
func NewOperationError(op string, kind error, id int64, format string, args ...any) *OperationError {
	return &OperationError{Op: op, Kind: kind, ID: id, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the error kind carried by err, or nil if err carries none.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// IsOperationError reports whether err already carries a lifecycle error kind.
func IsOperationError(err error) bool {
	var opErr *OperationError
	return errors.As(err, &opErr)
}
