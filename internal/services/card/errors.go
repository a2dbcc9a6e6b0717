package card

import "errors"

// Validation errors, returned before any transaction is opened
var (
	ErrEmptyTitle      = errors.New("card title cannot be empty")
	ErrTitleTooLong    = errors.New("card title cannot exceed 255 characters")
	ErrInvalidCardID   = errors.New("invalid card ID")
	ErrInvalidColumnID = errors.New("invalid column ID")
	ErrEmptyReason     = errors.New("block reason cannot be empty")
)
