package query

import "errors"

// Query validation errors
var (
	ErrInvalidBoardID  = errors.New("invalid board ID")
	ErrInvalidColumnID = errors.New("invalid column ID")
	ErrInvalidCardID   = errors.New("invalid card ID")
)
