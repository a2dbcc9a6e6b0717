package types

import (
	"fmt"
	"strconv"
)

// ID type aliases provide semantic meaning and keep board, column and card
// identifiers from being mixed up at call sites.

// BoardID identifies a unique board in the system
type BoardID int64

// ColumnID identifies a unique column within a board
type ColumnID int64

// CardID identifies a unique card
type CardID int64

// BlockID identifies a single entry in a card's block history
type BlockID int64

// ToInt64 converts the typed ID back to int64 for database parameters
func (id BoardID) ToInt64() int64 {
	return int64(id)
}

func (id ColumnID) ToInt64() int64 {
	return int64(id)
}

func (id CardID) ToInt64() int64 {
	return int64(id)
}

func (id BlockID) ToInt64() int64 {
	return int64(id)
}

func (id BoardID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id ColumnID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id CardID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Valid reports whether the ID could refer to a persisted row.
func (id BoardID) Valid() bool {
	return id > 0
}

func (id ColumnID) Valid() bool {
	return id > 0
}

func (id CardID) Valid() bool {
	return id > 0
}

// ParseBoardID parses a positional CLI argument into a BoardID
func ParseBoardID(s string) (BoardID, error) {
	v, err := parsePositive(s)
	return BoardID(v), err
}

// ParseColumnID parses a positional CLI argument into a ColumnID
func ParseColumnID(s string) (ColumnID, error) {
	v, err := parsePositive(s)
	return ColumnID(v), err
}

// ParseCardID parses a positional CLI argument into a CardID
func ParseCardID(s string) (CardID, error) {
	v, err := parsePositive(s)
	return CardID(v), err
}

func parsePositive(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", s)
	}
	return v, nil
}
