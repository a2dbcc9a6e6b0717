package models

import (
	"time"

	"github.com/thenoetrevino/taskboard/internal/types"
)

// Board is the top-level container of an ordered set of columns
type Board struct {
	ID        types.BoardID `json:"id"`
	Name      string        `json:"name"`
	Columns   []*Column     `json:"columns"`
	CreatedAt time.Time     `json:"created_at"`
}

// GetID is used by the CLI quiet mode
func (b *Board) GetID() int64 {
	return b.ID.ToInt64()
}

// Layout returns the board's columns as an ordered layout
func (b *Board) Layout() ColumnLayout {
	return NewColumnLayout(b.Columns)
}

// BoardDetails is a DTO for the board summary view
type BoardDetails struct {
	ID      types.BoardID         `json:"id"`
	Name    string                `json:"name"`
	Columns []*BoardColumnSummary `json:"columns"`
}

// BoardColumnSummary describes one column of a board with its card count
type BoardColumnSummary struct {
	ID          types.ColumnID `json:"id"`
	Name        string         `json:"name"`
	Order       int            `json:"order"`
	Kind        ColumnKind     `json:"kind"`
	CardsAmount int            `json:"cards_amount"`
}

// GetID is used by the CLI quiet mode
func (b *BoardDetails) GetID() int64 {
	return b.ID.ToInt64()
}
