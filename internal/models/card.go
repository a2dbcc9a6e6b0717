package models

import (
	"time"

	"github.com/thenoetrevino/taskboard/internal/types"
)

// Card is a unit of work located in exactly one column at a time
type Card struct {
	ID          types.CardID   `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	ColumnID    types.ColumnID `json:"column_id"`
	Blocked     bool           `json:"blocked"`
	BlockReason string         `json:"block_reason,omitempty"` // empty unless Blocked
	Version     int64          `json:"version"`                // bumped on every mutation
	CreatedAt   time.Time      `json:"created_at"`
}

// GetID is used by the CLI quiet mode
func (c *Card) GetID() int64 {
	return c.ID.ToInt64()
}

// CardSummary is a DTO for listing cards inside a column
type CardSummary struct {
	ID          types.CardID `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Blocked     bool         `json:"blocked"`
}

// CardDetails is a DTO for the full card view
type CardDetails struct {
	ID           types.CardID   `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Blocked      bool           `json:"blocked"`
	BlockReason  string         `json:"block_reason,omitempty"`
	BlocksAmount int            `json:"blocks_amount"`
	ColumnID     types.ColumnID `json:"column_id"`
	ColumnName   string         `json:"column_name"`
	ColumnKind   ColumnKind     `json:"column_kind"`
	BoardID      types.BoardID  `json:"board_id"`
	CreatedAt    time.Time      `json:"created_at"`
}

// GetID is used by the CLI quiet mode
func (c *CardDetails) GetID() int64 {
	return c.ID.ToInt64()
}
