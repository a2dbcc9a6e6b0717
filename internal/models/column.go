package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/thenoetrevino/taskboard/internal/types"
)

// ColumnKind classifies a column's role in the card workflow
type ColumnKind string

const (
	KindInitial ColumnKind = "INITIAL"
	KindPending ColumnKind = "PENDING"
	KindFinal   ColumnKind = "FINAL"
	KindCancel  ColumnKind = "CANCEL"
)

// ParseColumnKind maps a (case-insensitive) kind name to its ColumnKind
func ParseColumnKind(s string) (ColumnKind, error) {
	k := ColumnKind(strings.ToUpper(strings.TrimSpace(s)))
	switch k {
	case KindInitial, KindPending, KindFinal, KindCancel:
		return k, nil
	}
	return "", fmt.Errorf("invalid column kind %q (must be: initial, pending, final, cancel)", s)
}

// IsTerminal reports whether cards in a column of this kind can no longer move.
func (k ColumnKind) IsTerminal() bool {
	return k == KindFinal || k == KindCancel
}

// Blockable reports whether a card may be blocked while in a column of this kind.
func (k ColumnKind) Blockable() bool {
	return k == KindInitial || k == KindPending
}

// Column represents a board column (e.g., "Todo", "Doing", "Done")
// Columns are ordered within their board by Order, which is unique per board
type Column struct {
	ID      types.ColumnID `json:"id"`
	BoardID types.BoardID  `json:"board_id"`
	Name    string         `json:"name"`
	Order   int            `json:"order"`
	Kind    ColumnKind     `json:"kind"`
}

// Info returns the lightweight view of the column used by lifecycle operations
func (c *Column) Info() ColumnInfo {
	return ColumnInfo{ID: c.ID, Order: c.Order, Kind: c.Kind}
}

// ColumnInfo is the (id, order, kind) triple the card lifecycle needs to
// decide where a card may move.
type ColumnInfo struct {
	ID    types.ColumnID
	Order int
	Kind  ColumnKind
}

// ColumnLayout is the ordered set of columns of one board.
type ColumnLayout []ColumnInfo

// NewColumnLayout builds a layout from full column rows, sorted by order.
func NewColumnLayout(columns []*Column) ColumnLayout {
	layout := make(ColumnLayout, 0, len(columns))
	for _, c := range columns {
		layout = append(layout, c.Info())
	}
	sort.SliceStable(layout, func(i, j int) bool { return layout[i].Order < layout[j].Order })
	return layout
}

// Find returns the column with the given id.
func (l ColumnLayout) Find(id types.ColumnID) (ColumnInfo, bool) {
	for _, c := range l {
		if c.ID == id {
			return c, true
		}
	}
	return ColumnInfo{}, false
}

// Successor returns the column whose order is exactly current.Order+1.
// Gaps in the ordering are not skipped.
func (l ColumnLayout) Successor(current ColumnInfo) (ColumnInfo, bool) {
	for _, c := range l {
		if c.Order == current.Order+1 {
			return c, true
		}
	}
	return ColumnInfo{}, false
}

// Initial returns the board's INITIAL column.
func (l ColumnLayout) Initial() (ColumnInfo, bool) {
	return l.firstOfKind(KindInitial)
}

// Cancel returns the board's CANCEL column, if the board has one.
func (l ColumnLayout) Cancel() (ColumnInfo, bool) {
	return l.firstOfKind(KindCancel)
}

func (l ColumnLayout) firstOfKind(kind ColumnKind) (ColumnInfo, bool) {
	for _, c := range l {
		if c.Kind == kind {
			return c, true
		}
	}
	return ColumnInfo{}, false
}

// ColumnDetails is a DTO for the column view: the column and the cards it holds
type ColumnDetails struct {
	ID      types.ColumnID `json:"id"`
	BoardID types.BoardID  `json:"board_id"`
	Name    string         `json:"name"`
	Order   int            `json:"order"`
	Kind    ColumnKind     `json:"kind"`
	Cards   []*CardSummary `json:"cards"`
}
