package models

import (
	"time"

	"github.com/thenoetrevino/taskboard/internal/types"
)

// BlockEvent distinguishes the two kinds of block history records
type BlockEvent string

const (
	EventBlock   BlockEvent = "BLOCK"
	EventUnblock BlockEvent = "UNBLOCK"
)

// Block is one entry of a card's block history
type Block struct {
	ID        types.BlockID `json:"id"`
	CardID    types.CardID  `json:"card_id"`
	Event     BlockEvent    `json:"event"`
	Reason    string        `json:"reason"`
	CreatedAt time.Time     `json:"created_at"`
}
