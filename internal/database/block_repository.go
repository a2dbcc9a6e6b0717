package database

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/types"
)

// BlockRepo handles the block history and the card's blocked columns.
type BlockRepo struct {
	db DBTX
}

// RecordBlock flags the card as blocked with reason and appends a BLOCK
// history record. The card must be unblocked at the given version.
func (r *BlockRepo) RecordBlock(ctx context.Context, cardID types.CardID, reason string, version int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cards
		SET blocked = 1, block_reason = ?, version = version + 1
		WHERE id = ? AND version = ? AND blocked = 0`,
		reason, cardID.ToInt64(), version,
	)
	if err != nil {
		return fmt.Errorf("failed to block card %d: %w", cardID, err)
	}
	if err := expectOneRow(res, staleCard(cardID)); err != nil {
		return err
	}
	return r.insertEvent(ctx, cardID, models.EventBlock, reason)
}

// RecordUnblock clears the card's blocked state and appends an UNBLOCK
// history record. The card must be blocked at the given version.
func (r *BlockRepo) RecordUnblock(ctx context.Context, cardID types.CardID, reason string, version int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cards
		SET blocked = 0, block_reason = NULL, version = version + 1
		WHERE id = ? AND version = ? AND blocked = 1`,
		cardID.ToInt64(), version,
	)
	if err != nil {
		return fmt.Errorf("failed to unblock card %d: %w", cardID, err)
	}
	if err := expectOneRow(res, staleCard(cardID)); err != nil {
		return err
	}
	return r.insertEvent(ctx, cardID, models.EventUnblock, reason)
}

func (r *BlockRepo) insertEvent(ctx context.Context, cardID types.CardID, event models.BlockEvent, reason string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO blocks (card_id, event, reason, created_at) VALUES (?, ?, ?, ?)`,
		cardID.ToInt64(), string(event), reason, nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record %s for card %d: %w", event, cardID, err)
	}
	return nil
}
