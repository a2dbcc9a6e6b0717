package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/types"
)

// CardRepo handles card rows.
type CardRepo struct {
	db DBTX
}

// FindCardByID loads a card. A missing card yields an error wrapping
// models.ErrNotFound.
func (r *CardRepo) FindCardByID(ctx context.Context, id types.CardID) (*models.Card, error) {
	card := &models.Card{}
	var reason sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, column_id, blocked, block_reason, version, created_at
		FROM cards
		WHERE id = ?`,
		id.ToInt64(),
	).Scan(&card.ID, &card.Title, &card.Description, &card.ColumnID,
		&card.Blocked, &reason, &card.Version, &card.CreatedAt)
	if err != nil {
		return nil, lookupErr(err, "card", id.ToInt64())
	}
	card.BlockReason = NullStringToString(reason)
	return card, nil
}

// InsertCard stores an unblocked card in card.ColumnID and assigns its id,
// version and creation time.
func (r *CardRepo) InsertCard(ctx context.Context, card *models.Card) error {
	createdAt := nowUTC()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO cards (title, description, column_id, blocked, block_reason, version, created_at)
		VALUES (?, ?, ?, 0, NULL, 0, ?)`,
		card.Title, card.Description, card.ColumnID.ToInt64(), createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert card: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get card id: %w", err)
	}

	card.ID = types.CardID(id)
	card.Blocked = false
	card.BlockReason = ""
	card.Version = 0
	card.CreatedAt = createdAt
	return nil
}

// UpdateCardColumn moves the card to columnID if its version still matches.
func (r *CardRepo) UpdateCardColumn(ctx context.Context, cardID types.CardID, columnID types.ColumnID, version int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cards
		SET column_id = ?, version = version + 1
		WHERE id = ? AND version = ?`,
		columnID.ToInt64(), cardID.ToInt64(), version,
	)
	if err != nil {
		return fmt.Errorf("failed to move card %d: %w", cardID, err)
	}
	return expectOneRow(res, staleCard(cardID))
}

func staleCard(id types.CardID) error {
	return fmt.Errorf("card %d: %w", id, models.ErrStaleCard)
}
