package database

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/types"
)

// BoardRepo handles board rows.
type BoardRepo struct {
	db DBTX
}

// BoardExists reports whether a board with the given id is stored.
func (r *BoardRepo) BoardExists(ctx context.Context, id types.BoardID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM boards WHERE id = ?)`,
		id.ToInt64(),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check board %d: %w", id, err)
	}
	return exists, nil
}

// InsertBoard stores the board row and assigns board.ID and board.CreatedAt.
// Columns are inserted separately through InsertColumn.
func (r *BoardRepo) InsertBoard(ctx context.Context, board *models.Board) error {
	createdAt := nowUTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO boards (name, created_at) VALUES (?, ?)`,
		board.Name, createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert board: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get board id: %w", err)
	}

	board.ID = types.BoardID(id)
	board.CreatedAt = createdAt
	return nil
}

// DeleteBoard removes the board; its columns, cards and block history go with
// it through ON DELETE CASCADE.
func (r *BoardRepo) DeleteBoard(ctx context.Context, id types.BoardID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, id.ToInt64()); err != nil {
		return fmt.Errorf("failed to delete board %d: %w", id, err)
	}
	return nil
}
