package database

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/types"
)

// ColumnRepo handles column rows.
type ColumnRepo struct {
	db DBTX
}

// InsertColumn stores column under boardID and assigns column.ID and
// column.BoardID.
func (r *ColumnRepo) InsertColumn(ctx context.Context, column *models.Column, boardID types.BoardID) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO columns (board_id, name, position, kind) VALUES (?, ?, ?, ?)`,
		boardID.ToInt64(), column.Name, column.Order, string(column.Kind),
	)
	if err != nil {
		return fmt.Errorf("failed to insert column %q: %w", column.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get column id: %w", err)
	}

	column.ID = types.ColumnID(id)
	column.BoardID = boardID
	return nil
}
