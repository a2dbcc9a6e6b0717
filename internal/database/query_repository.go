package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/types"
)

// QueryRepo serves the read-only projections.
type QueryRepo struct {
	db DBTX
}

// NewQueryRepo creates a QueryRepo over db.
func NewQueryRepo(db DBTX) *QueryRepo {
	return &QueryRepo{db: db}
}

var _ QueryStore = (*QueryRepo)(nil)

// ListBoards returns every board ordered by id, without columns.
func (r *QueryRepo) ListBoards(ctx context.Context) ([]*models.Board, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at FROM boards ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	defer rows.Close()

	boards := make([]*models.Board, 0)
	for rows.Next() {
		b := &models.Board{}
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning board row: %w", err)
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating board rows: %w", err)
	}
	return boards, nil
}

// GetBoard returns a board with its columns in order.
func (r *QueryRepo) GetBoard(ctx context.Context, id types.BoardID) (*models.Board, error) {
	b := &models.Board{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM boards WHERE id = ?`,
		id.ToInt64(),
	).Scan(&b.ID, &b.Name, &b.CreatedAt)
	if err != nil {
		return nil, lookupErr(err, "board", id.ToInt64())
	}

	b.Columns, err = r.GetColumnsByBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// GetColumnsByBoard returns the board's columns ordered by position. An
// unknown board yields an empty slice.
func (r *QueryRepo) GetColumnsByBoard(ctx context.Context, id types.BoardID) ([]*models.Column, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, board_id, name, position, kind
		FROM columns
		WHERE board_id = ?
		ORDER BY position`,
		id.ToInt64(),
	)
	if err != nil {
		return nil, fmt.Errorf("querying columns for board: %w", err)
	}
	defer rows.Close()

	columns := make([]*models.Column, 0)
	for rows.Next() {
		col := &models.Column{}
		if err := rows.Scan(&col.ID, &col.BoardID, &col.Name, &col.Order, &col.Kind); err != nil {
			return nil, fmt.Errorf("scanning column row: %w", err)
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating column rows: %w", err)
	}
	return columns, nil
}

// GetBoardDetails returns the board summary: each column with its card count.
func (r *QueryRepo) GetBoardDetails(ctx context.Context, id types.BoardID) (*models.BoardDetails, error) {
	details := &models.BoardDetails{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM boards WHERE id = ?`,
		id.ToInt64(),
	).Scan(&details.ID, &details.Name)
	if err != nil {
		return nil, lookupErr(err, "board", id.ToInt64())
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.position, c.kind, COUNT(k.id)
		FROM columns c
		LEFT JOIN cards k ON k.column_id = c.id
		WHERE c.board_id = ?
		GROUP BY c.id
		ORDER BY c.position`,
		id.ToInt64(),
	)
	if err != nil {
		return nil, fmt.Errorf("querying board summary: %w", err)
	}
	defer rows.Close()

	details.Columns = make([]*models.BoardColumnSummary, 0)
	for rows.Next() {
		s := &models.BoardColumnSummary{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Order, &s.Kind, &s.CardsAmount); err != nil {
			return nil, fmt.Errorf("scanning column summary: %w", err)
		}
		details.Columns = append(details.Columns, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating column summaries: %w", err)
	}
	return details, nil
}

// GetColumnDetails returns a column with the cards it holds, oldest first.
func (r *QueryRepo) GetColumnDetails(ctx context.Context, id types.ColumnID) (*models.ColumnDetails, error) {
	details := &models.ColumnDetails{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, board_id, name, position, kind FROM columns WHERE id = ?`,
		id.ToInt64(),
	).Scan(&details.ID, &details.BoardID, &details.Name, &details.Order, &details.Kind)
	if err != nil {
		return nil, lookupErr(err, "column", id.ToInt64())
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, blocked
		FROM cards
		WHERE column_id = ?
		ORDER BY id`,
		id.ToInt64(),
	)
	if err != nil {
		return nil, fmt.Errorf("querying cards for column: %w", err)
	}
	defer rows.Close()

	details.Cards = make([]*models.CardSummary, 0)
	for rows.Next() {
		c := &models.CardSummary{}
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Blocked); err != nil {
			return nil, fmt.Errorf("scanning card row: %w", err)
		}
		details.Cards = append(details.Cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating card rows: %w", err)
	}
	return details, nil
}

// GetCardDetails returns the full card view. BlocksAmount counts BLOCK events.
func (r *QueryRepo) GetCardDetails(ctx context.Context, id types.CardID) (*models.CardDetails, error) {
	d := &models.CardDetails{}
	var reason sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT k.id, k.title, k.description, k.blocked, k.block_reason,
		       (SELECT COUNT(*) FROM blocks b WHERE b.card_id = k.id AND b.event = 'BLOCK'),
		       c.id, c.name, c.kind, c.board_id, k.created_at
		FROM cards k
		INNER JOIN columns c ON c.id = k.column_id
		WHERE k.id = ?`,
		id.ToInt64(),
	).Scan(&d.ID, &d.Title, &d.Description, &d.Blocked, &reason,
		&d.BlocksAmount, &d.ColumnID, &d.ColumnName, &d.ColumnKind, &d.BoardID, &d.CreatedAt)
	if err != nil {
		return nil, lookupErr(err, "card", id.ToInt64())
	}
	d.BlockReason = NullStringToString(reason)
	return d, nil
}

// GetBlockHistory returns the card's block and unblock records, oldest first.
// An unknown card yields an error wrapping models.ErrNotFound.
func (r *QueryRepo) GetBlockHistory(ctx context.Context, cardID types.CardID) ([]*models.Block, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM cards WHERE id = ?)`,
		cardID.ToInt64(),
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check card %d: %w", cardID, err)
	}
	if !exists {
		return nil, fmt.Errorf("card %d: %w", cardID, models.ErrNotFound)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, card_id, event, reason, created_at
		FROM blocks
		WHERE card_id = ?
		ORDER BY id`,
		cardID.ToInt64(),
	)
	if err != nil {
		return nil, fmt.Errorf("querying block history: %w", err)
	}
	defer rows.Close()

	history := make([]*models.Block, 0)
	for rows.Next() {
		b := &models.Block{}
		if err := rows.Scan(&b.ID, &b.CardID, &b.Event, &b.Reason, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning block row: %w", err)
		}
		history = append(history, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating block rows: %w", err)
	}
	return history, nil
}
