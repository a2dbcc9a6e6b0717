package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/types"
)

// DBTX is the subset of *sql.DB and *sql.Tx the repositories need, so the
// same code runs inside and outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// BoardGateway persists boards.
type BoardGateway interface {
	BoardExists(ctx context.Context, id types.BoardID) (bool, error)
	InsertBoard(ctx context.Context, board *models.Board) error
	DeleteBoard(ctx context.Context, id types.BoardID) error
}

// ColumnGateway persists columns.
type ColumnGateway interface {
	InsertColumn(ctx context.Context, column *models.Column, boardID types.BoardID) error
}

// CardGateway persists cards. Mutations take the version read by the caller
// and fail with models.ErrStaleCard when the row has moved on.
type CardGateway interface {
	FindCardByID(ctx context.Context, id types.CardID) (*models.Card, error)
	InsertCard(ctx context.Context, card *models.Card) error
	UpdateCardColumn(ctx context.Context, cardID types.CardID, columnID types.ColumnID, version int64) error
}

// BlockGateway records block history and flips the card's blocked state.
type BlockGateway interface {
	RecordBlock(ctx context.Context, cardID types.CardID, reason string, version int64) error
	RecordUnblock(ctx context.Context, cardID types.CardID, reason string, version int64) error
}

// Gateway is everything a lifecycle operation may touch inside one scope.
type Gateway interface {
	BoardGateway
	ColumnGateway
	CardGateway
	BlockGateway
}

// QueryStore serves the read-only projections.
type QueryStore interface {
	ListBoards(ctx context.Context) ([]*models.Board, error)
	GetBoard(ctx context.Context, id types.BoardID) (*models.Board, error)
	GetColumnsByBoard(ctx context.Context, id types.BoardID) ([]*models.Column, error)
	GetBoardDetails(ctx context.Context, id types.BoardID) (*models.BoardDetails, error)
	GetColumnDetails(ctx context.Context, id types.ColumnID) (*models.ColumnDetails, error)
	GetCardDetails(ctx context.Context, id types.CardID) (*models.CardDetails, error)
	GetBlockHistory(ctx context.Context, cardID types.CardID) ([]*models.Block, error)
}
