// Package query serves the read-only board, column and card projections.
package query

import (
	"context"
	"errors"

	"github.com/thenoetrevino/taskboard/internal/cache"
	"github.com/thenoetrevino/taskboard/internal/database"
	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/types"
)

// Operation names reported in not-found errors
const (
	OpBoard   = "query.board"
	OpColumn  = "query.column"
	OpCard    = "query.card"
	OpHistory = "query.history"
)

// Service defines all read operations. None of them opens a write scope.
type Service interface {
	ListBoards(ctx context.Context) ([]*models.Board, error)
	Board(ctx context.Context, boardID types.BoardID) (*models.Board, error)
	BoardColumns(ctx context.Context, boardID types.BoardID) (models.ColumnLayout, error)
	BoardDetails(ctx context.Context, boardID types.BoardID) (*models.BoardDetails, error)
	ColumnDetails(ctx context.Context, columnID types.ColumnID) (*models.ColumnDetails, error)
	CardDetails(ctx context.Context, cardID types.CardID) (*models.CardDetails, error)
	BlockHistory(ctx context.Context, cardID types.CardID) ([]*models.Block, error)
}

// service implements Service interface
type service struct {
	store   database.QueryStore
	layouts *cache.LayoutCache
}

// NewService creates a new query service. layouts may be nil to disable caching.
func NewService(store database.QueryStore, layouts *cache.LayoutCache) Service {
	return &service{store: store, layouts: layouts}
}

func (s *service) ListBoards(ctx context.Context) ([]*models.Board, error) {
	return s.store.ListBoards(ctx)
}

// Board returns the board with its columns in order.
func (s *service) Board(ctx context.Context, boardID types.BoardID) (*models.Board, error) {
	if !boardID.Valid() {
		return nil, ErrInvalidBoardID
	}
	board, err := s.store.GetBoard(ctx, boardID)
	if err != nil {
		return nil, lift(OpBoard, boardID.ToInt64(), err)
	}
	if s.layouts != nil {
		s.layouts.Set(boardID, board.Layout())
	}
	return board, nil
}

// BoardColumns returns the board's column layout, served from the cache
// when possible.
func (s *service) BoardColumns(ctx context.Context, boardID types.BoardID) (models.ColumnLayout, error) {
	if !boardID.Valid() {
		return nil, ErrInvalidBoardID
	}
	if s.layouts != nil {
		if layout, ok := s.layouts.Get(boardID); ok {
			return layout, nil
		}
	}

	board, err := s.Board(ctx, boardID)
	if err != nil {
		return nil, err
	}
	return board.Layout(), nil
}

func (s *service) BoardDetails(ctx context.Context, boardID types.BoardID) (*models.BoardDetails, error) {
	if !boardID.Valid() {
		return nil, ErrInvalidBoardID
	}
	details, err := s.store.GetBoardDetails(ctx, boardID)
	if err != nil {
		return nil, lift(OpBoard, boardID.ToInt64(), err)
	}
	return details, nil
}

func (s *service) ColumnDetails(ctx context.Context, columnID types.ColumnID) (*models.ColumnDetails, error) {
	if !columnID.Valid() {
		return nil, ErrInvalidColumnID
	}
	details, err := s.store.GetColumnDetails(ctx, columnID)
	if err != nil {
		return nil, lift(OpColumn, columnID.ToInt64(), err)
	}
	return details, nil
}

func (s *service) CardDetails(ctx context.Context, cardID types.CardID) (*models.CardDetails, error) {
	if !cardID.Valid() {
		return nil, ErrInvalidCardID
	}
	details, err := s.store.GetCardDetails(ctx, cardID)
	if err != nil {
		return nil, lift(OpCard, cardID.ToInt64(), err)
	}
	return details, nil
}

func (s *service) BlockHistory(ctx context.Context, cardID types.CardID) ([]*models.Block, error) {
	if !cardID.Valid() {
		return nil, ErrInvalidCardID
	}
	history, err := s.store.GetBlockHistory(ctx, cardID)
	if err != nil {
		return nil, lift(OpHistory, cardID.ToInt64(), err)
	}
	return history, nil
}

// lift turns store errors into OperationErrors: not-found keeps its kind,
// anything else is a storage failure.
func lift(op string, id int64, err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return &models.OperationError{Op: op, Kind: models.ErrNotFound, ID: id, Msg: err.Error()}
	}
	return &models.OperationError{Op: op, Kind: models.ErrStorageFailure, ID: id, Err: err}
}
