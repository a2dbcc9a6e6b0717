package board

import (
	"context"
	"strings"

	"github.com/thenoetrevino/taskboard/internal/database"
	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/types"
)

// Operation names, used as the transaction scope name and OperationError.Op
const (
	OpInsert = "board.insert"
	OpDelete = "board.delete"
)

const maxNameLength = 255

// Service defines the board lifecycle
type Service interface {
	Insert(ctx context.Context, board *models.Board) (*models.Board, error)
	Delete(ctx context.Context, boardID types.BoardID) (bool, error)
}

// LayoutEvictor drops cached layouts of deleted boards.
type LayoutEvictor interface {
	Forget(id types.BoardID)
}

// Option configures the board service
type Option func(*service)

// WithLayoutEvictor evicts a board's cached layout once it is deleted.
func WithLayoutEvictor(e LayoutEvictor) Option {
	return func(s *service) {
		s.evictor = e
	}
}

// service implements Service interface
type service struct {
	tx      database.TxRunner
	evictor LayoutEvictor
}

// NewService creates a new board service
func NewService(tx database.TxRunner, opts ...Option) Service {
	s := &service{tx: tx}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Insert stores the board and then each of its columns in the order given,
// all in one transaction. The caller's board is left untouched; the returned
// copy carries the assigned ids.
func (s *service) Insert(ctx context.Context, board *models.Board) (*models.Board, error) {
	if err := validateName(board.Name); err != nil {
		return nil, err
	}
	if err := ValidateLayout(board.Columns); err != nil {
		return nil, err
	}

	stored := &models.Board{Name: strings.TrimSpace(board.Name)}
	for _, col := range board.Columns {
		stored.Columns = append(stored.Columns, &models.Column{
			Name:  strings.TrimSpace(col.Name),
			Order: col.Order,
			Kind:  col.Kind,
		})
	}

	err := s.tx.WithinTx(ctx, OpInsert, func(ctx context.Context, gw database.Gateway) error {
		if err := gw.InsertBoard(ctx, stored); err != nil {
			return err
		}
		for _, col := range stored.Columns {
			if err := gw.InsertColumn(ctx, col, stored.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// Delete removes the board with its columns and cards. A missing board
// reports false with no writes.
func (s *service) Delete(ctx context.Context, boardID types.BoardID) (bool, error) {
	if !boardID.Valid() {
		return false, ErrInvalidBoardID
	}

	deleted := false
	err := s.tx.WithinTx(ctx, OpDelete, func(ctx context.Context, gw database.Gateway) error {
		exists, err := gw.BoardExists(ctx, boardID)
		if err != nil {
			return err
		}
		if !exists {
			return nil
		}
		if err := gw.DeleteBoard(ctx, boardID); err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if deleted && s.evictor != nil {
		s.evictor.Forget(boardID)
	}
	return deleted, nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyBoardName
	}
	if len(name) > maxNameLength {
		return ErrBoardNameTooLong
	}
	return nil
}
