package card

import (
	"context"
	"errors"
	"strings"

	"github.com/thenoetrevino/taskboard/internal/database"
	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/types"
)

// Operation names, used as the transaction scope name and OperationError.Op
const (
	OpCreate  = "card.create"
	OpAdvance = "card.advance"
	OpCancel  = "card.cancel"
	OpBlock   = "card.block"
	OpUnblock = "card.unblock"
)

const maxTitleLength = 255

// Service defines the card lifecycle. Every operation runs in exactly one
// transaction scope. Input validation fails before the scope opens with one of
// the plain sentinels in errors.go; lifecycle failures are *models.OperationError.
type Service interface {
	Create(ctx context.Context, req CreateCardRequest) (*models.Card, error)
	Advance(ctx context.Context, cardID types.CardID, layout models.ColumnLayout) error
	Cancel(ctx context.Context, cardID types.CardID, cancelColumnID types.ColumnID, layout models.ColumnLayout) error
	Block(ctx context.Context, cardID types.CardID, reason string, layout models.ColumnLayout) error
	Unblock(ctx context.Context, cardID types.CardID, reason string) error
}

// CreateCardRequest encapsulates all data needed to create a card
type CreateCardRequest struct {
	Title       string
	Description string
	Column      models.ColumnInfo // must be the board's INITIAL column
}

// service implements Service interface
type service struct {
	tx database.TxRunner
}

// NewService creates a new card service
func NewService(tx database.TxRunner) Service {
	return &service{tx: tx}
}

// Create inserts an unblocked card into the INITIAL column in req.Column.
func (s *service) Create(ctx context.Context, req CreateCardRequest) (*models.Card, error) {
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}
	if !req.Column.ID.Valid() {
		return nil, ErrInvalidColumnID
	}

	card := &models.Card{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		ColumnID:    req.Column.ID,
	}

	err := s.tx.WithinTx(ctx, OpCreate, func(ctx context.Context, gw database.Gateway) error {
		if req.Column.Kind != models.KindInitial {
			return models.NewOperationError(OpCreate, models.ErrInvalidColumnKind, req.Column.ID.ToInt64(),
				"cards are created in the INITIAL column, column %d is %s", req.Column.ID, req.Column.Kind)
		}
		return gw.InsertCard(ctx, card)
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

// Advance moves the card to the column whose order follows its current one.
func (s *service) Advance(ctx context.Context, cardID types.CardID, layout models.ColumnLayout) error {
	if !cardID.Valid() {
		return ErrInvalidCardID
	}

	return s.tx.WithinTx(ctx, OpAdvance, func(ctx context.Context, gw database.Gateway) error {
		card, current, err := loadMovable(ctx, gw, OpAdvance, cardID, layout)
		if err != nil {
			return err
		}

		next, ok := layout.Successor(current)
		if !ok {
			return models.NewOperationError(OpAdvance, models.ErrNoSuccessorColumn, cardID.ToInt64(),
				"card %d is in the last column and cannot advance", cardID)
		}

		return gw.UpdateCardColumn(ctx, card.ID, next.ID, card.Version)
	})
}

// Cancel moves the card to the board's CANCEL column. Cancellation is only
// offered while the card still has a successor column.
func (s *service) Cancel(ctx context.Context, cardID types.CardID, cancelColumnID types.ColumnID, layout models.ColumnLayout) error {
	if !cardID.Valid() {
		return ErrInvalidCardID
	}
	if !cancelColumnID.Valid() {
		return ErrInvalidColumnID
	}

	return s.tx.WithinTx(ctx, OpCancel, func(ctx context.Context, gw database.Gateway) error {
		card, current, err := loadMovable(ctx, gw, OpCancel, cardID, layout)
		if err != nil {
			return err
		}

		if _, ok := layout.Successor(current); !ok {
			return models.NewOperationError(OpCancel, models.ErrNoSuccessorColumn, cardID.ToInt64(),
				"card %d has no successor column and cannot be cancelled", cardID)
		}

		target, ok := layout.Find(cancelColumnID)
		if !ok {
			return models.NewOperationError(OpCancel, models.ErrCrossBoardReference, cancelColumnID.ToInt64(),
				"column %d is not part of the card's board", cancelColumnID)
		}
		if target.Kind != models.KindCancel {
			return models.NewOperationError(OpCancel, models.ErrInvalidColumnKind, cancelColumnID.ToInt64(),
				"column %d is %s, not CANCEL", cancelColumnID, target.Kind)
		}

		return gw.UpdateCardColumn(ctx, card.ID, target.ID, card.Version)
	})
}

// Block marks the card as blocked with reason and records a BLOCK event.
func (s *service) Block(ctx context.Context, cardID types.CardID, reason string, layout models.ColumnLayout) error {
	if !cardID.Valid() {
		return ErrInvalidCardID
	}
	if strings.TrimSpace(reason) == "" {
		return ErrEmptyReason
	}

	return s.tx.WithinTx(ctx, OpBlock, func(ctx context.Context, gw database.Gateway) error {
		card, err := loadCard(ctx, gw, OpBlock, cardID)
		if err != nil {
			return err
		}
		if card.Blocked {
			return models.NewOperationError(OpBlock, models.ErrBlockedConflict, cardID.ToInt64(),
				"card %d is already blocked", cardID)
		}

		current, err := resolveColumn(OpBlock, card, layout)
		if err != nil {
			return err
		}
		if !current.Kind.Blockable() {
			return models.NewOperationError(OpBlock, models.ErrInvalidColumnKind, cardID.ToInt64(),
				"card %d is in a %s column and cannot be blocked", cardID, current.Kind)
		}

		return gw.RecordBlock(ctx, card.ID, reason, card.Version)
	})
}

// Unblock clears the card's blocked state and records an UNBLOCK event.
func (s *service) Unblock(ctx context.Context, cardID types.CardID, reason string) error {
	if !cardID.Valid() {
		return ErrInvalidCardID
	}
	if strings.TrimSpace(reason) == "" {
		return ErrEmptyReason
	}

	return s.tx.WithinTx(ctx, OpUnblock, func(ctx context.Context, gw database.Gateway) error {
		card, err := loadCard(ctx, gw, OpUnblock, cardID)
		if err != nil {
			return err
		}
		if !card.Blocked {
			return models.NewOperationError(OpUnblock, models.ErrBlockedConflict, cardID.ToInt64(),
				"card %d is not blocked", cardID)
		}

		return gw.RecordUnblock(ctx, card.ID, reason, card.Version)
	})
}

// loadMovable loads the card and checks it may change column: not blocked,
// on this board, and not in a terminal column.
func loadMovable(ctx context.Context, gw database.Gateway, op string, cardID types.CardID, layout models.ColumnLayout) (*models.Card, models.ColumnInfo, error) {
	card, err := loadCard(ctx, gw, op, cardID)
	if err != nil {
		return nil, models.ColumnInfo{}, err
	}
	if card.Blocked {
		return nil, models.ColumnInfo{}, models.NewOperationError(op, models.ErrBlockedConflict, cardID.ToInt64(),
			"card %d is blocked and must be unblocked first", cardID)
	}

	current, err := resolveColumn(op, card, layout)
	if err != nil {
		return nil, models.ColumnInfo{}, err
	}

	switch current.Kind {
	case models.KindFinal:
		return nil, models.ColumnInfo{}, models.NewOperationError(op, models.ErrAlreadyFinished, cardID.ToInt64(),
			"card %d is already finished", cardID)
	case models.KindCancel:
		return nil, models.ColumnInfo{}, models.NewOperationError(op, models.ErrInvalidColumnKind, cardID.ToInt64(),
			"card %d is cancelled", cardID)
	}
	return card, current, nil
}

func loadCard(ctx context.Context, gw database.Gateway, op string, cardID types.CardID) (*models.Card, error) {
	card, err := gw.FindCardByID(ctx, cardID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewOperationError(op, models.ErrNotFound, cardID.ToInt64(), "card %d not found", cardID)
	}
	if err != nil {
		return nil, err
	}
	return card, nil
}

func resolveColumn(op string, card *models.Card, layout models.ColumnLayout) (models.ColumnInfo, error) {
	current, ok := layout.Find(card.ColumnID)
	if !ok {
		return models.ColumnInfo{}, models.NewOperationError(op, models.ErrCrossBoardReference, card.ID.ToInt64(),
			"card %d is in column %d, which is not part of the given board", card.ID, card.ColumnID)
	}
	return current, nil
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
