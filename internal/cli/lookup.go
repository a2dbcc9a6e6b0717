package cli

import (
	"context"

	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/types"
)

// ParseBoardArg parses a positional board id
func ParseBoardArg(s string) (types.BoardID, error) {
	id, err := types.ParseBoardID(s)
	if err != nil {
		return 0, &UsageError{Err: err}
	}
	return id, nil
}

// ParseColumnArg parses a positional column id
func ParseColumnArg(s string) (types.ColumnID, error) {
	id, err := types.ParseColumnID(s)
	if err != nil {
		return 0, &UsageError{Err: err}
	}
	return id, nil
}

// ParseCardArg parses a positional card id
func ParseCardArg(s string) (types.CardID, error) {
	id, err := types.ParseCardID(s)
	if err != nil {
		return 0, &UsageError{Err: err}
	}
	return id, nil
}

// CardLayout loads the card and the column layout of the board it sits on
func (c *CLI) CardLayout(ctx context.Context, cardID types.CardID) (*models.CardDetails, models.ColumnLayout, error) {
	details, err := c.App.QueryService.CardDetails(ctx, cardID)
	if err != nil {
		return nil, nil, err
	}
	layout, err := c.App.QueryService.BoardColumns(ctx, details.BoardID)
	if err != nil {
		return nil, nil, err
	}
	return details, layout, nil
}
