package board

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/taskboard/internal/models"
)

// ColumnNames names the columns of a generated board.
type ColumnNames struct {
	Initial string
	Pending []string
	Final   string
	Cancel  string
}

// DefaultColumnNames returns the names used when nothing else is configured.
func DefaultColumnNames() ColumnNames {
	return ColumnNames{
		Initial: "Todo",
		Final:   "Done",
		Cancel:  "Cancelled",
	}
}

// BuildLayout creates an unsaved board with the initial column, the pending
// columns in the given order, the final column and, when withCancel is set,
// the cancel column.
func BuildLayout(name string, names ColumnNames, withCancel bool) *models.Board {
	board := &models.Board{Name: name}
	order := 0
	add := func(colName string, kind models.ColumnKind) {
		board.Columns = append(board.Columns, &models.Column{Name: colName, Order: order, Kind: kind})
		order++
	}

	add(names.Initial, models.KindInitial)
	for _, p := range names.Pending {
		add(p, models.KindPending)
	}
	add(names.Final, models.KindFinal)
	if withCancel {
		add(names.Cancel, models.KindCancel)
	}
	return board
}

// DefaultLayout builds the standard board with the default column names.
func DefaultLayout(name string, pending []string, withCancel bool) *models.Board {
	names := DefaultColumnNames()
	names.Pending = pending
	return BuildLayout(name, names, withCancel)
}

// ValidateLayout checks the column set of a board before it is stored.
// Gaps between orders are allowed; a card facing one cannot advance.
func ValidateLayout(columns []*models.Column) error {
	seen := make(map[int]string, len(columns))
	var initial, final, cancel []*models.Column
	maxPending := -1

	for _, col := range columns {
		if strings.TrimSpace(col.Name) == "" {
			return ErrEmptyColumnName
		}
		if col.Order < 0 {
			return fmt.Errorf("%w: column %q", ErrNegativeOrder, col.Name)
		}
		if other, dup := seen[col.Order]; dup {
			return fmt.Errorf("%w: %q and %q both use %d", ErrDuplicateOrder, other, col.Name, col.Order)
		}
		seen[col.Order] = col.Name

		switch col.Kind {
		case models.KindInitial:
			initial = append(initial, col)
		case models.KindPending:
			maxPending = max(maxPending, col.Order)
		case models.KindFinal:
			final = append(final, col)
		case models.KindCancel:
			cancel = append(cancel, col)
		default:
			return fmt.Errorf("%w: column %q has kind %q", ErrInvalidKind, col.Name, col.Kind)
		}
	}

	if len(initial) != 1 {
		return ErrInitialColumnCount
	}
	if len(final) != 1 {
		return ErrFinalColumnCount
	}
	if len(cancel) > 1 {
		return ErrCancelColumnCount
	}

	for _, col := range columns {
		if col.Order < initial[0].Order {
			return fmt.Errorf("%w: %q precedes the INITIAL column", ErrColumnOrdering, col.Name)
		}
		if len(cancel) == 1 && col.Order > cancel[0].Order {
			return fmt.Errorf("%w: %q follows the CANCEL column", ErrColumnOrdering, col.Name)
		}
	}
	if final[0].Order < maxPending {
		return fmt.Errorf("%w: a PENDING column follows %q", ErrColumnOrdering, final[0].Name)
	}
	return nil
}
