package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskboard/internal/cache"
	"github.com/thenoetrevino/taskboard/internal/database"
	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/testutil"
	"github.com/thenoetrevino/taskboard/internal/types"
)

func TestBoardColumns_CachesLayout(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	layouts := cache.NewLayoutCache(time.Minute)
	svc := NewService(database.NewQueryRepo(db), layouts)

	board := testutil.CreateTestBoard(t, db, "Cached")

	layout, err := svc.BoardColumns(context.Background(), board.ID)
	require.NoError(t, err)
	require.Len(t, layout, 4)
	assert.Equal(t, models.KindInitial, layout[0].Kind)

	// Drop the rows behind the cache's back; the cached layout still answers.
	_, err = db.Exec(`DELETE FROM boards WHERE id = ?`, board.ID.ToInt64())
	require.NoError(t, err)

	cached, err := svc.BoardColumns(context.Background(), board.ID)
	require.NoError(t, err)
	assert.Equal(t, layout, cached)
}

func TestBoardColumns_NotFound(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewQueryRepo(db), nil)

	_, err := svc.BoardColumns(context.Background(), types.BoardID(12))
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
	assert.True(t, models.IsOperationError(err))
}

func TestBoardDetails(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewQueryRepo(db), nil)

	board := testutil.CreateTestBoard(t, db, "Summary")
	testutil.CreateTestCard(t, db, board.Columns[1].ID, "one")

	details, err := svc.BoardDetails(context.Background(), board.ID)
	require.NoError(t, err)
	assert.Equal(t, "Summary", details.Name)
	require.Len(t, details.Columns, 4)
	assert.Equal(t, 1, details.Columns[1].CardsAmount)
}

func TestColumnAndCardDetails(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewQueryRepo(db), nil)
	ctx := context.Background()

	board := testutil.CreateTestBoard(t, db, "Details")
	id := testutil.CreateTestCard(t, db, board.Columns[0].ID, "look at me")

	col, err := svc.ColumnDetails(ctx, board.Columns[0].ID)
	require.NoError(t, err)
	require.Len(t, col.Cards, 1)
	assert.Equal(t, id, col.Cards[0].ID)

	card, err := svc.CardDetails(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "look at me", card.Title)
	assert.Equal(t, "Todo", card.ColumnName)
	assert.Equal(t, board.ID, card.BoardID)
	assert.Equal(t, 0, card.BlocksAmount)

	history, err := svc.BlockHistory(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestQueries_InvalidIDs(t *testing.T) {
	t.Parallel()
	svc := NewService(database.NewQueryRepo(testutil.SetupTestDB(t)), nil)
	ctx := context.Background()

	_, err := svc.BoardDetails(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidBoardID)
	_, err = svc.ColumnDetails(ctx, -3)
	assert.ErrorIs(t, err, ErrInvalidColumnID)
	_, err = svc.CardDetails(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidCardID)
	_, err = svc.BlockHistory(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidCardID)
}

func TestQueries_NotFound(t *testing.T) {
	t.Parallel()
	svc := NewService(database.NewQueryRepo(testutil.SetupTestDB(t)), nil)
	ctx := context.Background()

	_, err := svc.ColumnDetails(ctx, 77)
	assert.Equal(t, models.ErrNotFound, models.KindOf(err))
	_, err = svc.CardDetails(ctx, 77)
	assert.Equal(t, models.ErrNotFound, models.KindOf(err))
	_, err = svc.BlockHistory(ctx, 77)
	assert.Equal(t, models.ErrNotFound, models.KindOf(err))
}
