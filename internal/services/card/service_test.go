package card

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskboard/internal/database"
	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/testutil"
	"github.com/thenoetrevino/taskboard/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type fixture struct {
	db      *sql.DB
	svc     Service
	board   *models.Board
	layout  models.ColumnLayout
	todo    models.ColumnInfo
	doing   models.ColumnInfo
	done    models.ColumnInfo
	cancels models.ColumnInfo
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := testutil.SetupTestDB(t)
	board := testutil.CreateTestBoard(t, db, "Test Board")
	layout := board.Layout()

	return &fixture{
		db:      db,
		svc:     NewService(database.NewTransactor(db)),
		board:   board,
		layout:  layout,
		todo:    layout[0],
		doing:   layout[1],
		done:    layout[2],
		cancels: layout[3],
	}
}

func (f *fixture) createCard(t *testing.T, title string) types.CardID {
	t.Helper()
	card, err := f.svc.Create(context.Background(), CreateCardRequest{Title: title, Column: f.todo})
	require.NoError(t, err)
	return card.ID
}

func (f *fixture) blockHistory(t *testing.T, id types.CardID) []*models.Block {
	t.Helper()
	history, err := database.NewQueryRepo(f.db).GetBlockHistory(context.Background(), id)
	require.NoError(t, err)
	return history
}

func requireKind(t *testing.T, err error, kind error) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, kind), "expected %v, got %v", kind, err)
	assert.True(t, models.IsOperationError(err), "expected *models.OperationError, got %T", err)
}

// ============================================================================
// Create
// ============================================================================

func TestCreate(t *testing.T) {
	t.Parallel()
	f := setup(t)

	card, err := f.svc.Create(context.Background(), CreateCardRequest{
		Title:       "Write docs",
		Description: "README first",
		Column:      f.todo,
	})
	require.NoError(t, err)
	require.True(t, card.ID.Valid())

	stored := testutil.GetCard(t, f.db, card.ID)
	assert.Equal(t, "Write docs", stored.Title)
	assert.Equal(t, "README first", stored.Description)
	assert.Equal(t, f.todo.ID, stored.ColumnID)
	assert.False(t, stored.Blocked)
}

func TestCreate_Validation(t *testing.T) {
	t.Parallel()
	f := setup(t)

	tests := []struct {
		name    string
		req     CreateCardRequest
		wantErr error
	}{
		{"empty title", CreateCardRequest{Title: "", Column: f.todo}, ErrEmptyTitle},
		{"blank title", CreateCardRequest{Title: "   ", Column: f.todo}, ErrEmptyTitle},
		{"title too long", CreateCardRequest{Title: strings.Repeat("a", 256), Column: f.todo}, ErrTitleTooLong},
		{"missing column", CreateCardRequest{Title: "ok"}, ErrInvalidColumnID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, models.IsOperationError(err), "validation fails before the scope")
			assert.Nil(t, models.KindOf(err))
		})
	}

	assert.Equal(t, 0, testutil.CountRows(t, f.db, "cards"))
}

func TestCreate_RequiresInitialColumn(t *testing.T) {
	t.Parallel()
	f := setup(t)

	_, err := f.svc.Create(context.Background(), CreateCardRequest{Title: "skip ahead", Column: f.doing})
	requireKind(t, err, models.ErrInvalidColumnKind)
	assert.Equal(t, 0, testutil.CountRows(t, f.db, "cards"))
}

// ============================================================================
// Advance
// ============================================================================

func TestAdvance_ThroughBoard(t *testing.T) {
	t.Parallel()
	f := setup(t)
	ctx := context.Background()
	id := f.createCard(t, "c1")

	require.NoError(t, f.svc.Advance(ctx, id, f.layout))
	assert.Equal(t, f.doing.ID, testutil.GetCard(t, f.db, id).ColumnID)

	require.NoError(t, f.svc.Advance(ctx, id, f.layout))
	assert.Equal(t, f.done.ID, testutil.GetCard(t, f.db, id).ColumnID)

	err := f.svc.Advance(ctx, id, f.layout)
	requireKind(t, err, models.ErrAlreadyFinished)
	assert.Equal(t, f.done.ID, testutil.GetCard(t, f.db, id).ColumnID)
}

func TestAdvance_BlockedCard(t *testing.T) {
	t.Parallel()
	f := setup(t)
	ctx := context.Background()
	id := f.createCard(t, "c2")

	require.NoError(t, f.svc.Advance(ctx, id, f.layout))
	require.NoError(t, f.svc.Block(ctx, id, "waiting on vendor", f.layout))

	err := f.svc.Advance(ctx, id, f.layout)
	requireKind(t, err, models.ErrBlockedConflict)
	assert.Equal(t, f.doing.ID, testutil.GetCard(t, f.db, id).ColumnID)

	require.NoError(t, f.svc.Unblock(ctx, id, "resolved"))
	assert.False(t, testutil.GetCard(t, f.db, id).Blocked)

	require.NoError(t, f.svc.Advance(ctx, id, f.layout))
	assert.Equal(t, f.done.ID, testutil.GetCard(t, f.db, id).ColumnID)
}

func TestAdvance_NotFound(t *testing.T) {
	t.Parallel()
	f := setup(t)

	err := f.svc.Advance(context.Background(), types.CardID(404), f.layout)
	requireKind(t, err, models.ErrNotFound)
}

func TestAdvance_InvalidID(t *testing.T) {
	t.Parallel()
	f := setup(t)

	err := f.svc.Advance(context.Background(), types.CardID(0), f.layout)
	assert.ErrorIs(t, err, ErrInvalidCardID)
}

func TestAdvance_CrossBoardReference(t *testing.T) {
	t.Parallel()
	f := setup(t)
	id := f.createCard(t, "elsewhere")

	other := testutil.CreateTestBoard(t, f.db, "Other Board")

	err := f.svc.Advance(context.Background(), id, other.Layout())
	requireKind(t, err, models.ErrCrossBoardReference)
	assert.Equal(t, f.todo.ID, testutil.GetCard(t, f.db, id).ColumnID)
}

func TestAdvance_NoSuccessorColumn(t *testing.T) {
	t.Parallel()
	f := setup(t)
	id := f.createCard(t, "gap")

	// a layout with a hole after the initial column
	layout := models.ColumnLayout{
		f.todo,
		{ID: f.done.ID, Order: 2, Kind: models.KindFinal},
	}

	err := f.svc.Advance(context.Background(), id, layout)
	requireKind(t, err, models.ErrNoSuccessorColumn)
}

func TestAdvance_CancelledCard(t *testing.T) {
	t.Parallel()
	f := setup(t)
	ctx := context.Background()
	id := f.createCard(t, "abandoned")

	require.NoError(t, f.svc.Cancel(ctx, id, f.cancels.ID, f.layout))

	err := f.svc.Advance(ctx, id, f.layout)
	requireKind(t, err, models.ErrInvalidColumnKind)
	assert.Contains(t, err.Error(), "cancelled")
}

// ============================================================================
// Cancel
// ============================================================================

func TestCancel(t *testing.T) {
	t.Parallel()
	f := setup(t)
	id := f.createCard(t, "drop me")

	require.NoError(t, f.svc.Cancel(context.Background(), id, f.cancels.ID, f.layout))
	assert.Equal(t, f.cancels.ID, testutil.GetCard(t, f.db, id).ColumnID)
}

func TestCancel_Rejections(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("blocked", func(t *testing.T) {
		f := setup(t)
		id := f.createCard(t, "blocked")
		require.NoError(t, f.svc.Block(ctx, id, "stuck", f.layout))

		requireKind(t, f.svc.Cancel(ctx, id, f.cancels.ID, f.layout), models.ErrBlockedConflict)
	})

	t.Run("finished", func(t *testing.T) {
		f := setup(t)
		id := f.createCard(t, "finished")
		require.NoError(t, f.svc.Advance(ctx, id, f.layout))
		require.NoError(t, f.svc.Advance(ctx, id, f.layout))

		requireKind(t, f.svc.Cancel(ctx, id, f.cancels.ID, f.layout), models.ErrAlreadyFinished)
	})

	t.Run("already cancelled", func(t *testing.T) {
		f := setup(t)
		id := f.createCard(t, "twice")
		require.NoError(t, f.svc.Cancel(ctx, id, f.cancels.ID, f.layout))

		requireKind(t, f.svc.Cancel(ctx, id, f.cancels.ID, f.layout), models.ErrInvalidColumnKind)
	})

	t.Run("no successor", func(t *testing.T) {
		f := setup(t)
		id := f.createCard(t, "stuck")
		layout := models.ColumnLayout{f.todo, {ID: f.cancels.ID, Order: 5, Kind: models.KindCancel}}

		err := f.svc.Cancel(ctx, id, f.cancels.ID, layout)
		requireKind(t, err, models.ErrNoSuccessorColumn)
		assert.Contains(t, err.Error(), "no successor")
	})

	t.Run("target not on board", func(t *testing.T) {
		f := setup(t)
		id := f.createCard(t, "wrong board")
		other := testutil.CreateTestBoard(t, f.db, "Other")

		requireKind(t, f.svc.Cancel(ctx, id, other.Columns[3].ID, f.layout), models.ErrCrossBoardReference)
	})

	t.Run("target not a cancel column", func(t *testing.T) {
		f := setup(t)
		id := f.createCard(t, "wrong kind")

		requireKind(t, f.svc.Cancel(ctx, id, f.done.ID, f.layout), models.ErrInvalidColumnKind)
		assert.Equal(t, f.todo.ID, testutil.GetCard(t, f.db, id).ColumnID)
	})
}

// ============================================================================
// Block / Unblock
// ============================================================================

func TestBlockUnblock_History(t *testing.T) {
	t.Parallel()
	f := setup(t)
	ctx := context.Background()
	id := f.createCard(t, "history")

	before := len(f.blockHistory(t, id))

	require.NoError(t, f.svc.Block(ctx, id, "waiting", f.layout))
	card := testutil.GetCard(t, f.db, id)
	assert.True(t, card.Blocked)
	assert.Equal(t, "waiting", card.BlockReason)

	require.NoError(t, f.svc.Unblock(ctx, id, "done waiting"))
	card = testutil.GetCard(t, f.db, id)
	assert.False(t, card.Blocked)
	assert.Empty(t, card.BlockReason)

	assert.Len(t, f.blockHistory(t, id), before+2)
}

func TestBlock_AlreadyBlocked(t *testing.T) {
	t.Parallel()
	f := setup(t)
	ctx := context.Background()
	id := f.createCard(t, "double block")

	require.NoError(t, f.svc.Block(ctx, id, "first", f.layout))

	requireKind(t, f.svc.Block(ctx, id, "second", f.layout), models.ErrBlockedConflict)
	assert.Len(t, f.blockHistory(t, id), 1)
	assert.Equal(t, "first", testutil.GetCard(t, f.db, id).BlockReason)
}

func TestBlock_TerminalColumns(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("final", func(t *testing.T) {
		f := setup(t)
		id := f.createCard(t, "done")
		require.NoError(t, f.svc.Advance(ctx, id, f.layout))
		require.NoError(t, f.svc.Advance(ctx, id, f.layout))

		requireKind(t, f.svc.Block(ctx, id, "too late", f.layout), models.ErrInvalidColumnKind)
	})

	t.Run("cancel", func(t *testing.T) {
		f := setup(t)
		id := f.createCard(t, "gone")
		require.NoError(t, f.svc.Cancel(ctx, id, f.cancels.ID, f.layout))

		requireKind(t, f.svc.Block(ctx, id, "too late", f.layout), models.ErrInvalidColumnKind)
	})
}

func TestBlock_Validation(t *testing.T) {
	t.Parallel()
	f := setup(t)
	id := f.createCard(t, "reasons")

	assert.ErrorIs(t, f.svc.Block(context.Background(), id, "  ", f.layout), ErrEmptyReason)
	assert.ErrorIs(t, f.svc.Unblock(context.Background(), id, ""), ErrEmptyReason)
	assert.ErrorIs(t, f.svc.Block(context.Background(), types.CardID(-1), "x", f.layout), ErrInvalidCardID)

	err := f.svc.Unblock(context.Background(), id, "")
	assert.Nil(t, models.KindOf(err))
}

func TestUnblock_NotBlocked(t *testing.T) {
	t.Parallel()
	f := setup(t)
	id := f.createCard(t, "free")
	before := testutil.GetCard(t, f.db, id)

	requireKind(t, f.svc.Unblock(context.Background(), id, "nothing"), models.ErrBlockedConflict)

	after := testutil.GetCard(t, f.db, id)
	assert.Equal(t, before, after, "a rejected unblock must not touch the card")
	assert.Empty(t, f.blockHistory(t, id))
}

// ============================================================================
// Storage failures
// ============================================================================

// wrappingRunner runs the real transaction with a decorated gateway.
type wrappingRunner struct {
	inner *database.Transactor
	wrap  func(database.Gateway) database.Gateway
}

func (r wrappingRunner) WithinTx(ctx context.Context, op string, fn database.TxFunc) error {
	return r.inner.WithinTx(ctx, op, func(ctx context.Context, gw database.Gateway) error {
		return fn(ctx, r.wrap(gw))
	})
}

// failingGateway lets RecordBlock write and then reports a failure.
type failingGateway struct {
	database.Gateway
}

func (g failingGateway) RecordBlock(ctx context.Context, cardID types.CardID, reason string, version int64) error {
	if err := g.Gateway.RecordBlock(ctx, cardID, reason, version); err != nil {
		return err
	}
	return errors.New("connection reset")
}

// staleGateway hands out cards as they were one write ago.
type staleGateway struct {
	database.Gateway
}

func (g staleGateway) FindCardByID(ctx context.Context, id types.CardID) (*models.Card, error) {
	card, err := g.Gateway.FindCardByID(ctx, id)
	if err == nil {
		card.Version--
	}
	return card, err
}

func TestBlock_StorageFailureRollsBack(t *testing.T) {
	t.Parallel()
	f := setup(t)
	id := f.createCard(t, "fragile")

	svc := NewService(wrappingRunner{
		inner: database.NewTransactor(f.db),
		wrap:  func(gw database.Gateway) database.Gateway { return failingGateway{gw} },
	})
	err := svc.Block(context.Background(), id, "will fail", f.layout)

	requireKind(t, err, models.ErrStorageFailure)
	assert.False(t, testutil.GetCard(t, f.db, id).Blocked)
	assert.Empty(t, f.blockHistory(t, id))
}

func TestAdvance_StaleCard(t *testing.T) {
	t.Parallel()
	f := setup(t)
	id := f.createCard(t, "raced")

	svc := NewService(wrappingRunner{
		inner: database.NewTransactor(f.db),
		wrap:  func(gw database.Gateway) database.Gateway { return staleGateway{gw} },
	})
	err := svc.Advance(context.Background(), id, f.layout)

	requireKind(t, err, models.ErrStaleCard)
	card := testutil.GetCard(t, f.db, id)
	assert.Equal(t, f.todo.ID, card.ColumnID)
	assert.Equal(t, int64(0), card.Version)
}
