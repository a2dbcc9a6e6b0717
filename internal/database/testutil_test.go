package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/types"
)

// setupTestDB opens an isolated in-memory database with the schema applied.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := InitDB(context.Background(), MemoryPath, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// seedBoard stores a Todo/Doing/Done/Cancelled board and returns it with ids.
func seedBoard(t *testing.T, db *sql.DB) *models.Board {
	t.Helper()
	ctx := context.Background()

	repo := NewRepository(db)
	board := &models.Board{
		Name: "Test Board",
		Columns: []*models.Column{
			{Name: "Todo", Order: 0, Kind: models.KindInitial},
			{Name: "Doing", Order: 1, Kind: models.KindPending},
			{Name: "Done", Order: 2, Kind: models.KindFinal},
			{Name: "Cancelled", Order: 3, Kind: models.KindCancel},
		},
	}
	require.NoError(t, repo.InsertBoard(ctx, board))
	for _, col := range board.Columns {
		require.NoError(t, repo.InsertColumn(ctx, col, board.ID))
	}
	return board
}

// seedCard stores a card in column and returns it.
func seedCard(t *testing.T, db *sql.DB, column types.ColumnID, title string) *models.Card {
	t.Helper()

	card := &models.Card{Title: title, Description: "desc", ColumnID: column}
	require.NoError(t, NewRepository(db).InsertCard(context.Background(), card))
	return card
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}
