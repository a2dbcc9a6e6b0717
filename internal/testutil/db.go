package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/taskboard/internal/database"
	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/types"
)

// SetupTestDB creates an in-memory database with the full schema applied.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath, nil)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateTestBoard stores a board with the columns
// Todo (INITIAL), Doing (PENDING), Done (FINAL), Cancelled (CANCEL).
func CreateTestBoard(t *testing.T, db *sql.DB, name string) *models.Board {
	t.Helper()
	return CreateTestBoardWithColumns(t, db, name, []*models.Column{
		{Name: "Todo", Order: 0, Kind: models.KindInitial},
		{Name: "Doing", Order: 1, Kind: models.KindPending},
		{Name: "Done", Order: 2, Kind: models.KindFinal},
		{Name: "Cancelled", Order: 3, Kind: models.KindCancel},
	})
}

// CreateTestBoardWithColumns stores a board with the given columns as is,
// bypassing layout validation.
func CreateTestBoardWithColumns(t *testing.T, db *sql.DB, name string, columns []*models.Column) *models.Board {
	t.Helper()
	ctx := context.Background()
	repo := database.NewRepository(db)

	board := &models.Board{Name: name, Columns: columns}
	if err := repo.InsertBoard(ctx, board); err != nil {
		t.Fatalf("Failed to create test board: %v", err)
	}
	for _, col := range board.Columns {
		if err := repo.InsertColumn(ctx, col, board.ID); err != nil {
			t.Fatalf("Failed to create test column %q: %v", col.Name, err)
		}
	}
	return board
}

// CreateTestCard stores an unblocked card in columnID and returns its ID
func CreateTestCard(t *testing.T, db *sql.DB, columnID types.ColumnID, title string) types.CardID {
	t.Helper()
	card := &models.Card{Title: title, Description: "Test description", ColumnID: columnID}
	if err := database.NewRepository(db).InsertCard(context.Background(), card); err != nil {
		t.Fatalf("Failed to create test card: %v", err)
	}
	return card.ID
}

// GetCard loads a card straight from the database
func GetCard(t *testing.T, db *sql.DB, id types.CardID) *models.Card {
	t.Helper()
	card, err := database.NewRepository(db).FindCardByID(context.Background(), id)
	if err != nil {
		t.Fatalf("Failed to load card %d: %v", id, err)
	}
	return card
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}
