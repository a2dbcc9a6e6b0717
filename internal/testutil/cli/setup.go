package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/taskboard/internal/app"
	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/testutil"
	"github.com/thenoetrevino/taskboard/internal/types"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// It lives in its own package so service tests can import testutil without
// pulling in the CLI.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appInstance := app.New(db)
	t.Cleanup(func() { _ = appInstance.Close() })

	return db, appInstance
}

// CreateTestBoard wraps testutil.CreateTestBoard for CLI tests.
// Columns: Todo, Doing, Done, Cancelled.
func CreateTestBoard(t *testing.T, db *sql.DB, name string) *models.Board {
	t.Helper()
	return testutil.CreateTestBoard(t, db, name)
}

// CreateTestCard wraps testutil.CreateTestCard for CLI tests
func CreateTestCard(t *testing.T, db *sql.DB, columnID types.ColumnID, title string) types.CardID {
	t.Helper()
	return testutil.CreateTestCard(t, db, columnID, title)
}
