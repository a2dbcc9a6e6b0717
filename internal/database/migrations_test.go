package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_AppliesSchema(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	for _, table := range []string{"boards", "columns", "cards", "blocks"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}

	version, dirty, err := SchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)
}

func TestInitDB_ForeignKeysEnabled(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	var enabled int
	require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)
}

func TestInitDB_CreatesDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "taskboard.db")
	db, err := InitDB(context.Background(), path, nil)
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, path)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	require.NoError(t, RunMigrations(db), "second run should be a no-op")
	require.NoError(t, RunMigrations(db), "third run should be a no-op")
}

func TestSchema_RejectsUnknownKind(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	_, err := db.Exec(`INSERT INTO boards (name) VALUES ('b')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO columns (board_id, name, position, kind) VALUES (1, 'x', 0, 'ARCHIVED')`)
	assert.Error(t, err, "kind CHECK constraint should reject unknown kinds")
}

func TestSchema_UniquePositionPerBoard(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	_, err := db.Exec(`INSERT INTO boards (name) VALUES ('b')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO columns (board_id, name, position, kind) VALUES (1, 'a', 0, 'INITIAL')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO columns (board_id, name, position, kind) VALUES (1, 'b', 0, 'FINAL')`)
	assert.Error(t, err)
}
