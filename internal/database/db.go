// Package database handles the SQLite connection, the schema migrations and
// the row-level gateway used by the lifecycle services.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// DefaultPath returns ~/.taskboard/taskboard.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".taskboard", "taskboard.db"), nil
}

var pragmas = []string{
	"PRAGMA foreign_keys = ON",
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
}

// InitDB opens the database at path, creating its directory when needed,
// configures the connection and applies pending migrations. An empty path
// resolves to DefaultPath.
func InitDB(ctx context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	closeOnErr := func(cause error) error {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("error closing db", "error", closeErr)
		}
		return cause
	}

	// One connection: SQLite has a single writer, and an in-memory database
	// only lives as long as the connection that created it.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			logger.Error("failed to configure connection", "pragma", pragma, "error", err)
			return nil, closeOnErr(fmt.Errorf("failed to apply %q: %w", pragma, err))
		}
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, closeOnErr(fmt.Errorf("database ping failed: %w", err))
	}

	if err := RunMigrations(db); err != nil {
		return nil, closeOnErr(fmt.Errorf("failed to run migrations: %w", err))
	}

	logger.Debug("database ready", "path", path)
	return db, nil
}
