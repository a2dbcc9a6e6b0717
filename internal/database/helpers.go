package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/taskboard/internal/models"
)

// nowUTC is the timestamp source for inserted rows.
var nowUTC = func() time.Time {
	return time.Now().UTC()
}

// NullStringToString converts sql.NullString to string.
// Returns empty string if the value is not valid.
func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// lookupErr maps sql.ErrNoRows to models.ErrNotFound; other errors are
// wrapped with what was being looked up.
func lookupErr(err error, entity string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", entity, id, models.ErrNotFound)
	}
	return fmt.Errorf("failed to get %s %d: %w", entity, id, err)
}

// expectOneRow turns a zero-row update into the given error.
func expectOneRow(res sql.Result, onNone error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return onNone
	}
	return nil
}
