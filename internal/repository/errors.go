package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jayadityadev/social-media-api/internal/models"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// classify maps constraint violations from either driver onto the model
// error taxonomy. Unique violations become ErrConflict; foreign key
// violations mean the referenced row is gone and become ErrNotFound.
func classify(err error, what string) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return fmt.Errorf("%w: %s: %s", models.ErrConflict, what, pqErr.Message)
		case "foreign_key_violation":
			return fmt.Errorf("%w: %s: %s", models.ErrNotFound, what, pqErr.Message)
		}
		return err
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %s", models.ErrConflict, what)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w: %s", models.ErrNotFound, what)
		case sqlite3.SQLITE_CONSTRAINT:
			if strings.Contains(liteErr.Error(), "FOREIGN KEY") {
				return fmt.Errorf("%w: %s", models.ErrNotFound, what)
			}
			return fmt.Errorf("%w: %s", models.ErrConflict, what)
		}
	}
	return err
}

// notFound converts sql.ErrNoRows into models.ErrNotFound
func notFound(err error, format string, args ...any) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: "+format, append([]any{models.ErrNotFound}, args...)...)
	}
	return err
}

// expectRow turns a statement that touched no rows into models.ErrNotFound
func expectRow(res sql.Result, format string, args ...any) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: "+format, append([]any{models.ErrNotFound}, args...)...)
	}
	return nil
}
