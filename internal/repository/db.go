package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported values for the DB_DRIVER setting
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Open connects to the database identified by driver and dsn
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	switch driver {
	case DriverPostgres:
		db, err := sqlx.ConnectContext(ctx, DriverPostgres, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		return db, nil
	case DriverSQLite:
		return openSQLite(ctx, dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func openSQLite(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(DriverSQLite, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	// One connection: pragmas are per connection and an in-memory
	// database only lives as long as its connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite: %w", err)
	}
	return db, nil
}

// dialect captures the SQL differences between the supported stores
type dialect struct {
	name       string
	schemaFile string
	// substring renders a case sensitive "column contains ?" predicate
	substring func(column string) string
}

var dialects = map[string]dialect{
	DriverPostgres: {
		name:       DriverPostgres,
		schemaFile: "postgres.sql",
		substring:  func(column string) string { return "strpos(" + column + ", ?) > 0" },
	},
	DriverSQLite: {
		name:       DriverSQLite,
		schemaFile: "sqlite.sql",
		substring:  func(column string) string { return "instr(" + column + ", ?) > 0" },
	},
}

func dialectFor(driver string) (dialect, error) {
	d, ok := dialects[driver]
	if !ok {
		return dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
	return d, nil
}

// now is the creation timestamp written by inserts, at the precision
// postgres keeps so that returned and re-read values agree.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
