package repository

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Repository provides database operations
type Repository struct {
	db      *sqlx.DB
	dialect dialect
	log     logrus.FieldLogger
}

// NewRepository initializes a new repository
func NewRepository(db *sqlx.DB, log logrus.FieldLogger) (*Repository, error) {
	d, err := dialectFor(db.DriverName())
	if err != nil {
		return nil, err
	}
	return &Repository{db: db, dialect: d, log: log}, nil
}

// Close releases the connection pool
func (r *Repository) Close() error {
	return r.db.Close()
}

// EnsureSchema creates the users, posts and votes tables if they are missing
func (r *Repository) EnsureSchema(ctx context.Context) error {
	ddl, err := schemaFS.ReadFile("schema/" + r.dialect.schemaFile)
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, string(ddl)); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	r.log.Debugf("Schema ensured for %s", r.dialect.name)
	return nil
}

// Tx exposes the queries available inside a single transaction
type Tx struct {
	tx      *sqlx.Tx
	dialect dialect
}

// WithTx runs fn inside one transaction. The transaction is committed when
// fn returns nil and rolled back on every other exit path, panics included.
func (r *Repository) WithTx(ctx context.Context, reason string, fn func(tx *Tx) error) error {
	sqlTx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction (%s): %w", reason, err)
	}
	defer func() {
		if rbErr := sqlTx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			r.log.Errorf("Transaction rollback failed (%s): %v", reason, rbErr)
		}
	}()

	if err := fn(&Tx{tx: sqlTx, dialect: r.dialect}); err != nil {
		r.log.Debugf("Transaction aborted (%s): %v", reason, err)
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return classify(fmt.Errorf("failed to commit transaction (%s): %w", reason, err), reason)
	}
	r.log.Debugf("Transaction committed (%s)", reason)
	return nil
}
