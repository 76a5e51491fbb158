// Package migrations owns the relational schema of the store. The embedded
// goose migrations create the users, products and favorites tables together
// with every structural invariant: UUID primary keys, the unique username
// constraint, the unique (user_id, product_id) pair and both foreign keys.
//
// Goose runs each migration inside a single transaction, so a failed
// statement aborts the whole schema change.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations to db.
func Migrate(db *sql.DB) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Reset destructively recreates the schema: all migrations are rolled back
// and re-applied, leaving every table empty with all constraints in place.
// Any existing data is lost. Running Reset twice in a row leaves the store
// in the same state both times.
func Reset(db *sql.DB) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Reset(db, "."); err != nil {
		return fmt.Errorf("migration reset error: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
