package store

import (
	"github.com/MKhiriev/acme-store/migrations"
)

// Migrate applies the embedded schema migrations to the wrapped connection.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// ResetSchema destructively drops and recreates all tables. Every structural
// invariant (unique username, unique (user_id, product_id) pair, foreign
// keys) is back in place and every table is empty when it returns.
func (db *DB) ResetSchema() error {
	return migrations.Reset(db.DB)
}
