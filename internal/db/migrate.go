package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Plans are stored as whole JSON documents so fields the typed model does
// not know about survive a round trip. position keeps insertion order.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		position INTEGER PRIMARY KEY,
		id       TEXT NOT NULL DEFAULT '',
		body     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plans_id ON plans(id)`,

	`CREATE TABLE IF NOT EXISTS goals (
		year TEXT PRIMARY KEY,
		body TEXT NOT NULL
	)`,
}
