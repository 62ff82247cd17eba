package db

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order on every open. Statements must be
// idempotent (IF NOT EXISTS) since the migration system re-runs them all.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS engine_state (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_engine_state_updated_at
		ON engine_state(updated_at)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
