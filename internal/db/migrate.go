package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS updates (
		id          TEXT PRIMARY KEY,
		user_email  TEXT NOT NULL,
		week        TEXT NOT NULL,
		phase       TEXT NOT NULL
		            CHECK(phase IN ('beginning_of_week','end_of_week')),
		summary     TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_updates_user_email ON updates(user_email)`,

	`CREATE INDEX IF NOT EXISTS idx_updates_week ON updates(week)`,
}
