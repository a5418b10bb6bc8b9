package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
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
	`CREATE TABLE IF NOT EXISTS reference_cache (
		kind       TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		fetched_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS submissions (
		id         TEXT PRIMARY KEY,
		urn        TEXT NOT NULL,
		case_id    TEXT NOT NULL DEFAULT '',
		status     TEXT NOT NULL DEFAULT 'pending'
		           CHECK(status IN ('pending','submitted','failed')),
		payload    TEXT NOT NULL,
		error      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_submissions_urn ON submissions(urn)`,
	`CREATE INDEX IF NOT EXISTS idx_submissions_created ON submissions(created_at)`,
	`ALTER TABLE submissions ADD COLUMN defendants INTEGER NOT NULL DEFAULT 0`,
}
