package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER
// TABLE additions tolerate "duplicate column name" since the migration
// system re-runs every statement on startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		username      TEXT PRIMARY KEY,
		password_hash TEXT NOT NULL,
		created_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS learning_paths (
		id                  INTEGER PRIMARY KEY AUTOINCREMENT,
		username            TEXT NOT NULL REFERENCES users(username),
		topic               TEXT NOT NULL,
		skill_level         TEXT NOT NULL DEFAULT '',
		total_duration_text TEXT NOT NULL DEFAULT '',
		path_data           TEXT NOT NULL,
		parsed              INTEGER NOT NULL DEFAULT 1,
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_learning_paths_username ON learning_paths(username)`,

	`CREATE TABLE IF NOT EXISTS feedback (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		path_id  INTEGER NOT NULL REFERENCES learning_paths(id),
		username TEXT NOT NULL REFERENCES users(username),
		rating   INTEGER NOT NULL CHECK(rating IN (1, -1)),
		UNIQUE(path_id, username)
	)`,

	`CREATE TABLE IF NOT EXISTS task_progress (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		username        TEXT NOT NULL REFERENCES users(username),
		path_id         INTEGER NOT NULL REFERENCES learning_paths(id),
		task_identifier TEXT NOT NULL,
		completed       INTEGER NOT NULL DEFAULT 0,
		UNIQUE(username, path_id, task_identifier)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_task_progress_path ON task_progress(username, path_id)`,

	// Recovery question support: optional question/answer-hash pair on users.
	`ALTER TABLE users ADD COLUMN secret_question TEXT`,
	`ALTER TABLE users ADD COLUMN secret_answer_hash TEXT`,
}
