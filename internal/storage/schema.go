package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS profile (
			key TEXT PRIMARY KEY,
			level INTEGER DEFAULT 1,
			experience INTEGER DEFAULT 0,
			total_completed INTEGER DEFAULT 0,
			current_streak INTEGER DEFAULT 0,
			longest_streak INTEGER DEFAULT 0,
			last_completed_date TEXT
		);`,
		// Active tasks only. Completing a task deletes the row and writes a
		// history entry, so a task can never be completed twice.
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			text TEXT NOT NULL,
			difficulty TEXT NOT NULL DEFAULT 'easy',
			deadline DATETIME NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			notification_id TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			task_text TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			exp_earned INTEGER NOT NULL,
			deadline DATETIME NOT NULL,
			completed_at DATETIME NOT NULL,
			was_overdue INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_deadline ON tasks(deadline);`,
		`CREATE INDEX IF NOT EXISTS idx_history_completed_at ON history(completed_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
