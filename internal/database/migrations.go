package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied in order. Every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS task_lists (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		due_date DATETIME,
		status TEXT NOT NULL DEFAULT 'TODO',
		priority TEXT NOT NULL DEFAULT 'MEDIUM',
		updated_at DATETIME,
		task_list_id INTEGER NOT NULL,
		FOREIGN KEY (task_list_id) REFERENCES task_lists(id) ON DELETE CASCADE
	)`,
	// The unique indexes are what actually enforce uniqueness. Service
	// pre-checks only produce a more specific error first.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_tasks_title ON tasks(title)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_task_list ON tasks(task_list_id)`,
	`CREATE TABLE IF NOT EXISTS labels (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		color TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_labels_name ON labels(name)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_labels_color ON labels(color)`,
	`CREATE TABLE IF NOT EXISTS task_labels (
		task_id INTEGER NOT NULL,
		label_id INTEGER NOT NULL,
		PRIMARY KEY (task_id, label_id),
		FOREIGN KEY (task_id) REFERENCES tasks(id) ON DELETE CASCADE,
		FOREIGN KEY (label_id) REFERENCES labels(id) ON DELETE CASCADE
	)`,
}

// Migrate creates the database schema if needed
func Migrate(ctx context.Context, db *sql.DB) error {
	return withTx(ctx, db, func(tx *sql.Tx) error {
		for i, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migration step %d: %w", i+1, err)
			}
		}
		return nil
	})
}
