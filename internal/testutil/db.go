// Package testutil provides shared fixtures for package tests
package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/todolist/internal/database"
)

// SetupTestDB creates an in-memory database with the full schema.
// The database is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateTestTaskList inserts a task list and returns its ID
func CreateTestTaskList(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	res, err := db.ExecContext(context.Background(),
		"INSERT INTO task_lists (name, created_at) VALUES (?, ?)", name, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test task list: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read task list id: %v", err)
	}
	return int(id)
}

// CreateTestLabel inserts a label and returns its ID
func CreateTestLabel(t *testing.T, db *sql.DB, name, color string) int {
	t.Helper()
	res, err := db.ExecContext(context.Background(),
		"INSERT INTO labels (name, color, created_at) VALUES (?, ?, ?)", name, color, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test label: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read label id: %v", err)
	}
	return int(id)
}
