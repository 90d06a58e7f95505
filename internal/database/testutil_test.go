package database

import (
	"context"
	"database/sql"
	"testing"
	"time"
)

// setupTestDB creates an in-memory database with the schema applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

var fixedTime = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func createTestTaskList(t *testing.T, db *sql.DB, name string) TaskListRecord {
	t.Helper()
	rec, err := NewTaskListRepo(db).Create(context.Background(), name, fixedTime)
	if err != nil {
		t.Fatalf("Failed to create task list: %v", err)
	}
	return rec
}

func createTestLabel(t *testing.T, db *sql.DB, name, color string) LabelRecord {
	t.Helper()
	rec, err := NewLabelRepo(db).Save(context.Background(), LabelRecord{Name: name, Color: color, CreatedAt: fixedTime})
	if err != nil {
		t.Fatalf("Failed to create label: %v", err)
	}
	return rec
}

func newTaskRecord(title string, listID int64, labels ...LabelRecord) TaskRecord {
	return TaskRecord{
		Title:      title,
		Status:     "TODO",
		Priority:   "MEDIUM",
		UpdatedAt:  sql.NullTime{Time: fixedTime, Valid: true},
		TaskListID: listID,
		Labels:     labels,
	}
}
