package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// TaskListRepo handles pure data access for task lists
type TaskListRepo struct {
	db *sql.DB
}

// NewTaskListRepo creates a new task list repository
func NewTaskListRepo(db *sql.DB) *TaskListRepo {
	return &TaskListRepo{db: db}
}

// Create inserts a new task list
func (r *TaskListRepo) Create(ctx context.Context, name string, createdAt time.Time) (TaskListRecord, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO task_lists (name, created_at) VALUES (?, ?)`,
		name, createdAt.UTC(),
	)
	if err != nil {
		return TaskListRecord{}, fmt.Errorf("failed to create task list: %w", translateError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return TaskListRecord{}, fmt.Errorf("failed to read task list id: %w", err)
	}

	return TaskListRecord{ID: id, Name: name, CreatedAt: createdAt.UTC()}, nil
}

// FindByID retrieves a task list by ID
func (r *TaskListRepo) FindByID(ctx context.Context, id int64) (TaskListRecord, error) {
	return findTaskList(ctx, r.db, id)
}

// FindAll retrieves all task lists ordered by id
func (r *TaskListRepo) FindAll(ctx context.Context) ([]TaskListRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at FROM task_lists ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get task lists: %w", err)
	}
	defer func() { _ = rows.Close() }()

	lists := []TaskListRecord{}
	for rows.Next() {
		var rec TaskListRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task list: %w", err)
		}
		rec.CreatedAt = rec.CreatedAt.UTC()
		lists = append(lists, rec)
	}
	return lists, rows.Err()
}

func findTaskList(ctx context.Context, q querier, id int64) (TaskListRecord, error) {
	var rec TaskListRecord
	err := q.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM task_lists WHERE id = ?`, id,
	).Scan(&rec.ID, &rec.Name, &rec.CreatedAt)
	if err != nil {
		return TaskListRecord{}, fmt.Errorf("task list %d: %w", id, translateError(err))
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	return rec, nil
}
