package database

import (
	"context"
	"time"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	FindByID(ctx context.Context, id int64) (TaskRecord, error)
	FindByTitle(ctx context.Context, title string) (TaskRecord, error)
	FindAll(ctx context.Context) ([]TaskRecord, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	Save(ctx context.Context, rec TaskRecord) (TaskRecord, error)
	DeleteByID(ctx context.Context, id int64) error
}

// TaskStore combines all task operations.
type TaskStore interface {
	TaskReader
	TaskWriter
}

// LabelStore defines label persistence.
type LabelStore interface {
	Save(ctx context.Context, rec LabelRecord) (LabelRecord, error)
	FindByID(ctx context.Context, id int64) (LabelRecord, error)
	FindByName(ctx context.Context, name string) (LabelRecord, error)
	FindByColor(ctx context.Context, color string) (LabelRecord, error)
	FindAll(ctx context.Context) ([]LabelRecord, error)
}

// TaskListStore defines task list persistence.
type TaskListStore interface {
	Create(ctx context.Context, name string, createdAt time.Time) (TaskListRecord, error)
	FindByID(ctx context.Context, id int64) (TaskListRecord, error)
	FindAll(ctx context.Context) ([]TaskListRecord, error)
}

var (
	_ TaskStore     = (*TaskRepo)(nil)
	_ LabelStore    = (*LabelRepo)(nil)
	_ TaskListStore = (*TaskListRepo)(nil)
)
