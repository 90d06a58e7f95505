package database

import (
	"context"
	"database/sql"
)

// Repository groups the per-entity repositories over one connection.
type Repository struct {
	db *sql.DB

	Tasks     *TaskRepo
	Labels    *LabelRepo
	TaskLists *TaskListRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db:        db,
		Tasks:     NewTaskRepo(db),
		Labels:    NewLabelRepo(db),
		TaskLists: NewTaskListRepo(db),
	}
}

// Ping checks that the database is reachable
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Migrate re-applies the schema; every statement is idempotent
func (r *Repository) Migrate(ctx context.Context) error {
	return Migrate(ctx, r.db)
}
