package app

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/todolist/internal/database"
	labelservice "github.com/thenoetrevino/todolist/internal/services/label"
	taskservice "github.com/thenoetrevino/todolist/internal/services/task"
	tasklistservice "github.com/thenoetrevino/todolist/internal/services/tasklist"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo   *database.Repository
	logger *slog.Logger

	// Service layer (business logic)
	TaskService     taskservice.Service
	LabelService    labelservice.Service
	TaskListService tasklistservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.applyDefaults()

	repo := database.NewRepository(db)
	return &App{
		repo:            repo,
		logger:          cfg.logger,
		TaskService:     taskservice.NewService(repo.Tasks, repo.Labels, repo.TaskLists, cfg.now),
		LabelService:    labelservice.NewService(repo.Labels, cfg.now),
		TaskListService: tasklistservice.NewService(repo.TaskLists, cfg.now),
	}
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Ping reports whether the database is reachable
func (a *App) Ping(ctx context.Context) error {
	return a.repo.Ping(ctx)
}

// Migrate brings the database schema up to date
func (a *App) Migrate(ctx context.Context) error {
	return a.repo.Migrate(ctx)
}

// Close performs cleanup of application resources.
// The database handle is owned by the caller and is not closed here.
func (a *App) Close() error {
	return nil
}
