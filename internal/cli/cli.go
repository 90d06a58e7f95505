// Package cli holds the shared state, output formatting and exit codes used
// by every todolist command.
package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/thenoetrevino/todolist/internal/app"
	"github.com/thenoetrevino/todolist/internal/config"
	"github.com/thenoetrevino/todolist/internal/database"
	"github.com/thenoetrevino/todolist/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	db        *sql.DB
	logCloser io.Closer
}

// NewCLI initializes logging and the database described by cfg
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	logCloser, err := logging.Init(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:       app.New(db, app.WithLogger(logging.Logger)),
		Config:    cfg,
		db:        db,
		logCloser: logCloser,
	}, nil
}

// NewFromApp wraps an already built application. The caller keeps ownership
// of the database behind it.
func NewFromApp(a *app.App, cfg *config.Config) *CLI {
	if cfg == nil {
		cfg = config.Default()
	}
	return &CLI{App: a, Config: cfg}
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	var errs []error
	if c.App != nil {
		errs = append(errs, c.App.Close())
	}
	if c.db != nil {
		errs = append(errs, c.db.Close())
	}
	if c.logCloser != nil {
		errs = append(errs, c.logCloser.Close())
	}
	return errors.Join(errs...)
}
