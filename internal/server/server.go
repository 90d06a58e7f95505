// Package server exposes the task, label and task list services over HTTP
// using echo.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/thenoetrevino/todolist/internal/config"
)

// Server wraps the echo instance and its lifecycle
type Server struct {
	echo    *echo.Echo
	cfg     config.ServerConfig
	logger  *slog.Logger
	metrics *Metrics
}

// New builds the HTTP server with middleware and routes installed
func New(cfg config.ServerConfig, svc Services, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	metrics := NewMetrics()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = sonicSerializer{}
	e.HTTPErrorHandler = errorHandler(logger)
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	e.Use(middleware.Recover())
	e.Use(requestID())
	e.Use(requestLogger(logger))
	e.Use(countRequests(metrics))
	e.Use(middleware.Decompress())
	if cfg.BodyLimit != "" {
		e.Use(middleware.BodyLimit(cfg.BodyLimit))
	}

	Register(e, svc, metrics)

	return &Server{echo: e, cfg: cfg, logger: logger, metrics: metrics}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Metrics returns the live request counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start listens on the configured address and blocks until ctx is cancelled,
// then shuts down gracefully within the configured shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.cfg.Addr)
		if err := s.echo.Start(s.cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("http server shutting down", "timeout", s.cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}
