package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todolist/internal/cli"
	"github.com/thenoetrevino/todolist/internal/cli/handler"
	"github.com/thenoetrevino/todolist/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API until interrupted. SIGINT, SIGTERM and SIGQUIT trigger a
graceful shutdown that waits for in-flight requests.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().String("addr", "", "Listen address, overrides server.addr")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return handler.Fail(formatter, err)
	}

	cfg := c.Config.Server
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}

	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		cmd.Context(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	logger := c.App.Logger()
	srv := server.New(cfg, server.Services{
		Tasks:     c.App.TaskService,
		Labels:    c.App.LabelService,
		TaskLists: c.App.TaskListService,
		Ping:      c.App.Ping,
	}, logger)

	logger.Info("todolist server starting", "addr", cfg.Addr, "database", c.Config.Database.Path, "pid", os.Getpid())

	// Blocks until shutdown
	if err := srv.Start(ctx); err != nil {
		return handler.Fail(formatter, err)
	}

	logger.Info("todolist server stopped")
	return nil
}
