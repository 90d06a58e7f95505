// Package cmd wires the cobra command tree of the todolist binary
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todolist/internal/cli"
	"github.com/thenoetrevino/todolist/internal/cli/handler"
	"github.com/thenoetrevino/todolist/internal/cli/label"
	"github.com/thenoetrevino/todolist/internal/cli/task"
	"github.com/thenoetrevino/todolist/internal/cli/tasklist"
	"github.com/thenoetrevino/todolist/internal/config"
)

// NewRootCmd builds the full command tree. The CLI it opens is handed to
// onOpen so the caller can close it once the command has finished.
func NewRootCmd(onOpen func(*cli.CLI)) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "todolist",
		Short: "todolist - tasks, labels and task lists over HTTP and the command line",
		Long: `todolist manages tasks grouped in task lists and tagged with labels.

Run 'todolist serve' to expose the HTTP API, or use the task, label and list
commands to work with the same database directly.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := cli.GetCLIFromContext(ctx); err == nil {
				return nil // injected by the caller
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return handler.Fail(cli.NewFormatter(cmd), &cli.ExitCodeError{Code: cli.ExitError, Err: err})
			}
			c, err := cli.NewCLI(ctx, cfg)
			if err != nil {
				return handler.Fail(cli.NewFormatter(cmd), &cli.ExitCodeError{Code: cli.ExitError, Err: err})
			}
			if onOpen != nil {
				onOpen(c)
			}
			cmd.SetContext(cli.WithCLI(ctx, c))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/todolist/config.yaml)")

	root.AddCommand(serveCmd())
	root.AddCommand(migrateCmd())
	root.AddCommand(task.TaskCmd())
	root.AddCommand(label.LabelCmd())
	root.AddCommand(tasklist.ListCmd())

	return root
}

// Execute runs the command line and returns the process exit code
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opened *cli.CLI
	root := NewRootCmd(func(c *cli.CLI) { opened = c })
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)

	if opened != nil {
		if closeErr := opened.Close(); closeErr != nil {
			slog.Error("failed to close CLI", "error", closeErr)
		}
	}

	if err == nil {
		return cli.ExitSuccess
	}

	var exitErr *cli.ExitCodeError
	if errors.As(err, &exitErr) {
		// already reported by the command
		return exitErr.Code
	}

	// cobra usage errors: unknown command or flag, missing required flag
	fmt.Fprintf(stderr, "Error: %v\nRun 'todolist --help' for usage.\n", err)
	return cli.ExitUsage
}
