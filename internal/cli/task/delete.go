package task

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todolist/internal/cli"
	"github.com/thenoetrevino/todolist/internal/cli/handler"
	"github.com/thenoetrevino/todolist/internal/types"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Long:  "Delete a task. Deleting a task that does not exist succeeds.",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.SimpleCommand(handler.Func(runDelete)),
	}

	addOutputFlags(cmd)
	return cmd
}

func runDelete(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := args.PositionalID(0, "task ID")
	if err != nil {
		return nil, err
	}

	if err := args.CLI.App.TaskService.DeleteTask(ctx, types.TaskID(id)); err != nil {
		return nil, err
	}
	return &cli.Message{ID: id, Text: fmt.Sprintf("Task %d deleted", id)}, nil
}
