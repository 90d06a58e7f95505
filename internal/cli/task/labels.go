package task

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todolist/internal/cli"
	"github.com/thenoetrevino/todolist/internal/cli/handler"
	"github.com/thenoetrevino/todolist/internal/types"
)

// AddLabelCmd returns the task add-label subcommand
func AddLabelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-label <task-id> <label-name>",
		Short: "Attach an existing label to a task",
		Long:  "Attach an existing label to a task. Attaching a label the task already has is a no-op.",
		Args:  cobra.ExactArgs(2),
		RunE:  handler.SimpleCommand(handler.Func(runAddLabel)),
	}
	addOutputFlags(cmd)
	return cmd
}

// RemoveLabelCmd returns the task remove-label subcommand
func RemoveLabelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-label <task-id> <label-name>",
		Short: "Detach a label from a task",
		Args:  cobra.ExactArgs(2),
		RunE:  handler.SimpleCommand(handler.Func(runRemoveLabel)),
	}
	addOutputFlags(cmd)
	return cmd
}

func runAddLabel(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := args.PositionalID(0, "task ID")
	if err != nil {
		return nil, err
	}
	name := args.Args[1]

	if err := args.CLI.App.TaskService.AddLabelToTask(ctx, types.TaskID(id), name); err != nil {
		return nil, err
	}
	return &cli.Message{ID: id, Text: fmt.Sprintf("Label '%s' attached to task %d", name, id)}, nil
}

func runRemoveLabel(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := args.PositionalID(0, "task ID")
	if err != nil {
		return nil, err
	}
	name := args.Args[1]

	if err := args.CLI.App.TaskService.RemoveLabelFromTask(ctx, types.TaskID(id), name); err != nil {
		return nil, err
	}
	return &cli.Message{ID: id, Text: fmt.Sprintf("Label '%s' removed from task %d", name, id)}, nil
}
