package task

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todolist/internal/cli"
	"github.com/thenoetrevino/todolist/internal/cli/handler"
	"github.com/thenoetrevino/todolist/internal/types"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Long:  "Display all details of a task including its labels, with the description rendered as markdown.",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.SimpleCommand(handler.Func(runShow)),
	}

	addOutputFlags(cmd)
	return cmd
}

func runShow(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := args.PositionalID(0, "task ID")
	if err != nil {
		return nil, err
	}

	task, err := args.CLI.App.TaskService.GetTaskByID(ctx, types.TaskID(id))
	if err != nil {
		return nil, err
	}
	return cli.NewTaskView(task), nil
}
