package task

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todolist/internal/cli"
	"github.com/thenoetrevino/todolist/internal/cli/handler"
	taskservice "github.com/thenoetrevino/todolist/internal/services/task"
	"github.com/thenoetrevino/todolist/internal/types"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task",
		Long: `Update the fields of an existing task. Flags that are not given keep
their current value. --labels replaces the whole label set.

Examples:
  todolist task update 3 --status=done
  todolist task update 3 --title="Buy oat milk" --labels=groceries
  todolist task update 3 --clear-due
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.SimpleCommand(handler.Func(runUpdate)),
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description in markdown (use - for stdin)")
	cmd.Flags().String("due", "", "New due date, YYYY-MM-DD or RFC 3339")
	cmd.Flags().Bool("clear-due", false, "Remove the due date")
	cmd.Flags().String("status", "", "Status: todo, in-progress, done")
	cmd.Flags().String("priority", "", "Priority: low, medium, high")
	cmd.Flags().StringSlice("labels", nil, "Replace labels with these existing label names")
	cmd.MarkFlagsMutuallyExclusive("due", "clear-due")

	addOutputFlags(cmd)
	return cmd
}

func runUpdate(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := args.PositionalID(0, "task ID")
	if err != nil {
		return nil, err
	}
	svc := args.CLI.App.TaskService

	current, err := svc.GetTaskByID(ctx, types.TaskID(id))
	if err != nil {
		return nil, err
	}

	req := taskservice.UpdateTaskRequest{
		TaskID:      current.ID,
		Title:       args.GetString("title", current.Title),
		Description: current.Description,
		DueDate:     current.DueDate,
		Status:      current.Status,
		Priority:    current.Priority,
		LabelNames:  make([]string, 0, len(current.Labels)),
	}
	for _, l := range current.Labels {
		req.LabelNames = append(req.LabelNames, l.Name)
	}

	if args.Has("description") {
		if req.Description, err = args.Description(); err != nil {
			return nil, err
		}
	}
	if args.Has("due") {
		if req.DueDate, err = args.DueDate(); err != nil {
			return nil, err
		}
	}
	if args.GetBool("clear-due") {
		req.DueDate = nil
	}
	if args.Has("status") {
		if req.Status, err = args.Status(); err != nil {
			return nil, err
		}
	}
	if args.Has("priority") {
		if req.Priority, err = args.Priority(); err != nil {
			return nil, err
		}
	}
	if args.Has("labels") {
		req.LabelNames = args.Labels()
	}

	if err := svc.UpdateTask(ctx, req); err != nil {
		return nil, err
	}

	updated, err := svc.GetTaskByID(ctx, current.ID)
	if err != nil {
		return nil, err
	}
	return cli.NewTaskView(updated), nil
}
