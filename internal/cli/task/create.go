package task

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todolist/internal/cli"
	"github.com/thenoetrevino/todolist/internal/cli/handler"
	taskservice "github.com/thenoetrevino/todolist/internal/services/task"
	"github.com/thenoetrevino/todolist/internal/types"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task in a task list.

Examples:
  # Simple task (human-readable output)
  todolist task create --title="Buy milk" --list=1

  # JSON output for agents
  todolist task create --title="Buy milk" --list=1 --json

  # Quiet mode for bash capture
  TASK_ID=$(todolist task create --title="Buy milk" --list=1 --quiet)

  # Full example with all options
  todolist task create \
    --title="File taxes" \
    --description="Gather **all** receipts first" \
    --due=2025-04-15 \
    --status=in-progress \
    --priority=high \
    --labels=urgent,home \
    --list=1
`,
		RunE: handler.Command(handler.Func(runCreate), handler.RequireFlags("title")),
	}

	// Required flags
	cmd.Flags().String("title", "", "Task title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().Int("list", 0, "Task list ID (required)")
	if err := cmd.MarkFlagRequired("list"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Task description in markdown (use - for stdin)")
	cmd.Flags().String("due", "", "Due date, YYYY-MM-DD or RFC 3339")
	cmd.Flags().String("status", "", "Status: todo, in-progress, done (default todo)")
	cmd.Flags().String("priority", "", "Priority: low, medium, high (default medium)")
	cmd.Flags().StringSlice("labels", nil, "Existing label names to attach")

	addOutputFlags(cmd)
	return cmd
}

func runCreate(ctx context.Context, args *handler.Arguments) (any, error) {
	description, err := args.Description()
	if err != nil {
		return nil, err
	}
	due, err := args.DueDate()
	if err != nil {
		return nil, err
	}
	status, err := args.Status()
	if err != nil {
		return nil, err
	}
	priority, err := args.Priority()
	if err != nil {
		return nil, err
	}

	// Resolve the list first for a targeted error
	listID := types.TaskListID(args.GetInt("list", 0))
	if _, err := args.CLI.App.TaskListService.GetTaskListByID(ctx, listID); err != nil {
		return nil, err
	}

	task, err := args.CLI.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		Title:       args.GetString("title", ""),
		Description: description,
		DueDate:     due,
		Status:      status,
		Priority:    priority,
		TaskListID:  listID,
		LabelNames:  args.Labels(),
	})
	if err != nil {
		return nil, err
	}

	return cli.NewTaskView(task), nil
}
