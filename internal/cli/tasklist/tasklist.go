// Package tasklist holds all cli commands related to task lists
// e.g., todolist list ...
package tasklist

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todolist/internal/cli"
	"github.com/thenoetrevino/todolist/internal/cli/handler"
)

// ListCmd returns the task list parent command
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"lists"},
		Short:   "Manage task lists",
	}

	cmd.AddCommand(createCmd())
	cmd.AddCommand(listCmd())

	return cmd
}

func createCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task list",
		Long: `Create a task list that tasks can be added to.

Examples:
  todolist list create --name="Home"
  LIST_ID=$(todolist list create --name="Home" --quiet)
`,
		RunE: handler.Command(handler.Func(runCreate), handler.RequireFlags("name")),
	}

	cmd.Flags().String("name", "", "Task list name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
	return cmd
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List task lists",
		RunE:  handler.SimpleCommand(handler.Func(runList)),
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
	return cmd
}

func runCreate(ctx context.Context, args *handler.Arguments) (any, error) {
	list, err := args.CLI.App.TaskListService.CreateTaskList(ctx, args.GetString("name", ""))
	if err != nil {
		return nil, err
	}
	return cli.NewTaskListView(list), nil
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	lists, err := args.CLI.App.TaskListService.GetAllTaskLists(ctx)
	if err != nil {
		return nil, err
	}
	return cli.NewTaskListViews(lists), nil
}
