package task

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todolist/internal/cli"
	"github.com/thenoetrevino/todolist/internal/cli/handler"
	"github.com/thenoetrevino/todolist/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List all tasks, optionally narrowed to one task list, status or label.

Examples:
  todolist task list
  todolist task list --list=1 --status=todo
  todolist task list --label=urgent --quiet
`,
		RunE: handler.SimpleCommand(handler.Func(runList)),
	}

	cmd.Flags().Int("list", 0, "Only tasks in this task list")
	cmd.Flags().String("status", "", "Only tasks with this status")
	cmd.Flags().String("label", "", "Only tasks carrying this label")

	addOutputFlags(cmd)
	return cmd
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	status, err := args.Status()
	if err != nil {
		return nil, err
	}

	tasks, err := args.CLI.App.TaskService.GetAllTasks(ctx)
	if err != nil {
		return nil, err
	}

	listID := args.GetInt("list", 0)
	label := args.GetString("label", "")

	filtered := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		if listID > 0 && (t.TaskList == nil || int(t.TaskList.ID) != listID) {
			continue
		}
		if status != "" && t.Status != status {
			continue
		}
		if label != "" && !hasLabel(t, label) {
			continue
		}
		filtered = append(filtered, t)
	}

	return cli.NewTaskViews(filtered), nil
}

func hasLabel(t *models.Task, name string) bool {
	for _, l := range t.Labels {
		if l.Name == name {
			return true
		}
	}
	return false
}
