package label

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todolist/internal/cli"
	"github.com/thenoetrevino/todolist/internal/cli/handler"
)

// ListCmd returns the label list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List labels",
		Long: `List all labels.

Examples:
  # Human-readable list
  todolist label list

  # JSON output for agents
  todolist label list --json

  # Quiet mode (one ID per line)
  todolist label list --quiet
`,
		RunE: handler.SimpleCommand(handler.Func(runList)),
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	labels, err := args.CLI.App.LabelService.GetAllLabels(ctx)
	if err != nil {
		return nil, err
	}
	return cli.NewLabelViews(labels), nil
}
