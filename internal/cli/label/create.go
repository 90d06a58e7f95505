package label

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todolist/internal/cli"
	"github.com/thenoetrevino/todolist/internal/cli/handler"
	labelservice "github.com/thenoetrevino/todolist/internal/services/label"
)

// CreateCmd returns the label create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new label",
		Long: `Create a new label with a name and color. Both must be unused.

Examples:
  # Create label (human-readable output)
  todolist label create --name="urgent" --color="#FF0000"

  # JSON output for agents
  todolist label create --name="urgent" --color="#FF0000" --json

  # Quiet mode for bash capture
  LABEL_ID=$(todolist label create --name="urgent" --color="#FF0000" --quiet)
`,
		RunE: handler.Command(handler.Func(runCreate), handler.RequireFlags("name", "color")),
	}

	// Required flags
	cmd.Flags().String("name", "", "Label name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().String("color", "", "Label color in hex format #RRGGBB (required)")
	if err := cmd.MarkFlagRequired("color"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(ctx context.Context, args *handler.Arguments) (any, error) {
	label, err := args.CLI.App.LabelService.CreateLabel(ctx, labelservice.CreateLabelRequest{
		Name:  args.GetString("name", ""),
		Color: args.GetString("color", ""),
	})
	if err != nil {
		return nil, err
	}
	return cli.NewLabelView(label), nil
}
