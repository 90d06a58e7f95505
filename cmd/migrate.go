package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todolist/internal/cli"
	"github.com/thenoetrevino/todolist/internal/cli/handler"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE:  handler.SimpleCommand(handler.Func(runMigrate)),
	}
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "No output on success")
	return cmd
}

func runMigrate(ctx context.Context, args *handler.Arguments) (any, error) {
	if err := args.CLI.App.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return &cli.Message{Text: fmt.Sprintf("Database schema is up to date (%s)", args.CLI.Config.Database.Path)}, nil
}
