package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todolist/internal/app"
	"github.com/thenoetrevino/todolist/internal/cli"
)

// Result holds what a command wrote
type Result struct {
	Stdout string
	Stderr string
}

// SetupCLITest creates an in-memory database and a CLI bound to it
func SetupCLITest(t *testing.T) (*sql.DB, *cli.CLI) {
	t.Helper()
	db := SetupTestDB(t)
	return db, cli.NewFromApp(app.New(db), nil)
}

// ExecuteCommand runs cmd with args against c, capturing its output
func ExecuteCommand(t *testing.T, c *cli.CLI, cmd *cobra.Command, args ...string) (Result, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(&bytes.Buffer{})

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(cli.WithCLI(context.Background(), c))
	return Result{Stdout: stdout.String(), Stderr: stderr.String()}, err
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := sonic.UnmarshalString(output, &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
