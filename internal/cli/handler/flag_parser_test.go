package handler

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/todolist/internal/cli"
	"github.com/thenoetrevino/todolist/internal/models"
)

// ============================================================================
// Test Helpers
// ============================================================================

// runWith executes a command whose handler captures the parsed arguments
func runWith(t *testing.T, args []string, setup func(*cobra.Command), fn Func) (string, string, error) {
	t.Helper()

	cmd := &cobra.Command{Use: "test", RunE: SimpleCommand(fn)}
	cmd.Flags().Bool("json", false, "")
	cmd.Flags().Bool("quiet", false, "")
	if setup != nil {
		setup(cmd)
	}

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader("from stdin\n"))
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	ctx := cli.WithCLI(context.Background(), cli.NewFromApp(nil, nil))
	err := cmd.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

func taskFlags(cmd *cobra.Command) {
	cmd.Flags().String("description", "", "")
	cmd.Flags().String("due", "", "")
	cmd.Flags().String("status", "", "")
	cmd.Flags().String("priority", "", "")
	cmd.Flags().StringSlice("labels", nil, "")
	cmd.Flags().Int("list", 0, "")
}

// ============================================================================
// Argument Tests
// ============================================================================

func TestArguments_FlagsAndPositionals(t *testing.T) {
	var got *Arguments
	_, _, err := runWith(t, []string{"12", "--status=in-progress", "--labels=a,b", "--labels", "c", "--list=3", "--description=-"},
		taskFlags,
		func(ctx context.Context, args *Arguments) (any, error) {
			got = args
			return nil, nil
		})
	require.NoError(t, err)

	id, err := got.PositionalID(0, "task ID")
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	status, err := got.Status()
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, status)

	priority, err := got.Priority()
	require.NoError(t, err)
	assert.Empty(t, priority, "unset flag yields no priority")

	assert.Equal(t, []string{"a", "b", "c"}, got.Labels())
	assert.Equal(t, 3, got.GetInt("list", 0))
	assert.True(t, got.Has("list"))
	assert.False(t, got.Has("due"))

	desc, err := got.Description()
	require.NoError(t, err)
	assert.Equal(t, "from stdin", desc)
}

func TestArguments_PositionalID_Errors(t *testing.T) {
	args := &Arguments{Args: []string{"abc"}}

	_, err := args.PositionalID(0, "task ID")
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	_, err = args.PositionalID(1, "label name")
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

// ============================================================================
// Command Wrapper Tests
// ============================================================================

func TestCommand_ReportsErrors(t *testing.T) {
	out, errOut, err := runWith(t, []string{"--json"}, nil,
		func(ctx context.Context, args *Arguments) (any, error) {
			return nil, models.Invalid("title cannot be empty")
		})

	var exitErr *cli.ExitCodeError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, cli.ExitValidation, exitErr.Code)
	assert.Contains(t, out, `"VALIDATION_ERROR"`)
	assert.Empty(t, errOut)
}

func TestCommand_RequireFlags(t *testing.T) {
	cmd := &cobra.Command{
		Use: "test",
		RunE: Command(Func(func(ctx context.Context, args *Arguments) (any, error) {
			t.Fatal("handler should not run")
			return nil, nil
		}), RequireFlags("name")),
	}
	cmd.Flags().String("name", "", "")
	cmd.SetArgs([]string{"--name", "   "})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	err := cmd.ExecuteContext(cli.WithCLI(context.Background(), cli.NewFromApp(nil, nil)))
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestCommand_WithoutCLI(t *testing.T) {
	cmd := &cobra.Command{Use: "test", RunE: SimpleCommand(Func(func(ctx context.Context, args *Arguments) (any, error) {
		return nil, nil
	}))}
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(nil)
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(context.Background())
	assert.ErrorIs(t, err, cli.ErrNoCLI)
}
