// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/thenoetrevino/todolist/internal/cli"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command with parsed arguments
	Execute(ctx context.Context, args *Arguments) (any, error)
}

// Func adapts a plain function to Handler
type Func func(ctx context.Context, args *Arguments) (any, error)

// Execute implements Handler
func (f Func) Execute(ctx context.Context, args *Arguments) (any, error) {
	return f(ctx, args)
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Flags map[string]any
	Args  []string
	CLI   *cli.CLI
	cmd   *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// Command wraps common command execution logic and returns a cobra RunE
// compatible function. Errors are reported through the formatter and
// returned as *cli.ExitCodeError.
func Command(handler Handler, parseFlags func(*cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		formatter := cli.NewFormatter(cmd)

		if parseFlags != nil {
			if err := parseFlags(cmd); err != nil {
				return Fail(formatter, &cli.ExitCodeError{Code: cli.ExitUsage, Err: err})
			}
		}

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			return Fail(formatter, err)
		}

		arguments := &Arguments{
			Flags: parseFlagsToMap(cmd),
			Args:  args,
			CLI:   cliInstance,
			cmd:   cmd,
		}

		result, err := handler.Execute(ctx, arguments)
		if err != nil {
			return Fail(formatter, err)
		}

		// Common output formatting
		return formatter.Success(result)
	}
}

// SimpleCommand wraps command execution with minimal setup
// Use this for commands that don't need extra flag validation
func SimpleCommand(handler Handler) func(*cobra.Command, []string) error {
	return Command(handler, nil)
}

// Fail reports err to the user and wraps it with its exit code
func Fail(formatter *cli.OutputFormatter, err error) error {
	if fmtErr := formatter.ErrorWithSuggestion(cli.ErrorCode(err), err.Error(), cli.Suggestion(err)); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &cli.ExitCodeError{Code: cli.ExitCode(err), Err: err}
}

// parseFlagsToMap converts explicitly set cobra flags to a map
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Value.Type() {
		case "string":
			if v, err := cmd.Flags().GetString(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "int":
			if v, err := cmd.Flags().GetInt(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "bool":
			if v, err := cmd.Flags().GetBool(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "stringSlice":
			if v, err := cmd.Flags().GetStringSlice(f.Name); err == nil {
				flags[f.Name] = v
			}
		default:
			slog.Debug("unsupported flag type", "flag", f.Name, "type", f.Value.Type())
		}
	})

	return flags
}

// Has reports whether the flag was set explicitly
func (a *Arguments) Has(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

// GetString retrieves a string flag with default
func (a *Arguments) GetString(name string, defaultVal string) string {
	if v, ok := a.Flags[name].(string); ok {
		return v
	}
	return defaultVal
}

// GetInt retrieves an int flag with default
func (a *Arguments) GetInt(name string, defaultVal int) int {
	if v, ok := a.Flags[name].(int); ok {
		return v
	}
	return defaultVal
}

// GetBool retrieves a bool flag
func (a *Arguments) GetBool(name string) bool {
	v, _ := a.Flags[name].(bool)
	return v
}

// GetStringSlice retrieves a string slice flag with default
func (a *Arguments) GetStringSlice(name string, defaultVal []string) []string {
	if v, ok := a.Flags[name].([]string); ok {
		return v
	}
	return defaultVal
}
