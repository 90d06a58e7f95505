// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todolist/internal/cli"
	"github.com/thenoetrevino/todolist/internal/models"
)

// RequireFlags returns a parseFlags function for Command that rejects
// blank values for the named string flags
func RequireFlags(names ...string) func(*cobra.Command) error {
	return func(cmd *cobra.Command) error {
		for _, name := range names {
			value, err := cmd.Flags().GetString(name)
			if err != nil {
				return fmt.Errorf("failed to parse %s flag: %w", name, err)
			}
			if strings.TrimSpace(value) == "" {
				return fmt.Errorf("--%s is required", name)
			}
		}
		return nil
	}
}

// PositionalID parses the positional argument at index as an ID
func (a *Arguments) PositionalID(index int, what string) (int, error) {
	if index >= len(a.Args) {
		return 0, &cli.ExitCodeError{Code: cli.ExitUsage, Err: fmt.Errorf("missing %s", what)}
	}
	return cli.ParseID(what, a.Args[index])
}

// Status parses the --status flag, returning "" when it was not set
func (a *Arguments) Status() (models.Status, error) {
	if !a.Has("status") {
		return "", nil
	}
	return cli.ParseStatus(a.GetString("status", ""))
}

// Priority parses the --priority flag, returning "" when it was not set
func (a *Arguments) Priority() (models.Priority, error) {
	if !a.Has("priority") {
		return "", nil
	}
	return cli.ParsePriority(a.GetString("priority", ""))
}

// DueDate parses the --due flag
func (a *Arguments) DueDate() (*time.Time, error) {
	return cli.ParseDueDate(a.GetString("due", ""))
}

// Description returns --description, reading stdin when it is "-"
func (a *Arguments) Description() (string, error) {
	return cli.ReadDescription(a.GetString("description", ""), a.cmd.InOrStdin())
}

// Labels returns the names given with --labels
func (a *Arguments) Labels() []string {
	return cli.SplitNames(a.GetStringSlice("labels", nil))
}
