// Package label holds all cli commands related to labels
// e.g., todolist label ...
package label

import (
	"github.com/spf13/cobra"
)

// LabelCmd returns the label parent command
func LabelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label",
		Short: "Manage labels",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}
