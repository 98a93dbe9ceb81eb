package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <version|ALL>",
		Short: "Remove an installed vyper version, or ALL of them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Remove(cmd.Context(), args[0])
		},
	}
}
