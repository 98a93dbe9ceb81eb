package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <version>",
		Short: "Set the global vyper version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Use(cmd.Context(), args[0])
		},
	}
}
