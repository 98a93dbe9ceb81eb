package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install <versions...>",
		Short: "Install one or more vyper versions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Install(cmd.Context(), args)
		},
	}
}
