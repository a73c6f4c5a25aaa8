// Package configcmd provides config management commands.
package configcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avaropoint/rtfex/internal/cmd/cmdutil"
)

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage rtfex configuration",
		Long:  `Commands for creating and viewing the decoder defaults used by rtfex.`,
	}

	cmd.AddCommand(NewCmdInit())
	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdPath())

	return cmd
}

// NewCmdPath creates the config path command.
func NewCmdPath() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), cmdutil.ConfigPath(cmd))
			return err
		},
	}
}
