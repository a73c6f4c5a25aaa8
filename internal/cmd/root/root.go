// Package root provides the root command for the rtfex CLI.
package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avaropoint/rtfex/internal/cmd/configcmd"
	"github.com/avaropoint/rtfex/internal/cmd/decode"
	"github.com/avaropoint/rtfex/internal/cmd/extract"
	"github.com/avaropoint/rtfex/internal/cmd/inspect"
	"github.com/avaropoint/rtfex/internal/version"
)

// NewCmdRoot creates the root command for rtfex.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rtfex",
		Short: "Recover HTML and text encapsulated in RTF",
		Long: `rtfex extracts the original HTML or plain-text body that mail clients
wrap inside RTF (\fromhtml1 and \fromtext documents).

It reads raw RTF, compressed RTF (PR_RTF_COMPRESSED) and TNEF
winmail.dat files.

Defaults for the decode flags can be stored with: rtfex config init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/rtfex/config.yml)")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log debug details")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "only log errors")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.SetVersionTemplate("rtfex version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	cmd.AddCommand(decode.NewCmdDecode())
	cmd.AddCommand(inspect.NewCmdView())
	cmd.AddCommand(inspect.NewCmdTokens())
	cmd.AddCommand(extract.NewCmdExtract())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(newCmdVersion())

	return cmd
}

func newCmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "rtfex %s (commit: %s, built: %s)\n",
				version.Version, version.Commit, version.Date)
			return err
		},
	}
}
