package configcmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/avaropoint/rtfex/internal/cmd/cmdutil"
	"github.com/avaropoint/rtfex/internal/config"
)

type initOptions struct {
	mode    string
	output  string
	noInput bool
	force   bool
}

// NewCmdInit creates the config init command.
func NewCmdInit() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the rtfex configuration file",
		Long: `Init asks for the decoder defaults and saves them to the configuration
file (default ~/.config/rtfex/config.yml). Flags given on the command
line of decode override these defaults, and RTFEX_* environment
variables override both.`,
		Example: `  # Interactive setup
  rtfex config init

  # Non-interactive, HTML only
  rtfex config init --no-input --mode html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.mode, "mode", "", "default payload mode: html, text or either")
	cmd.Flags().StringVar(&opts.output, "output", "", "default output mode: string, utf8 or codepage")
	cmd.Flags().BoolVar(&opts.noInput, "no-input", false, "do not prompt; save the flag values")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite an existing configuration file")

	return cmd
}

func runInit(cmd *cobra.Command, opts *initOptions) error {
	configPath := cmdutil.ConfigPath(cmd)
	out := cmd.OutOrStdout()

	cfg := &config.Config{}
	if _, err := os.Stat(configPath); err == nil {
		if existing, err := config.Load(configPath); err == nil {
			cfg = existing
		}
		if !opts.force {
			if opts.noInput {
				return fmt.Errorf("configuration already exists at %s (use --force to overwrite)", configPath)
			}
			var overwrite bool
			err := huh.NewConfirm().
				Title("Configuration already exists").
				Description(fmt.Sprintf("Overwrite %s?", configPath)).
				Value(&overwrite).
				Run()
			if err != nil {
				return err
			}
			if !overwrite {
				fmt.Fprintln(out, "Initialization cancelled.")
				return nil
			}
		}
	}

	if opts.mode != "" {
		cfg.Mode = opts.mode
	}
	if opts.output != "" {
		cfg.Output = opts.output
	}

	if !opts.noInput {
		if err := promptConfig(cfg); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Fprintln(out, "Initialization cancelled.")
				return nil
			}
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Fprintf(out, "Configuration saved to %s\n", configPath)
	return nil
}

func promptConfig(cfg *config.Config) error {
	if cfg.Mode == "" {
		cfg.Mode = "either"
	}
	if cfg.Output == "" {
		cfg.Output = "string"
	}
	symbols := strings.Join(cfg.ReplaceSymbolFonts, ", ")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Payload mode").
				Description("Which encapsulated bodies to accept").
				Options(
					huh.NewOption("HTML or text", "either"),
					huh.NewOption("HTML only", "html"),
					huh.NewOption("Text only", "text"),
				).
				Value(&cfg.Mode),

			huh.NewSelect[string]().
				Title("Output").
				Description("How decoded text is written").
				Options(
					huh.NewOption("UTF-8 text", "string"),
					huh.NewOption("UTF-8 bytes", "utf8"),
					huh.NewOption("Document codepage bytes", "codepage"),
				).
				Value(&cfg.Output),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Prefix the payload with its mode?").
				Value(&cfg.Prefix),
			huh.NewConfirm().
				Title("Accept Outlook quirks?").
				Description("Tolerate \\htmlrtf inside \\htmltag groups").
				Value(&cfg.OutlookQuirks),
			huh.NewConfirm().
				Title("Allow text with no codepage?").
				Value(&cfg.AllowCp0),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Encode non-ASCII characters in HTML?").
				Value(&cfg.HTMLEncodeNonASCII),
			huh.NewConfirm().
				Title("Fix the HTML meta charset?").
				Value(&cfg.HTMLFixContentType),
			huh.NewConfirm().
				Title("Preserve runs of spaces in HTML?").
				Value(&cfg.HTMLPreserveSpaces),
			huh.NewConfirm().
				Title("Also write Markdown for HTML bodies?").
				Value(&cfg.Markdown),
			huh.NewInput().
				Title("Symbol fonts to recode (optional)").
				Description(`Comma-separated font names, or "*" for all`).
				Placeholder("Symbol, Wingdings").
				Value(&symbols),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	cfg.ReplaceSymbolFonts = nil
	for _, name := range strings.Split(symbols, ",") {
		if name = strings.TrimSpace(name); name != "" {
			cfg.ReplaceSymbolFonts = append(cfg.ReplaceSymbolFonts, name)
		}
	}
	return nil
}
