package configcmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/avaropoint/rtfex/internal/cmd/cmdutil"
	"github.com/avaropoint/rtfex/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the effective decoder defaults with the source of each value.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmd, jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the effective configuration as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, jsonOutput bool) error {
	configPath := cmdutil.ConfigPath(cmd)

	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return err
	}

	r := cmdutil.Renderer(cmd, jsonOutput)
	if r.JSON() {
		return r.RenderJSON(cfg)
	}

	w := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue, envVar string) {
		_, _ = bold.Fprintf(w, "%-22s", label+":")
		if value == "" || value == "false" {
			_, _ = dim.Fprintln(w, "-")
			return
		}
		fmt.Fprint(w, value)

		source := "config"
		if v := os.Getenv(envVar); v != "" {
			source = envVar
		} else if fileErr != nil || fileValue != value {
			source = "-"
		}
		_, _ = dim.Fprintf(w, "  (source: %s)\n", source)
	}
	b := strconv.FormatBool

	printField("Mode", cfg.Mode, fileCfg.Mode, "RTFEX_MODE")
	printField("Output", cfg.Output, fileCfg.Output, "RTFEX_OUTPUT")
	printField("Prefix", b(cfg.Prefix), b(fileCfg.Prefix), "RTFEX_PREFIX")
	printField("Outlook quirks", b(cfg.OutlookQuirks), b(fileCfg.OutlookQuirks), "RTFEX_OUTLOOK_QUIRKS")
	printField("Allow cp0", b(cfg.AllowCp0), b(fileCfg.AllowCp0), "RTFEX_ALLOW_CP0")
	printField("HTML encode non-ASCII", b(cfg.HTMLEncodeNonASCII), b(fileCfg.HTMLEncodeNonASCII), "RTFEX_HTML_ENCODE_NON_ASCII")
	printField("HTML fix charset", b(cfg.HTMLFixContentType), b(fileCfg.HTMLFixContentType), "RTFEX_HTML_FIX_CONTENT_TYPE")
	printField("HTML preserve spaces", b(cfg.HTMLPreserveSpaces), b(fileCfg.HTMLPreserveSpaces), "RTFEX_HTML_PRESERVE_SPACES")
	printField("Symbol fonts", strings.Join(cfg.ReplaceSymbolFonts, ", "), strings.Join(fileCfg.ReplaceSymbolFonts, ", "), "RTFEX_REPLACE_SYMBOL_FONTS")
	printField("Markdown", b(cfg.Markdown), b(fileCfg.Markdown), "RTFEX_MARKDOWN")

	fmt.Fprintln(w)
	_, _ = dim.Fprintf(w, "Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Fprintln(w, "(file not found)")
	}
	return nil
}
