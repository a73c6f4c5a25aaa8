// Package decode provides the decode command.
package decode

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avaropoint/rtfex/formats"
	"github.com/avaropoint/rtfex/internal/cmd/cmdutil"
	"github.com/avaropoint/rtfex/internal/config"
	"github.com/avaropoint/rtfex/parsers/rtfex"
)

type options struct {
	mode           string
	output         string
	prefix         bool
	quirks         bool
	allowCp0       bool
	encodeNonASCII bool
	fixContentType bool
	preserveSpaces bool
	replaceSymbols []string
	markdown       bool
	codepageBytes  bool
	outFile        string
}

// NewCmdDecode creates the decode command.
func NewCmdDecode() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "decode <file|->",
		Short: "Write the HTML or text encapsulated in an RTF document",
		Long: `Decode reads an RTF document, or compressed RTF, and writes the HTML or
plain text it encapsulates. Use "-" to read standard input.

Flags override the configuration file, which overrides the defaults.`,
		Example: `  # Print the HTML body
  rtfex decode message.rtf

  # Only accept HTML, and convert it to Markdown
  rtfex decode --mode html --markdown message.rtf

  # Recode Wingdings glyphs and keep the document codepage
  rtfex decode --replace-symbols Wingdings --codepage-bytes -w out.html message.rtf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.mode, "mode", "", "payload to accept: html, text or either")
	f.StringVar(&opts.output, "output", "", "output encoding: string, utf8 or codepage")
	f.BoolVar(&opts.prefix, "prefix", false, `write "html:" or "text:" before the payload`)
	f.BoolVar(&opts.quirks, "quirks", false, "emulate Outlook's handling of \\htmlrtf")
	f.BoolVar(&opts.allowCp0, "allow-cp0", false, "decode text under \\ansicpg0 instead of failing")
	f.BoolVar(&opts.encodeNonASCII, "encode-non-ascii", false, "write non-ASCII HTML text as character references")
	f.BoolVar(&opts.fixContentType, "fix-content-type", false, "rewrite the HTML meta charset to UTF-8")
	f.BoolVar(&opts.preserveSpaces, "preserve-spaces", false, "keep leading and repeated spaces as &nbsp;")
	f.StringSliceVar(&opts.replaceSymbols, "replace-symbols", nil, `symbol fonts to recode to Unicode ("*" for all)`)
	f.BoolVar(&opts.markdown, "markdown", false, "convert HTML payloads to Markdown")
	f.BoolVar(&opts.codepageBytes, "codepage-bytes", false, "shorthand for --output codepage")
	f.StringVarP(&opts.outFile, "write", "w", "", "write to a file instead of stdout")

	return cmd
}

// apply copies the flags that were set onto cfg.
func (o *options) apply(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("mode") {
		cfg.Mode = o.mode
	}
	if f.Changed("output") {
		cfg.Output = o.output
	}
	if o.codepageBytes {
		if f.Changed("output") {
			return errors.New("--codepage-bytes and --output are mutually exclusive")
		}
		cfg.Output = rtfex.OutputDefaultCodepage.String()
	}

	bools := []struct {
		name string
		src  bool
		dst  *bool
	}{
		{"prefix", o.prefix, &cfg.Prefix},
		{"quirks", o.quirks, &cfg.OutlookQuirks},
		{"allow-cp0", o.allowCp0, &cfg.AllowCp0},
		{"encode-non-ascii", o.encodeNonASCII, &cfg.HTMLEncodeNonASCII},
		{"fix-content-type", o.fixContentType, &cfg.HTMLFixContentType},
		{"preserve-spaces", o.preserveSpaces, &cfg.HTMLPreserveSpaces},
		{"markdown", o.markdown, &cfg.Markdown},
	}
	for _, b := range bools {
		if f.Changed(b.name) {
			*b.dst = b.src
		}
	}
	if f.Changed("replace-symbols") {
		cfg.ReplaceSymbolFonts = o.replaceSymbols
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Markdown && cfg.Output == rtfex.OutputDefaultCodepage.String() {
		return errors.New("markdown output needs UTF-8; drop --output codepage")
	}
	return nil
}

func runDecode(cmd *cobra.Command, path string, o *options) error {
	cfg, err := cmdutil.LoadConfig(cmd)
	if err != nil {
		return err
	}
	if err := o.apply(cmd, cfg); err != nil {
		return err
	}
	ropts, err := cfg.Options()
	if err != nil {
		return err
	}

	name := path
	if path == cmdutil.Stdin {
		name = "stdin"
	}
	logger := cmdutil.Logger(cmd)
	ropts.Warn = cmdutil.WarnFunc(logger, name)

	in, err := cmdutil.Open(cmd, path)
	if err != nil {
		return err
	}
	defer in.Close()

	r, err := cmdutil.RTFReader(in, logger, name)
	if err != nil {
		return err
	}
	res, err := rtfex.DecodeReader(cmd.Context(), r, ropts)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	logger.Debug("decoded", "file", name, "mode", res.Mode.String(), "codepage", res.DefaultCodepage, "fonts", len(res.Fonts))
	if res.OriginalHTMLCharset != "" {
		logger.Info("rewrote meta charset", "file", name, "charset", res.OriginalHTMLCharset)
	}

	out := res.Bytes
	if out == nil {
		out = []byte(res.Text)
	}
	if cfg.Markdown && res.Mode == rtfex.ModeHTML {
		if out, err = formats.ToMarkdown(out); err != nil {
			return fmt.Errorf("%s: markdown: %w", name, err)
		}
	}

	if o.outFile == "" {
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}
	if err := writeOutput(o.outFile, out); err != nil {
		return err
	}
	logger.Info("wrote payload", "file", o.outFile, "mode", res.Mode.String(), "bytes", len(out))
	return nil
}

// writeOutput writes data to path. Write and close errors are both
// returned.
func writeOutput(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
