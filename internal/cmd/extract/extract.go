// Package extract provides the extract command, which writes every
// body and attachment found in an input file to a directory.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avaropoint/rtfex/formats"
	_ "github.com/avaropoint/rtfex/formats/compressed"
	_ "github.com/avaropoint/rtfex/formats/rtf"
	_ "github.com/avaropoint/rtfex/formats/tnef"
	"github.com/avaropoint/rtfex/internal/cmd/cmdutil"
	"github.com/avaropoint/rtfex/internal/view"
)

type extractOptions struct {
	only     string
	markdown bool
	dryRun   bool
	json     bool
}

// extracted is the JSON form of one written file.
type extracted struct {
	Path     string `json:"path"`
	Category string `json:"category"`
	Size     int    `json:"size"`
}

// NewCmdExtract creates the extract command.
func NewCmdExtract() *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <file|-> [output_dir]",
		Short: "Write bodies and attachments to a directory",
		Long: `Extract detects the input format and writes what it holds to
output_dir (default "."): the RTF body, the de-encapsulated HTML or
text, and for TNEF files every attachment and embedded message.`,
		Example: `  # Everything in winmail.dat
  rtfex extract winmail.dat ./out

  # Only the attachments
  rtfex extract winmail.dat ./out --only attachment`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir := "."
			if len(args) == 2 {
				outDir = args[1]
			}
			return runExtract(cmd, args[0], outDir, opts)
		},
	}

	cmd.Flags().StringVar(&opts.only, "only", "", "only write one category: body or attachment")
	cmd.Flags().BoolVar(&opts.markdown, "markdown", false, "also write body.md for HTML bodies")
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "list the files without writing them")
	cmd.Flags().BoolVar(&opts.json, "json", false, "list the files as JSON")
	return cmd
}

func runExtract(cmd *cobra.Command, path, outDir string, opts *extractOptions) error {
	switch opts.only {
	case "", formats.CategoryBody, formats.CategoryAttachment:
	default:
		return fmt.Errorf("invalid --only %q: must be %s or %s", opts.only, formats.CategoryBody, formats.CategoryAttachment)
	}

	data, err := cmdutil.ReadFile(cmd, path)
	if err != nil {
		return err
	}
	name := filepath.Base(path)
	if path == cmdutil.Stdin {
		name = "stdin"
	}
	conv := formats.Detect(name, data)
	if conv == nil {
		return fmt.Errorf("unsupported file format: %s", name)
	}

	cfg, err := cmdutil.LoadConfig(cmd)
	if err != nil {
		return err
	}
	rtfOpts, err := cfg.Options()
	if err != nil {
		return err
	}
	logger := cmdutil.Logger(cmd)
	logger.Debug("detected format", "file", name, "format", conv.Name())

	files, err := conv.Convert(data, formats.Options{
		RTF:      rtfOpts,
		Markdown: opts.markdown || cfg.Markdown,
		Warn:     cmdutil.WarnFunc(logger, name),
	})
	if err != nil {
		return fmt.Errorf("converting %s: %w", name, err)
	}

	r := cmdutil.Renderer(cmd, opts.json)
	var written []extracted
	for _, f := range files {
		if opts.only != "" && f.Category != opts.only {
			continue
		}
		outPath := filepath.Join(outDir, f.Name)
		if !opts.dryRun {
			if outPath, err = writeFile(outDir, f.Name, f.Data); err != nil {
				return err
			}
		}
		written = append(written, extracted{Path: outPath, Category: f.Category, Size: len(f.Data)})
		if !r.JSON() {
			r.Success(fmt.Sprintf("%s (%s)", outPath, view.Size(len(f.Data))))
		}
	}

	if r.JSON() {
		if written == nil {
			written = []extracted{}
		}
		return r.RenderJSON(written)
	}
	if len(written) == 0 {
		r.RenderText("No content to extract.")
	}
	return nil
}

// writeFile writes data to outDir/name, ensuring the resulting path stays
// within outDir to prevent directory traversal attacks.
func writeFile(outDir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	outPath := filepath.Join(outDir, name)

	absOut, err := filepath.Abs(outDir)
	if err != nil {
		return "", fmt.Errorf("resolving output directory: %w", err)
	}
	absPath, err := filepath.Abs(outPath)
	if err != nil {
		return "", fmt.Errorf("resolving output path: %w", err)
	}
	if !strings.HasPrefix(absPath, absOut+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal blocked: %s", name)
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}
	return outPath, nil
}
