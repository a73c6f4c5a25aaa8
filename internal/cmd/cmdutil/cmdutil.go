// Package cmdutil holds helpers shared by the rtfex subcommands.
package cmdutil

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/avaropoint/rtfex/internal/config"
	"github.com/avaropoint/rtfex/internal/view"
	"github.com/avaropoint/rtfex/parsers/rtfcp"
)

// Stdin is the file argument that reads standard input.
const Stdin = "-"

// ConfigPath returns the --config flag value or the default path.
func ConfigPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p
	}
	return config.DefaultConfigPath()
}

// LoadConfig loads the configuration file with environment overrides.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.LoadWithEnv(ConfigPath(cmd))
}

// Logger returns a text logger on the command's stderr. --verbose
// enables debug output; --quiet hides warnings.
func Logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	if q, _ := cmd.Flags().GetBool("quiet"); q {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// WarnFunc logs decoder warnings for the named input.
func WarnFunc(logger *slog.Logger, name string) func(string) {
	return func(msg string) {
		logger.Warn("rtf warning", "msg", msg, "file", name)
	}
}

// Renderer returns a renderer on the command's stdout.
func Renderer(cmd *cobra.Command, jsonOutput bool) *view.Renderer {
	noColor, _ := cmd.Flags().GetBool("no-color")
	r := view.NewRenderer(jsonOutput, noColor)
	r.SetWriter(cmd.OutOrStdout())
	return r
}

// Open opens path for reading, or stdin for "-".
func Open(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return f, nil
}

// ReadFile reads path, or stdin for "-".
func ReadFile(cmd *cobra.Command, path string) ([]byte, error) {
	rc, err := Open(cmd, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// RTFReader returns r unchanged for plain RTF and a reader over the
// decompressed document for compressed RTF. A checksum mismatch is
// logged and ignored.
func RTFReader(r io.Reader, logger *slog.Logger, name string) (io.Reader, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(16)
	if !rtfcp.IsCompressed(head) {
		return br, nil
	}
	data, err := io.ReadAll(br)
	if err != nil {
		return nil, err
	}
	raw, err := DecompressRTF(data, logger, name)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(raw), nil
}

// DecompressRTF decompresses data, logging a checksum mismatch.
func DecompressRTF(data []byte, logger *slog.Logger, name string) ([]byte, error) {
	raw, err := rtfcp.Decompress(data)
	if err != nil {
		if raw == nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		logger.Warn("compressed rtf", "msg", err.Error(), "file", name)
	}
	logger.Debug("decompressed rtf", "file", name, "size", len(raw))
	return raw, nil
}
