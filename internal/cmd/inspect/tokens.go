// tokens.go implements the tokens command.

package inspect

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avaropoint/rtfex/internal/cmd/cmdutil"
	"github.com/avaropoint/rtfex/parsers/rtf"
)

// errLimit stops the token dump once --limit tokens have been printed.
var errLimit = errors.New("token limit reached")

// NewCmdTokens creates the tokens command.
func NewCmdTokens() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "tokens <file|->",
		Short: "Dump the token stream of an RTF document",
		Long: `Tokens prints one line per token, indented by group depth. Control
words are tagged with their class (destination, symbol or word) so
unknown destinations are easy to spot. Compressed RTF is decompressed
first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args[0], limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "stop after this many tokens (0 for all)")
	return cmd
}

func runTokens(cmd *cobra.Command, path string, limit int) error {
	rc, err := cmdutil.Open(cmd, path)
	if err != nil {
		return err
	}
	defer rc.Close()

	logger := cmdutil.Logger(cmd)
	name := filepath.Base(path)
	r, err := cmdutil.RTFReader(rc, logger, name)
	if err != nil {
		return err
	}

	d := &dumper{w: cmd.OutOrStdout(), limit: limit}
	tz := rtf.NewTokenizer(cmdutil.WarnFunc(logger, name))
	buf := make([]byte, 32*1024)
	var toks []rtf.Token
	for {
		n, rerr := r.Read(buf)
		toks = tz.Feed(toks[:0], buf[:n])
		if err := d.print(toks); err != nil {
			return d.done(err)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return fmt.Errorf("reading %s: %w", path, rerr)
		}
	}
	return d.done(d.print(tz.Finish(toks[:0])))
}

type dumper struct {
	w     io.Writer
	limit int
	n     int
	depth int
}

func (d *dumper) print(toks []rtf.Token) error {
	for i := range toks {
		if d.limit > 0 && d.n >= d.limit {
			return errLimit
		}
		tok := &toks[i]
		if tok.Kind == rtf.GroupEnd && d.depth > 0 {
			d.depth--
		}
		line := fmt.Sprintf("%6d  %s%s", d.n, strings.Repeat("  ", d.depth), tok)
		if tok.Kind == rtf.Control {
			line += "  (" + rtf.Classify(tok.Word).String() + ")"
		}
		if _, err := fmt.Fprintln(d.w, line); err != nil {
			return err
		}
		if tok.Kind == rtf.GroupStart {
			d.depth++
		}
		d.n++
	}
	return nil
}

func (d *dumper) done(err error) error {
	if errors.Is(err, errLimit) {
		return nil
	}
	return err
}
