// decode.go wires the tokenizer to the engine.

package rtfex

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/avaropoint/rtfex/parsers/rtf"
)

const readChunk = 32 << 10

// Writer de-encapsulates the RTF written to it, writing the payload to
// the underlying io.Writer. Close must be called at the end of input.
type Writer struct {
	tok    *rtf.Tokenizer
	eng    *Engine
	tokens []rtf.Token
}

// NewWriter returns a Writer that writes the decoded payload to w.
func NewWriter(w io.Writer, opts Options) *Writer {
	eng := New(w, opts)
	return &Writer{
		tok: rtf.NewTokenizer(eng.opts.Warn),
		eng: eng,
	}
}

// Write feeds RTF bytes. It fails once the input is known to be
// malformed or not encapsulated.
func (w *Writer) Write(p []byte) (int, error) {
	w.tokens = w.tok.Feed(w.tokens[:0], p)
	if err := w.feed(); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close finishes the input and flushes buffered output.
func (w *Writer) Close() error {
	w.tokens = w.tok.Finish(w.tokens[:0])
	if err := w.feed(); err != nil {
		return err
	}
	return w.eng.Flush()
}

// Engine returns the underlying engine, for inspecting the decoded
// document after Close.
func (w *Writer) Engine() *Engine { return w.eng }

func (w *Writer) feed() error {
	for _, t := range w.tokens {
		if err := w.eng.Feed(t); err != nil {
			return err
		}
	}
	return nil
}

// Decode de-encapsulates a complete RTF document.
func Decode(data []byte, opts Options) (*Result, error) {
	var out bytes.Buffer
	w := NewWriter(&out, opts)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return w.result(&out, opts.OutputMode), nil
}

// DecodeReader de-encapsulates an RTF document read from r. It stops
// with ctx.Err() when ctx is cancelled between reads.
func DecodeReader(ctx context.Context, r io.Reader, opts Options) (*Result, error) {
	var out bytes.Buffer
	w := NewWriter(&out, opts)
	buf := make([]byte, readChunk)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := r.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return nil, werr
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return w.result(&out, opts.OutputMode), nil
}

func (w *Writer) result(out *bytes.Buffer, mode OutputMode) *Result {
	res := &Result{
		Mode:                w.eng.Mode(),
		DefaultCodepage:     w.eng.DefaultCodepage(),
		OriginalHTMLCharset: w.eng.OriginalHTMLCharset(),
		Fonts:               w.eng.Fonts(),
	}
	if mode == OutputString {
		res.Text = out.String()
	} else {
		res.Bytes = out.Bytes()
	}
	return res
}
