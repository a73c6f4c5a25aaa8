// engine.go drives tokens through the decoding pipeline.

package rtfex

import (
	"fmt"
	"io"

	"github.com/avaropoint/rtfex/parsers/rtf"
)

// headerTokens is the number of leading tokens in which \fromhtml1 or
// \fromtext must appear.
const headerTokens = 10

// stage handles one concern for a token. Returning true stops the
// pipeline for that token.
type stage func(e *Engine, tok *rtf.Token) (bool, error)

// pipeline is applied to every token, in this order.
var pipeline = [...]stage{
	(*Engine).countTokens,
	(*Engine).guardEnd,
	(*Engine).checkMode,
	(*Engine).trackGroups,
	(*Engine).skipUnicode,
	(*Engine).trackDestinations,
	(*Engine).trackCharset,
	(*Engine).buildFontTable,
	(*Engine).deEncapsulate,
	(*Engine).writeOutput,
	(*Engine).escapeText,
}

type seenToken struct {
	kind rtf.Kind
	word string
}

func (s seenToken) isWord(word string) bool {
	return s.kind == rtf.Control && s.word == word
}

// Engine de-encapsulates a token stream, writing the payload to an
// io.Writer. An Engine handles one document and is not safe for
// concurrent use.
type Engine struct {
	opts Options
	w    io.Writer
	err  error

	count     int
	done      bool
	warnedEnd bool

	fromHTML bool
	fromText bool

	cpg         int
	ansicpgSeen bool
	deff        string
	deffSeen    bool
	fonts       FontTable
	fontTblSeen bool
	fontDef     *fontDef

	skip     int
	lookback [2]seenToken // last, and the one before it
	stack    []groupState

	pending *run

	htmlCharset  string
	charsetFixed bool
	afterSpace   bool // last payload character was a space, or none yet
}

// New returns an Engine writing decoded output to w.
func New(w io.Writer, opts Options) *Engine {
	return &Engine{
		opts:  opts.withDefaults(),
		w:     w,
		cpg:   1252,
		fonts: make(FontTable),
		stack: []groupState{{uc: 1}},

		afterSpace: true,
	}
}

// Feed processes one token. After a fatal error every later call
// returns the same error.
func (e *Engine) Feed(tok rtf.Token) error {
	if e.err != nil {
		return e.err
	}
	for _, s := range pipeline {
		handled, err := s(e, &tok)
		if err != nil {
			e.err = err
			return err
		}
		if handled {
			break
		}
	}
	e.lookback[1] = e.lookback[0]
	e.lookback[0] = seenToken{kind: tok.Kind, word: tok.Word}
	return nil
}

// Flush finishes the document: it checks that a payload was found,
// reports an unclosed root group and writes any buffered text.
func (e *Engine) Flush() error {
	if e.err != nil {
		return e.err
	}
	switch {
	case e.count == 0:
		e.err = structuralf(`file should start with "{"`)
	case e.count < 2:
		e.err = structuralf(`file should start with "{\rtf[0,1]"`)
	case !e.fromHTML && !e.fromText:
		e.err = notEncapsulated(e.opts.Mode)
	}
	if e.err != nil {
		return e.err
	}
	if !e.done {
		e.warnf("not enough matching closing brackets")
	}
	if err := e.flushRun(); err != nil {
		e.err = err
	}
	return e.err
}

// Mode reports the payload type found so far: ModeHTML, ModeText or,
// before either flag is seen, ModeEither.
func (e *Engine) Mode() Mode {
	switch {
	case e.fromHTML:
		return ModeHTML
	case e.fromText:
		return ModeText
	}
	return ModeEither
}

// DefaultCodepage returns the document codepage.
func (e *Engine) DefaultCodepage() int { return e.cpg }

// Fonts returns the font table built so far.
func (e *Engine) Fonts() FontTable { return e.fonts }

// OriginalHTMLCharset returns the meta charset replaced by
// HTMLFixContentType, if any.
func (e *Engine) OriginalHTMLCharset() string { return e.htmlCharset }

// Tokens returns the number of tokens fed so far.
func (e *Engine) Tokens() int { return e.count }

func (e *Engine) warnf(format string, args ...any) {
	e.opts.Warn(fmt.Sprintf(format, args...))
}
