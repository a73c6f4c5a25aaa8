// output.go buffers payload text into runs and writes decoded runs.

package rtfex

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/avaropoint/rtfex/parsers/codepage"
	"github.com/avaropoint/rtfex/parsers/rtf"
)

type runKind uint8

const (
	runUnicode  runKind = iota // UTF-16 units from \u and text escapes
	runCodepage                // bytes in the document codepage
	runFont                    // bytes in the codepage of font
	runSymbol                  // symbol font codepoints
)

// run is a stretch of output that is decoded in one piece. Multi-byte
// codepages cannot be decoded one \' escape at a time.
type run struct {
	kind  runKind
	inTag bool
	cpg   int
	font  *FontEntry
	bytes []byte
	units []uint16
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// writeOutput emits text, \' escapes and \u characters.
func (e *Engine) writeOutput(tok *rtf.Token) (bool, error) {
	switch {
	case tok.Kind == rtf.Text:
		return true, e.emit(tok.Data, nil)
	case tok.Kind != rtf.Control:
		return false, nil
	}
	switch tok.Word {
	case "'":
		if len(tok.Data) == 0 {
			return true, nil
		}
		return true, e.emit(tok.Data, nil)
	case "u":
		if !tok.HasParam {
			return true, semanticf(`\u with no param`)
		}
		n := int(tok.Param)
		if n < 0 {
			n += 0x10000
		}
		return true, e.emit(nil, []uint16{uint16(n)})
	case "bin":
		return true, nil
	}
	return false, nil
}

// emit queues bytes or UTF-16 units for output. Font table text is
// diverted to the font being defined; hidden text is dropped.
func (e *Engine) emit(b []byte, units []uint16) error {
	s := e.top()
	if s.inFontTable() {
		e.captureFontText(b, units)
		return nil
	}
	if !e.visible() {
		return nil
	}

	next := run{inTag: s.dests.has("htmltag")}
	if !next.inTag {
		next.font = e.currentFont()
	}
	switch {
	case next.font != nil && isSymbolFont(next.font):
		next.kind = runSymbol
	case units != nil:
		next.kind = runUnicode
		next.font = nil
	case next.font != nil:
		next.kind = runFont
	default:
		next.kind = runCodepage
		next.cpg = e.cpg
	}

	p := e.pending
	if p == nil || p.kind != next.kind || p.inTag != next.inTag || p.font != next.font || p.cpg != next.cpg {
		if err := e.flushRun(); err != nil {
			return err
		}
		p = &next
		e.pending = p
	}

	if p.kind == runSymbol {
		for _, c := range b {
			p.units = append(p.units, uint16(c))
		}
	} else {
		p.bytes = append(p.bytes, b...)
	}
	p.units = append(p.units, units...)
	return nil
}

// flushRun decodes and writes the pending run.
func (e *Engine) flushRun() error {
	r := e.pending
	if r == nil {
		return nil
	}
	e.pending = nil

	text, symbolic, err := e.decodeRun(r)
	if err != nil {
		return err
	}
	if e.fromHTML {
		if r.inTag {
			text = e.fixContentType(text)
			e.afterSpace = true
		} else {
			text = e.escapeHTML(text)
		}
	}
	if symbolic && e.opts.OutputMode == OutputDefaultCodepage {
		return e.writeSymbolBytes(text)
	}
	return e.write(text)
}

// decodeRun converts a run to text. symbolic reports text made of
// symbol font codepoints rather than real characters.
func (e *Engine) decodeRun(r *run) (text string, symbolic bool, err error) {
	switch r.kind {
	case runUnicode:
		return string(utf16.Decode(r.units)), false, nil

	case runSymbol:
		// Word maps symbol glyphs both to 0x00-0xFF and to 0xF000-0xF0FF.
		units := make([]uint16, len(r.units))
		for i, u := range r.units {
			if u >= 0xF000 && u <= 0xF0FF {
				u -= 0xF000
			}
			units[i] = u
		}
		text = string(utf16.Decode(units))
		name := r.font.FontName
		if name != "" && (e.opts.ReplaceSymbolFontChars || e.opts.ReplaceSymbolFonts[name]) {
			return e.opts.SymbolRecoder(text, name), false, nil
		}
		return text, true, nil

	case runFont:
		cpg := r.font.Codepage()
		if cpg == 0 {
			cpg = e.cpg
		}
		text, err = e.decodeBytes(r.bytes, cpg)
		return text, false, err
	}
	text, err = e.decodeBytes(r.bytes, r.cpg)
	return text, false, err
}

func (e *Engine) decodeBytes(b []byte, cpg int) (string, error) {
	switch cpg {
	case 20127, 65001:
		return strings.ToValidUTF8(string(b), "\uFFFD"), nil
	case 1200:
		out, err := utf16le.NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("%w: decoding cp1200: %v", ErrCodepage, err)
		}
		return string(out), nil
	case 0:
		if !e.opts.AllowCp0 {
			return "", fmt.Errorf("%w: text with no codepage", ErrCodepage)
		}
	}

	text, err := e.opts.Decode(b, codepage.Label(cpg))
	if err == nil {
		return text, nil
	}
	e.warnf("unable to decode cp%d, using latin1: %v", cpg, err)
	out, _ := charmap.ISO8859_1.NewDecoder().Bytes(b)
	return string(out), nil
}

// write writes decoded text in the configured output mode.
func (e *Engine) write(text string) error {
	if text == "" {
		return nil
	}
	if e.opts.OutputMode != OutputDefaultCodepage {
		_, err := io.WriteString(e.w, text)
		return err
	}
	b, err := e.encodeDefault(text)
	if err != nil {
		return err
	}
	_, err = e.w.Write(b)
	return err
}

// encodeDefault encodes text in the document codepage. Characters the
// codepage cannot hold become '?'.
func (e *Engine) encodeDefault(text string) ([]byte, error) {
	switch e.cpg {
	case 20127, 65001:
		return []byte(text), nil
	case 1200:
		return utf16le.NewEncoder().Bytes([]byte(text))
	}

	label := codepage.Label(e.cpg)
	if b, err := e.opts.Encode(text, label); err == nil {
		return b, nil
	}
	e.warnf("unable to encode to cp%d", e.cpg)
	var out []byte
	for _, r := range text {
		b, err := e.opts.Encode(string(r), label)
		if err != nil {
			b = []byte{'?'}
		}
		out = append(out, b...)
	}
	return out, nil
}

// writeSymbolBytes writes symbol codepoints as single bytes.
func (e *Engine) writeSymbolBytes(text string) error {
	b := make([]byte, 0, len(text))
	for _, r := range text {
		if r > 0xFF {
			r = 0x20
		}
		b = append(b, byte(r))
	}
	_, err := e.w.Write(b)
	return err
}
