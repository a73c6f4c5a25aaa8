// escapes.go substitutes text for symbol control words.

package rtfex

import (
	"unicode/utf16"

	"github.com/avaropoint/rtfex/parsers/rtf"
)

var textEscapes = map[string]string{
	"par":       "\r\n",
	"line":      "\r\n",
	"\r":        "\r\n", // \<CR> and \<LF> are \par in RTF 1.9
	"\n":        "\r\n",
	"tab":       "\t",
	"{":         "{",
	"}":         "}",
	"\\":        "\\",
	"lquote":    "‘",
	"rquote":    "’",
	"ldblquote": "“",
	"rdblquote": "”",
	"bullet":    "•",
	"endash":    "–",
	"emdash":    "—",
	"~":         "\u00A0",
	"_":         "\u00AD",
	"-":         "\u00AD",
}

// escapeText emits the text a symbol control word stands for.
func (e *Engine) escapeText(tok *rtf.Token) (bool, error) {
	if tok.Kind != rtf.Control {
		return false, nil
	}
	s, ok := textEscapes[tok.Word]
	if !ok {
		return false, nil
	}
	return true, e.emit(nil, utf16.Encode([]rune(s)))
}
