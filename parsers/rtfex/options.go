// Package rtfex recovers the HTML or plain-text body that a mail client
// encapsulated inside RTF, reversing the MS-OXRTFEX algorithm.
//
// Bytes flow through an rtf.Tokenizer into an Engine, which runs every
// token through a fixed pipeline of stages: header validation, group
// tracking, Unicode skip accounting, destination classification,
// charset and font table tracking, encapsulation filtering, output
// buffering and text escapes. Decode and DecodeReader wire the two
// together; NewWriter exposes the same pipeline as an io.WriteCloser.
package rtfex

import (
	"fmt"
	"strings"

	"github.com/avaropoint/rtfex/parsers/codepage"
)

// Mode selects which encapsulated payload is accepted.
type Mode uint8

// Modes. The zero value accepts either payload.
const (
	ModeEither Mode = iota
	ModeHTML
	ModeText
)

func (m Mode) String() string {
	switch m {
	case ModeHTML:
		return "html"
	case ModeText:
		return "text"
	default:
		return "either"
	}
}

// ParseMode parses "html", "text" or "either".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html":
		return ModeHTML, nil
	case "text":
		return ModeText, nil
	case "", "either":
		return ModeEither, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want html, text or either)", s)
}

// OutputMode selects how decoded text is written.
type OutputMode uint8

// Output modes.
const (
	OutputString          OutputMode = iota // Result.Text
	OutputUTF8                              // Result.Bytes, UTF-8
	OutputDefaultCodepage                   // Result.Bytes in the document codepage
)

func (m OutputMode) String() string {
	switch m {
	case OutputUTF8:
		return "utf8"
	case OutputDefaultCodepage:
		return "codepage"
	default:
		return "string"
	}
}

// ParseOutputMode parses "string", "utf8" or "codepage".
func ParseOutputMode(s string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "string":
		return OutputString, nil
	case "utf8", "utf-8":
		return OutputUTF8, nil
	case "codepage", "default-codepage":
		return OutputDefaultCodepage, nil
	}
	return 0, fmt.Errorf("unknown output mode %q (want string, utf8 or codepage)", s)
}

// DecodeFunc converts bytes in the codepage named by label ("cp1252")
// to a string.
type DecodeFunc func(b []byte, label string) (string, error)

// EncodeFunc converts a string to the codepage named by label.
type EncodeFunc func(s string, label string) ([]byte, error)

// Options configures a decode. The zero value is usable: codecs default
// to package codepage and warnings are discarded.
type Options struct {
	Decode DecodeFunc
	Encode EncodeFunc

	Mode       Mode
	OutputMode OutputMode

	// Prefix writes "html:" or "text:" once the payload type is known.
	Prefix bool

	// ReplaceSymbolFontChars recodes characters of every symbol font
	// through SymbolRecoder. ReplaceSymbolFonts enables it per font name.
	ReplaceSymbolFontChars bool
	ReplaceSymbolFonts     map[string]bool
	SymbolRecoder          SymbolRecoder

	HTMLEncodeNonASCII bool // &nbsp; and &#N; for non-ASCII text outside tags
	HTMLFixContentType bool // rewrite the first meta charset to UTF-8
	HTMLPreserveSpaces bool // leading and repeated spaces become NBSP

	// OutlookQuirksMode skips every token except \f and \htmlrtf while
	// htmlrtf is on, and obeys \htmlrtf inside htmltag.
	OutlookQuirksMode bool

	// AllowCp0 decodes text under \ansicpg0 with label "cp0" instead of
	// failing.
	AllowCp0 bool

	// Warn receives non-fatal diagnostics.
	Warn func(msg string)
}

func (o Options) withDefaults() Options {
	if o.Decode == nil {
		o.Decode = codepage.Decode
	}
	if o.Encode == nil {
		o.Encode = codepage.Encode
	}
	if o.SymbolRecoder == nil {
		o.SymbolRecoder = DefaultSymbolRecoder
	}
	if o.Warn == nil {
		o.Warn = func(string) {}
	}
	return o
}

// Result is the outcome of a successful decode.
type Result struct {
	// Mode is ModeHTML or ModeText.
	Mode Mode

	// Text holds the payload for OutputString; Bytes for the other
	// output modes.
	Text  string
	Bytes []byte

	// DefaultCodepage is the document codepage from \ansicpg.
	DefaultCodepage int

	// OriginalHTMLCharset is the charset rewritten by HTMLFixContentType.
	OriginalHTMLCharset string

	Fonts FontTable
}
