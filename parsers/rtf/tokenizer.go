// tokenizer.go implements the streaming RTF lexer.

package rtf

import (
	"fmt"
	"math"
	"strconv"
)

type lexMode uint8

const (
	modeNormal lexMode = iota
	modeControlStart
	modeControlWord
	modeControlParam
	modeBinary
	modeHex
)

// Tokenizer converts RTF bytes into Tokens. It keeps state across
// Feed calls, so input may be split at any byte boundary. A Tokenizer
// is not safe for concurrent use and cannot be reset; create a new one
// per stream.
type Tokenizer struct {
	mode     lexMode
	cur      *Token
	param    []byte
	binLeft  int
	hexCount int
	offset   int64

	warn     func(string)
	reported bool
}

// NewTokenizer returns a Tokenizer. warn, if non-nil, receives
// non-fatal diagnostics such as unescaped 8-bit bytes.
func NewTokenizer(warn func(string)) *Tokenizer {
	return &Tokenizer{warn: warn}
}

// Tokenize is a convenience wrapper that lexes a complete buffer.
func Tokenize(data []byte) []Token {
	t := NewTokenizer(nil)
	return t.Finish(t.Feed(nil, data))
}

// Feed lexes p and appends every token completed by it to dst.
// A token still in progress at the end of p is kept for the next call.
func (t *Tokenizer) Feed(dst []Token, p []byte) []Token {
	for i := 0; i < len(p); {
		if t.step(&dst, p[i]) {
			i++
			t.offset++
		}
	}
	return dst
}

// Finish flushes any token in progress and appends it to dst.
// An incomplete hex escape yields a "'" token with empty Data.
func (t *Tokenizer) Finish(dst []Token) []Token {
	switch t.mode {
	case modeControlWord, modeControlParam:
		t.endParam()
	case modeHex:
		t.cur.Data = t.cur.Data[:0]
	}
	t.mode = modeNormal
	return t.flush(dst)
}

// step consumes c in the current mode. It returns false when c must
// be re-processed in the mode the step switched to.
func (t *Tokenizer) step(dst *[]Token, c byte) bool {
	switch t.mode {
	case modeNormal:
		t.normal(dst, c)

	case modeControlStart:
		if isLetter(c) {
			t.cur = &Token{Kind: Control, Word: string(c)}
			t.mode = modeControlWord
			return true
		}
		t.cur = &Token{Kind: Control, Word: string(c)}
		if c == '\'' {
			t.cur.Data = []byte{0}
			t.hexCount = 0
			t.mode = modeHex
			return true
		}
		*dst = t.flush(*dst)
		t.mode = modeNormal

	case modeControlWord:
		switch {
		case isLetter(c):
			t.cur.Word += string(c)
		case isDigit(c) || c == '-':
			t.param = append(t.param[:0], c)
			t.mode = modeControlParam
		default:
			return t.endWord(dst, c)
		}

	case modeControlParam:
		if isDigit(c) {
			t.param = append(t.param, c)
			return true
		}
		t.endParam()
		return t.endWord(dst, c)

	case modeBinary:
		t.cur.Data = append(t.cur.Data, c)
		t.binLeft--
		if t.binLeft <= 0 {
			*dst = t.flush(*dst)
			t.mode = modeNormal
		}

	case modeHex:
		t.cur.Data[0] = t.cur.Data[0]<<4 | t.nibble(c)
		t.hexCount++
		if t.hexCount == 2 {
			*dst = t.flush(*dst)
			t.mode = modeNormal
		}
	}
	return true
}

// normal handles a byte outside any control sequence.
func (t *Tokenizer) normal(dst *[]Token, c byte) {
	switch c {
	case '{':
		*dst = append(t.flush(*dst), Token{Kind: GroupStart})
	case '}':
		*dst = append(t.flush(*dst), Token{Kind: GroupEnd})
	case '\\':
		*dst = t.flush(*dst)
		t.mode = modeControlStart
	case '\r', '\n':
		// line wrapping in the file, not content
	default:
		if c >= 0x80 && !t.reported {
			t.reported = true
			t.warnf("8-bit byte 0x%02x at offset %d; RTF text should be 7-bit", c, t.offset)
		}
		if t.cur == nil {
			t.cur = &Token{Kind: Text}
		}
		t.cur.Data = append(t.cur.Data, c)
	}
}

// endWord terminates a control word at byte c. A single space is the
// delimiter and is consumed; anything else is re-processed.
func (t *Tokenizer) endWord(dst *[]Token, c byte) bool {
	if t.cur.Word == "bin" && t.cur.HasParam && t.cur.Param > 0 {
		t.binLeft = int(t.cur.Param)
		t.cur.Data = make([]byte, 0, min(t.binLeft, 1<<16))
		t.mode = modeBinary
		return c == ' '
	}
	*dst = t.flush(*dst)
	t.mode = modeNormal
	return c == ' '
}

// endParam parses the accumulated parameter digits into cur. Values
// beyond the int32 range are clamped.
func (t *Tokenizer) endParam() {
	if t.mode != modeControlParam || len(t.param) == 0 {
		return
	}
	s := string(t.param)
	t.param = t.param[:0]
	if s == "-" {
		return
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		if s[0] == '-' {
			n = math.MinInt32
		} else {
			n = math.MaxInt32
		}
	}
	t.cur.Param = int32(n)
	t.cur.HasParam = true
}

// flush appends the pending token, if any, to dst.
func (t *Tokenizer) flush(dst []Token) []Token {
	if t.cur == nil {
		return dst
	}
	dst = append(dst, *t.cur)
	t.cur = nil
	return dst
}

func (t *Tokenizer) nibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	t.warnf("bad hex digit %q at offset %d", c, t.offset)
	return 0
}

func (t *Tokenizer) warnf(format string, args ...any) {
	if t.warn != nil {
		t.warn(fmt.Sprintf(format, args...))
	}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
