// Package rtf tokenizes Rich Text Format streams and classifies the
// control words found in them.
//
// The tokenizer is a byte-at-a-time state machine that can be fed
// arbitrary chunks; it never interprets group structure or text
// encodings. Those belong to the de-encapsulation engine in
// package rtfex.
package rtf

import (
	"fmt"
	"strconv"
)

// Kind identifies the shape of a Token.
type Kind uint8

// Token kinds.
const (
	GroupStart Kind = iota // "{"
	GroupEnd               // "}"
	Control                // control word or control symbol
	Text                   // run of plain bytes
)

func (k Kind) String() string {
	switch k {
	case GroupStart:
		return "GroupStart"
	case GroupEnd:
		return "GroupEnd"
	case Control:
		return "Control"
	case Text:
		return "Text"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is one lexical unit of an RTF stream.
//
// Control tokens carry Word (a letter sequence, or a single character
// for control symbols) and an optional Param. The "'" symbol and the
// "bin" word carry their raw payload in Data. Text tokens carry the
// undecoded bytes in Data.
type Token struct {
	Kind     Kind
	Word     string
	Param    int32
	HasParam bool
	Data     []byte
}

// IsWord reports whether t is a Control token with the given word.
func (t Token) IsWord(word string) bool {
	return t.Kind == Control && t.Word == word
}

func (t Token) String() string {
	switch t.Kind {
	case Control:
		s := `\` + t.Word
		if t.HasParam {
			s += strconv.Itoa(int(t.Param))
		}
		if t.Data != nil {
			s += fmt.Sprintf(" [% x]", t.Data)
		}
		return s
	case Text:
		return strconv.Quote(string(t.Data))
	case GroupStart:
		return "{"
	case GroupEnd:
		return "}"
	}
	return t.Kind.String()
}
