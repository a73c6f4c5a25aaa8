// Package rtf implements the converter for RTF documents that
// encapsulate HTML or plain text. It is registered with the formats
// registry on import.
package rtf

import (
	"bytes"
	"errors"

	"github.com/avaropoint/rtfex/formats"
)

// ErrNotEncapsulated is returned for RTF with no encapsulated body.
var ErrNotEncapsulated = errors.New("RTF does not encapsulate HTML or text")

var magic = []byte(`{\rtf`)

func init() {
	formats.Register(&converter{})
}

type converter struct{}

func (c *converter) Name() string {
	return "RTF"
}

func (c *converter) Extensions() []string {
	return []string{".rtf"}
}

func (c *converter) Match(data []byte) bool {
	return bytes.HasPrefix(data, magic)
}

func (c *converter) Convert(data []byte, opts formats.Options) ([]formats.ConvertedFile, error) {
	files, err := formats.RTFBody(data, opts, "")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNotEncapsulated
	}
	return files, nil
}
