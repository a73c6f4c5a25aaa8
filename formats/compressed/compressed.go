// Package compressed implements the converter for compressed RTF
// (PR_RTF_COMPRESSED streams saved to a file). It is registered with
// the formats registry on import.
package compressed

import (
	"errors"
	"fmt"

	"github.com/avaropoint/rtfex/formats"
	"github.com/avaropoint/rtfex/parsers/rtfcp"
)

func init() {
	formats.Register(&converter{})
}

type converter struct{}

func (c *converter) Name() string {
	return "Compressed RTF"
}

func (c *converter) Extensions() []string {
	return []string{".lzfu", ".rtfc"}
}

func (c *converter) Match(data []byte) bool {
	return rtfcp.IsCompressed(data)
}

// Convert writes the decompressed body.rtf and whatever body it
// encapsulates. A checksum mismatch is reported and ignored.
func (c *converter) Convert(data []byte, opts formats.Options) ([]formats.ConvertedFile, error) {
	raw, err := rtfcp.Decompress(data)
	if errors.Is(err, rtfcp.ErrChecksum) {
		opts.Warnf("%v", err)
	} else if err != nil {
		return nil, err
	}

	files := []formats.ConvertedFile{{
		Name:     "body.rtf",
		Data:     raw,
		Category: formats.CategoryBody,
	}}
	body, err := formats.RTFBody(raw, opts, "")
	if err != nil {
		return nil, fmt.Errorf("decompressed RTF: %w", err)
	}
	return append(files, body...), nil
}
