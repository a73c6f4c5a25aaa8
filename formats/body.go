// body.go turns de-encapsulated RTF into body files.

package formats

import (
	"errors"
	"fmt"

	"github.com/avaropoint/rtfex/parsers/rtfex"
)

// RTFBody de-encapsulates rtf and returns body.html or body.txt, plus
// body.md for HTML when opts.Markdown is set. RTF that encapsulates
// nothing yields no files and no error.
func RTFBody(rtf []byte, opts Options, prefix string) ([]ConvertedFile, error) {
	ro := opts.RTF
	if ro.Warn == nil {
		ro.Warn = opts.Warn
	}
	res, err := rtfex.Decode(rtf, ro)
	if errors.Is(err, rtfex.ErrNotEncapsulated) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	payload := res.Bytes
	if payload == nil {
		payload = []byte(res.Text)
	}
	return PayloadFiles(payload, res.Mode, opts, prefix)
}

// PayloadFiles names a decoded payload after its mode.
func PayloadFiles(payload []byte, mode rtfex.Mode, opts Options, prefix string) ([]ConvertedFile, error) {
	if mode != rtfex.ModeHTML {
		return []ConvertedFile{{
			Name:     Prefixed(prefix, "body.txt"),
			Data:     payload,
			Category: CategoryBody,
		}}, nil
	}
	files := []ConvertedFile{{
		Name:     Prefixed(prefix, "body.html"),
		Data:     payload,
		Category: CategoryBody,
	}}
	if opts.Markdown {
		md, err := ToMarkdown(payload)
		if err != nil {
			return nil, fmt.Errorf("markdown: %w", err)
		}
		files = append(files, ConvertedFile{
			Name:     Prefixed(prefix, "body.md"),
			Data:     md,
			Category: CategoryBody,
		})
	}
	return files, nil
}
