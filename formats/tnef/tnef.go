// Package tnef implements the TNEF (winmail.dat) format converter.
// It is automatically registered with the formats registry on import.
package tnef

import (
	"encoding/binary"

	"github.com/avaropoint/rtfex/formats"
	"github.com/avaropoint/rtfex/parsers/rtfex"
	parser "github.com/avaropoint/rtfex/parsers/tnef"
)

const tnefSignature = 0x223e9f78

func init() {
	formats.Register(&converter{})
}

type converter struct{}

func (c *converter) Name() string {
	return "TNEF (winmail.dat)"
}

func (c *converter) Extensions() []string {
	return []string{".dat", ".tnef"}
}

func (c *converter) Match(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	return binary.LittleEndian.Uint32(data[0:4]) == tnefSignature
}

func (c *converter) Convert(data []byte, opts formats.Options) ([]formats.ConvertedFile, error) {
	msg, err := parser.Decode(data, parser.Options{RTF: opts.RTF, Warn: opts.Warn})
	if err != nil {
		return nil, err
	}
	return collectAll(msg, "", opts)
}

// collectAll extracts the bodies and attachments of msg and of every
// message embedded in it. cid: references in HTML bodies become data
// URIs.
func collectAll(msg *parser.Message, prefix string, opts formats.Options) ([]formats.ConvertedFile, error) {
	var files []formats.ConvertedFile

	msg.ResolveContentIDs(func(att *parser.Attachment) string {
		if len(att.Data) == 0 {
			return ""
		}
		return formats.DataURI(att.Filename(), att.MimeType, att.Data)
	})

	if len(msg.Body) > 0 {
		files = append(files, formats.ConvertedFile{
			Name:     formats.Prefixed(prefix, "body.txt"),
			Data:     msg.Body,
			Category: formats.CategoryBody,
		})
	}
	if len(msg.BodyHTML) > 0 {
		html, err := formats.PayloadFiles(msg.BodyHTML, rtfex.ModeHTML, opts, prefix)
		if err != nil {
			return nil, err
		}
		files = append(files, html...)
	}
	if len(msg.BodyRTF) > 0 {
		files = append(files, formats.ConvertedFile{
			Name:     formats.Prefixed(prefix, "body.rtf"),
			Data:     msg.BodyRTF,
			Category: formats.CategoryBody,
		})
	}
	if len(msg.Payload) > 0 {
		// names must not collide with PR_BODY and PR_BODY_HTML
		payload, err := formats.PayloadFiles(msg.Payload, msg.PayloadMode, opts, formats.Prefixed(prefix, "rtf"))
		if err != nil {
			return nil, err
		}
		files = append(files, payload...)
	}

	for _, att := range msg.Attachments {
		name := formats.Prefixed(prefix, formats.SanitizeFilename(att.Filename()))
		switch {
		case att.EmbeddedMsg != nil:
			sub, err := collectAll(att.EmbeddedMsg, name, opts)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
		case len(att.Data) > 0:
			files = append(files, formats.ConvertedFile{
				Name:     name,
				Data:     att.Data,
				Category: formats.CategoryAttachment,
			})
		}
	}

	return files, nil
}
