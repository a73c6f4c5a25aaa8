// body.go decompresses the RTF body and recovers the HTML or text it
// encapsulates.

package tnef

import (
	"errors"

	"github.com/avaropoint/rtfex/parsers/rtfcp"
	"github.com/avaropoint/rtfex/parsers/rtfex"
)

func (d *decoder) decodeRTF(compressed []byte) {
	raw, err := rtfcp.Decompress(compressed)
	switch {
	case errors.Is(err, rtfcp.ErrChecksum):
		d.warnf("PR_RTF_COMPRESSED: %v", err)
	case err != nil:
		d.warnf("PR_RTF_COMPRESSED: %v", err)
		return
	}
	d.msg.BodyRTF = raw

	opts := d.opts.RTF
	warn := opts.Warn
	opts.Warn = func(msg string) {
		d.warnf("rtf body: %s", msg)
		if warn != nil {
			warn(msg)
		}
	}
	res, err := rtfex.Decode(raw, opts)
	if errors.Is(err, rtfex.ErrNotEncapsulated) {
		return
	}
	if err != nil {
		d.warnf("rtf body: %v", err)
		return
	}
	d.msg.PayloadMode = res.Mode
	if res.Bytes != nil {
		d.msg.Payload = res.Bytes
	} else {
		d.msg.Payload = []byte(res.Text)
	}
}
