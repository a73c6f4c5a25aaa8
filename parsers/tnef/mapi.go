// mapi.go decodes MAPI property streams embedded within TNEF attributes.

package tnef

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/avaropoint/rtfex/parsers/codepage"
)

const (
	mvFlag      = 0x1000
	maxValues   = 4096
	namedIDBase = 0x8000
)

// MAPIAttr holds a single decoded MAPI property.
type MAPIAttr struct {
	Type   int      // property type without the multi-value flag
	ID     int      // property ID, e.g. 0x0037 for PR_SUBJECT
	Named  bool     // a named property; ID is only meaningful with its GUID
	Values [][]byte // raw values; single-valued properties have one
}

// Data returns the first value.
func (a *MAPIAttr) Data() []byte {
	if len(a.Values) == 0 {
		return nil
	}
	return a.Values[0]
}

// Uint32 returns the first value as a little-endian integer.
func (a *MAPIAttr) Uint32() (uint32, bool) {
	d := a.Data()
	if len(d) < 4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(d), true
}

// Text returns the first value as a string. PT_UNICODE is UTF-16LE;
// PT_STRING8 is in codepage cpg. Trailing NULs and surrounding space
// are removed.
func (a *MAPIAttr) Text(cpg int) string {
	d := a.Data()
	var s string
	switch a.Type {
	case PTUnicode:
		s, _ = codepage.Decode(d, "cp1200")
	case PTString8:
		var err error
		if s, err = codepage.Decode(d, codepage.Label(cpg)); err != nil {
			s = string(d)
		}
	default:
		s = string(d)
	}
	return cleanStr(s)
}

// decodeProps parses a property count followed by that many
// properties. It returns the properties and the bytes consumed. A
// block that ends before count properties is read returns what was
// decoded with an error.
func decodeProps(data []byte) ([]MAPIAttr, int, error) {
	if len(data) < 4 {
		return nil, len(data), fmt.Errorf("property block of %d bytes has no count", len(data))
	}
	count := int(binary.LittleEndian.Uint32(data))
	off := 4

	// every property takes at least 8 bytes
	capped := count
	if limit := len(data) / 8; capped > limit {
		capped = limit
	}
	attrs := make([]MAPIAttr, 0, capped)

	for i := 0; i < capped; i++ {
		a, n, ok := decodeProp(data[off:])
		if !ok {
			return attrs, len(data), fmt.Errorf("property %d of %d runs past the end of the block", i+1, count)
		}
		attrs = append(attrs, a)
		off += n
	}
	if capped < count {
		return attrs, off, fmt.Errorf("block holds %d of %d properties", capped, count)
	}
	return attrs, off, nil
}

func decodeProp(data []byte) (MAPIAttr, int, bool) {
	off := 0
	u32 := func() (int, bool) {
		if off+4 > len(data) {
			return 0, false
		}
		v := int(binary.LittleEndian.Uint32(data[off:]))
		off += 4
		return v, true
	}

	if len(data) < 4 {
		return MAPIAttr{}, 0, false
	}
	pt := int(binary.LittleEndian.Uint16(data[0:]))
	a := MAPIAttr{
		Type: pt &^ mvFlag,
		ID:   int(binary.LittleEndian.Uint16(data[2:])),
	}
	off = 4
	multi := pt&mvFlag != 0
	size := fixedPropSize(a.Type)

	// Named properties carry a GUID, then a numeric ID or a name.
	if a.ID >= namedIDBase {
		a.Named = true
		off += 16
		kind, ok := u32()
		if !ok {
			return a, 0, false
		}
		if kind == 0 {
			if _, ok := u32(); !ok {
				return a, 0, false
			}
		} else {
			nl, ok := u32()
			if !ok || nl < 0 {
				return a, 0, false
			}
			off += nl + padTo4(nl)
		}
	}

	count := 1
	// variable-length values always carry a count
	if multi || size < 0 {
		var ok bool
		if count, ok = u32(); !ok || count < 0 || count > maxValues {
			return a, 0, false
		}
	}

	for v := 0; v < count; v++ {
		l := size
		if l < 0 {
			var ok bool
			if l, ok = u32(); !ok {
				return a, 0, false
			}
		}
		if l < 0 || off+l > len(data) {
			return a, 0, false
		}
		a.Values = append(a.Values, data[off:off+l])
		off += l + padTo4(l)
	}
	if off > len(data) {
		off = len(data)
	}
	return a, off, true
}

// fixedPropSize returns the byte size for a fixed-width MAPI property type,
// or -1 for variable-length types that carry an explicit length prefix.
func fixedPropSize(pt int) int {
	switch pt {
	case 0x0005, 0x0006, 0x0007, 0x0014, 0x0040:
		return 8
	case 0x0048:
		return 16
	case PTString8, PTUnicode, PTObject, PTBinary:
		return -1
	default:
		return 4
	}
}

// padTo4 returns the number of padding bytes needed to align n to a 4-byte boundary.
func padTo4(n int) int {
	return (4 - n%4) % 4
}

// cleanStr strips NULs and surrounding whitespace.
func cleanStr(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\x00", ""))
}
