// Package rtfcp reads compressed RTF (MS-OXRTFCP), the form Outlook
// stores message bodies in as PR_RTF_COMPRESSED.
package rtfcp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
)

// Header magic values.
const (
	MagicCompressed   = 0x75465A4C // "LZFu"
	MagicUncompressed = 0x414C454D // "MELA"
)

const (
	headerSize = 16
	ringSize   = 4096

	// MaxRawSize caps the decompressed size a header may claim.
	MaxRawSize = 64 << 20
)

// seed is the dictionary the ring buffer starts with. Writing begins
// right after it.
var seed = []byte(
	"{\\rtf1\\ansi\\mac\\deff0\\deftab720{\\fonttbl;}" +
		"{\\f0\\fnil \\froman \\fswiss \\fmodern \\fscript " +
		"\\fdecor MS Sans SerifSymbolArialTimes New Roman" +
		"Courier{\\colortbl\\red0\\green0\\blue0\r\n\\par " +
		"\\pard\\plain\\f0\\fs20\\b\\i\\u\\tab\\tx",
)

var (
	// ErrInvalid is returned for data that is not compressed RTF.
	ErrInvalid = errors.New("invalid compressed RTF")

	// ErrTooLarge is returned when the header claims more than MaxRawSize.
	ErrTooLarge = errors.New("compressed RTF too large")

	// ErrChecksum is returned, together with the decompressed output,
	// when the CRC in the header does not match the payload.
	ErrChecksum = errors.New("compressed RTF checksum mismatch")
)

// Header is the 16-byte prefix of a compressed RTF stream.
type Header struct {
	CompSize uint32 // bytes after the CompSize field
	RawSize  uint32
	Magic    uint32
	CRC      uint32
}

// ParseHeader reads the stream header.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < headerSize {
		return Header{}, fmt.Errorf("%w: %d bytes is shorter than the header", ErrInvalid, len(data))
	}
	h := Header{
		CompSize: binary.LittleEndian.Uint32(data[0:4]),
		RawSize:  binary.LittleEndian.Uint32(data[4:8]),
		Magic:    binary.LittleEndian.Uint32(data[8:12]),
		CRC:      binary.LittleEndian.Uint32(data[12:16]),
	}
	if h.Magic != MagicCompressed && h.Magic != MagicUncompressed {
		return Header{}, fmt.Errorf("%w: unknown magic %#08x", ErrInvalid, h.Magic)
	}
	if h.CompSize < headerSize-4 {
		return Header{}, fmt.Errorf("%w: compressed size %d", ErrInvalid, h.CompSize)
	}
	return h, nil
}

// IsCompressed reports whether data starts with a compressed RTF header.
func IsCompressed(data []byte) bool {
	_, err := ParseHeader(data)
	return err == nil
}

// Checksum computes the CRC the header carries: CRC-32 with the IEEE
// polynomial, a zero initial value and no final inversion.
func Checksum(p []byte) uint32 {
	return ^crc32.Update(0xFFFFFFFF, crc32.IEEETable, p)
}

// Decompress returns the RTF held in data. On ErrChecksum the
// decompressed output is returned as well.
func Decompress(data []byte) ([]byte, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	if h.RawSize > MaxRawSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, h.RawSize)
	}

	end := int(h.CompSize) + 4
	if end > len(data) {
		end = len(data)
	}
	payload := data[headerSize:end]

	if h.Magic == MagicUncompressed {
		if int(h.RawSize) < len(payload) {
			payload = payload[:h.RawSize]
		}
		return append([]byte(nil), payload...), nil
	}

	out, err := inflate(payload, int(h.RawSize))
	if err != nil {
		return nil, err
	}
	if sum := Checksum(payload); sum != h.CRC {
		return out, fmt.Errorf("%w: got %#08x, header says %#08x", ErrChecksum, sum, h.CRC)
	}
	return out, nil
}

// inflate runs the LZ77 loop. Each control byte governs up to eight
// items, low bit first: 0 is a literal byte, 1 a two-byte reference
// holding a 12-bit ring offset and a 4-bit length less two. A reference
// to the current write position ends the stream.
func inflate(in []byte, rawSize int) ([]byte, error) {
	var ring [ringSize]byte
	copy(ring[:], seed)
	wp := len(seed)

	out := make([]byte, 0, rawSize)
	put := func(b byte) {
		out = append(out, b)
		ring[wp] = b
		wp = (wp + 1) % ringSize
	}

	pos := 0
	for pos < len(in) {
		control := in[pos]
		pos++
		for bit := 0; bit < 8 && pos < len(in); bit++ {
			if control&(1<<bit) == 0 {
				put(in[pos])
				pos++
				continue
			}
			if pos+1 >= len(in) {
				return nil, fmt.Errorf("%w: truncated reference at %d", ErrInvalid, pos)
			}
			ref := int(in[pos])<<8 | int(in[pos+1])
			pos += 2
			offset, length := ref>>4, ref&0x0F+2
			if offset == wp {
				return trim(out, rawSize), nil
			}
			for i := 0; i < length; i++ {
				put(ring[(offset+i)%ringSize])
			}
		}
		if len(out) > MaxRawSize {
			return nil, fmt.Errorf("%w: output passed %d bytes", ErrTooLarge, MaxRawSize)
		}
	}
	return trim(out, rawSize), nil
}

func trim(out []byte, rawSize int) []byte {
	if len(out) > rawSize {
		return out[:rawSize]
	}
	return out
}

// Store wraps raw RTF in an uncompressed ("MELA") stream.
func Store(rtf []byte) []byte {
	out := make([]byte, headerSize, headerSize+len(rtf))
	binary.LittleEndian.PutUint32(out[0:4], uint32(len(rtf)+headerSize-4))
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(rtf)))
	binary.LittleEndian.PutUint32(out[8:12], MagicUncompressed)
	return append(out, rtf...)
}
