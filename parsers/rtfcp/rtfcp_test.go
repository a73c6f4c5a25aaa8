package rtfcp

import (
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

const (
	helloWorld = "2d0000002b0000004c5a4675f1c5c7a703000a0072637067313235423" +
		"20af32068656c09002062770" + "5b06c647d0a800fa0"
	repeated = "1a0000001c0000004c5a4675e2d44b51410004205758595a0d6e7d010eb0"
)

func TestDecompress(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dictionary references", helloWorld, "{\\rtf1\\ansi\\ansicpg1252\\pard hello world}\r\n"},
		{"overlapping run", repeated, "{\\rtf1 WXYZWXYZWXYZWXYZWXYZ}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := mustHex(t, tt.in)
			assert.True(t, IsCompressed(data))
			out, err := Decompress(data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestChecksum(t *testing.T) {
	data := mustHex(t, helloWorld)
	assert.Equal(t, uint32(0xA7C7C5F1), Checksum(data[headerSize:]))
	assert.Equal(t, uint32(0), Checksum(nil))
}

func TestChecksumMismatch(t *testing.T) {
	data := mustHex(t, repeated)
	data[12] ^= 0xFF
	out, err := Decompress(data)
	require.ErrorIs(t, err, ErrChecksum)
	assert.Equal(t, "{\\rtf1 WXYZWXYZWXYZWXYZWXYZ}", string(out))
}

func TestStore(t *testing.T) {
	rtf := []byte(`{\rtf1\ansi\fromtext hi}`)
	data := Store(rtf)
	h, err := ParseHeader(data)
	require.NoError(t, err)
	assert.Equal(t, uint32(MagicUncompressed), h.Magic)
	assert.Equal(t, uint32(len(rtf)), h.RawSize)

	out, err := Decompress(data)
	require.NoError(t, err)
	assert.Equal(t, rtf, out)
}

func TestInvalid(t *testing.T) {
	for name, data := range map[string][]byte{
		"nil":   nil,
		"short": {1, 2, 3},
		"magic": append(mustHex(t, repeated)[:8], 'X', 'X', 'X', 'X', 0, 0, 0, 0),
		"size":  {0, 0, 0, 0, 0, 0, 0, 0, 'L', 'Z', 'F', 'u', 0, 0, 0, 0},
	} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, IsCompressed(data))
			_, err := Decompress(data)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestTruncatedReference(t *testing.T) {
	data := mustHex(t, repeated)
	// cut inside the first reference
	data = data[:headerSize+2]
	binary.LittleEndian.PutUint32(data[0:4], uint32(len(data)-4))
	_, err := Decompress(data)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestTooLarge(t *testing.T) {
	data := mustHex(t, repeated)
	binary.LittleEndian.PutUint32(data[4:8], MaxRawSize+1)
	_, err := Decompress(data)
	assert.ErrorIs(t, err, ErrTooLarge)
}
