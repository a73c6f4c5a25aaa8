package formats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avaropoint/rtfex/formats"
	_ "github.com/avaropoint/rtfex/formats/compressed"
	_ "github.com/avaropoint/rtfex/formats/rtf"
	_ "github.com/avaropoint/rtfex/formats/tnef"
	"github.com/avaropoint/rtfex/parsers/rtfcp"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		want     string
	}{
		{"rtf by content", "mail.bin", []byte(`{\rtf1\ansi}`), "RTF"},
		{"compressed by content", "body", rtfcp.Store([]byte(`{\rtf1}`)), "Compressed RTF"},
		{"tnef by content", "x", []byte{0x78, 0x9f, 0x3e, 0x22, 0, 0}, "TNEF (winmail.dat)"},
		{"tnef by extension", "WINMAIL.DAT", []byte("junk"), "TNEF (winmail.dat)"},
		{"rtf by extension", "a.rtf", nil, "RTF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := formats.Detect(tt.filename, tt.data)
			require.NotNil(t, c)
			assert.Equal(t, tt.want, c.Name())
		})
	}

	assert.Nil(t, formats.Detect("test.xyz", nil))
	assert.Len(t, formats.All(), 3)
}
