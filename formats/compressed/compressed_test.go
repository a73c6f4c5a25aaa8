package compressed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avaropoint/rtfex/formats"
	"github.com/avaropoint/rtfex/parsers/rtfcp"
)

func TestConvert(t *testing.T) {
	c := &converter{}
	rtf := []byte(`{\rtf1\ansi\fromtext hello}`)
	data := rtfcp.Store(rtf)
	require.True(t, c.Match(data))

	files, err := c.Convert(data, formats.Options{})
	require.NoError(t, err)
	assert.Equal(t, []formats.ConvertedFile{
		{Name: "body.rtf", Data: rtf, Category: formats.CategoryBody},
		{Name: "body.txt", Data: []byte("hello"), Category: formats.CategoryBody},
	}, files)
}

func TestConvertPlainRTF(t *testing.T) {
	files, err := (&converter{}).Convert(rtfcp.Store([]byte(`{\rtf1 plain}`)), formats.Options{})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "body.rtf", files[0].Name)
}

func TestConvertInvalid(t *testing.T) {
	c := &converter{}
	assert.False(t, c.Match([]byte("LZFu")))
	_, err := c.Convert([]byte("LZFu"), formats.Options{})
	assert.ErrorIs(t, err, rtfcp.ErrInvalid)
}
