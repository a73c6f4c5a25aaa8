package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avaropoint/rtfex/parsers/rtfex"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal.txt", "normal.txt"},
		{"path/to/file.txt", "path_to_file.txt"},
		{"", "unnamed"},
		{"..", "unnamed"},
		{"a:b*c?d", "a_b_c_d"},
		{"tab\there", "tabhere"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.input), "input %q", tt.input)
	}
}

func TestPrefixed(t *testing.T) {
	assert.Equal(t, "body.html", Prefixed("", "body.html"))
	assert.Equal(t, "fwd_body.html", Prefixed("fwd", "body.html"))
}

func TestDataURI(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,YWJj", DataURI("x.PNG", "", []byte("abc")))
	assert.Equal(t, "data:image/gif;base64,", DataURI("x.png", "image/gif", nil))
	assert.Equal(t, "application/octet-stream", MimeFromName("noext"))
}

func TestRTFBody(t *testing.T) {
	html := `{\rtf1\ansi\fromhtml1 {\*\htmltag <p>}Hello {\*\htmltag <b>}world{\*\htmltag </b></p>}}`

	files, err := RTFBody([]byte(html), Options{Markdown: true}, "")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "body.html", files[0].Name)
	assert.Equal(t, "<p>Hello <b>world</b></p>", string(files[0].Data))
	assert.Equal(t, "body.md", files[1].Name)
	assert.Equal(t, "Hello **world**\n", string(files[1].Data))

	files, err = RTFBody([]byte(`{\rtf1\ansi\fromtext hi}`), Options{Markdown: true}, "fwd")
	require.NoError(t, err)
	assert.Equal(t, []ConvertedFile{{Name: "fwd_body.txt", Data: []byte("hi"), Category: CategoryBody}}, files)

	files, err = RTFBody([]byte(`{\rtf1\ansi plain}`), Options{}, "")
	require.NoError(t, err)
	assert.Empty(t, files)

	_, err = RTFBody([]byte(`{\rtf1\ansi\fromtext\fromtext}`), Options{}, "")
	assert.ErrorIs(t, err, rtfex.ErrSemantic)
}

func TestRTFBodyWarnings(t *testing.T) {
	var warnings []string
	opts := Options{Warn: func(m string) { warnings = append(warnings, m) }}
	_, err := RTFBody([]byte(`{\rtf1\ansi\fromtext hi`), opts, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"not enough matching closing brackets"}, warnings)
}

func TestToMarkdownEmpty(t *testing.T) {
	md, err := ToMarkdown([]byte("  \n"))
	require.NoError(t, err)
	assert.Nil(t, md)
}
