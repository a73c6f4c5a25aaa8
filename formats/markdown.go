// markdown.go renders HTML bodies as Markdown.

package formats

import (
	"bytes"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// ToMarkdown converts an HTML body to Markdown.
func ToMarkdown(html []byte) ([]byte, error) {
	if len(bytes.TrimSpace(html)) == 0 {
		return nil, nil
	}
	md, err := htmltomarkdown.ConvertString(string(html))
	if err != nil {
		return nil, err
	}
	return []byte(strings.TrimSpace(md) + "\n"), nil
}
