// inline.go turns attachments referenced from HTML bodies into data
// URIs so a body file renders without its attachments beside it.

package formats

import (
	"encoding/base64"
	"path/filepath"
	"strings"
)

// DataURI returns data as a base64 data URI, typed by mimeType or, when
// that is empty, by the extension of name.
func DataURI(name, mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = MimeFromName(name)
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// MimeFromName returns a MIME type based on file extension.
func MimeFromName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".bmp":
		return "image/bmp"
	case ".svg":
		return "image/svg+xml"
	case ".webp":
		return "image/webp"
	case ".txt":
		return "text/plain"
	case ".rtf":
		return "application/rtf"
	case ".html", ".htm":
		return "text/html"
	default:
		return "application/octet-stream"
	}
}
