// html.go post-processes HTML payload text.

package rtfex

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

const nbsp = '\u00A0'

var charsetAttr = regexp.MustCompile(`(?i)(charset\s*=\s*["']?)([^"'\s;/>]+)`)

// escapeHTML escapes payload text that sits outside HTML tags.
func (e *Engine) escapeHTML(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if r == ' ' && e.opts.HTMLPreserveSpaces {
			if e.afterSpace {
				r = nbsp
			}
			e.afterSpace = true
		} else {
			e.afterSpace = false
		}

		switch {
		case r == '<':
			sb.WriteString("&lt;")
		case r == '>':
			sb.WriteString("&gt;")
		case r == nbsp && e.opts.HTMLEncodeNonASCII:
			sb.WriteString("&nbsp;")
		case r > 0x7F && e.opts.HTMLEncodeNonASCII:
			sb.WriteString("&#")
			sb.WriteString(strconv.Itoa(int(r)))
			sb.WriteByte(';')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// fixContentType rewrites the charset of the first <meta> tag that
// declares one to UTF-8, since the payload is no longer in that
// charset. The original value is kept for OriginalHTMLCharset.
func (e *Engine) fixContentType(text string) string {
	if !e.opts.HTMLFixContentType || e.charsetFixed || e.opts.OutputMode == OutputDefaultCodepage {
		return text
	}

	z := html.NewTokenizer(strings.NewReader(text))
	offset := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return text
		}
		raw := string(z.Raw())
		start := offset
		offset += len(raw)

		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		if name, _ := z.TagName(); string(name) != "meta" {
			continue
		}
		m := charsetAttr.FindStringSubmatchIndex(raw)
		if m == nil {
			continue
		}

		e.charsetFixed = true
		e.htmlCharset = raw[m[4]:m[5]]
		fixed := raw[:m[4]] + "UTF-8" + raw[m[5]:]
		return text[:start] + fixed + text[offset:]
	}
}
