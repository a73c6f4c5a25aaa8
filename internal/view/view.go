// Package view provides output formatting for rtfex commands.
package view

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

// Renderer writes human-readable or JSON output.
type Renderer struct {
	writer io.Writer
	json   bool
}

// NewRenderer creates a renderer writing to stdout.
func NewRenderer(jsonOutput, noColor bool) *Renderer {
	if noColor {
		color.NoColor = true
	}
	return &Renderer{writer: os.Stdout, json: jsonOutput}
}

// SetWriter sets the output writer.
func (r *Renderer) SetWriter(w io.Writer) {
	r.writer = w
}

// JSON reports whether the renderer emits JSON.
func (r *Renderer) JSON() bool {
	return r.json
}

// RenderJSON renders an object as indented JSON.
func (r *Renderer) RenderJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.writer, string(data))
	return err
}

// RenderKeyValue renders an aligned key-value pair with the given
// indent. Empty values are skipped.
func (r *Renderer) RenderKeyValue(indent, key, value string) {
	if value == "" {
		return
	}
	bold := color.New(color.Bold)
	fmt.Fprint(r.writer, indent)
	bold.Fprintf(r.writer, "%-13s", key+":")
	fmt.Fprintln(r.writer, value)
}

// RenderTable renders rows under a header line.
func (r *Renderer) RenderTable(indent string, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, val := range row {
			if i < len(widths) && len(val) > widths[i] {
				widths[i] = len(val)
			}
		}
	}

	line := func(cells []string, c *color.Color) {
		var sb strings.Builder
		sb.WriteString(indent)
		for i, val := range cells {
			if i > 0 {
				sb.WriteString("  ")
			}
			if i == len(cells)-1 {
				sb.WriteString(val)
			} else {
				fmt.Fprintf(&sb, "%-*s", widths[i], val)
			}
		}
		c.Fprintln(r.writer, sb.String())
	}
	line(headers, color.New(color.Bold))
	for _, row := range rows {
		line(row, color.New(color.Reset))
	}
}

// RenderDivider prints a horizontal rule.
func (r *Renderer) RenderDivider(indent string) {
	fmt.Fprintln(r.writer, indent+strings.Repeat("─", max(60-len(indent), 10)))
}

// RenderText renders plain text.
func (r *Renderer) RenderText(text string) {
	fmt.Fprintln(r.writer, text)
}

// Success prints a success message.
func (r *Renderer) Success(msg string) {
	color.New(color.FgGreen).Fprintln(r.writer, "✓ "+msg)
}

// Warning prints a warning message.
func (r *Renderer) Warning(msg string) {
	color.New(color.FgYellow).Fprintln(r.writer, "! "+msg)
}

// Error prints an error message.
func (r *Renderer) Error(msg string) {
	color.New(color.FgRed).Fprintln(r.writer, "✗ "+msg)
}

// Size formats a byte count for display.
func Size(n int) string {
	return humanize.IBytes(uint64(max(n, 0)))
}
