package view

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(jsonOutput bool) (*Renderer, *bytes.Buffer) {
	var buf bytes.Buffer
	r := NewRenderer(jsonOutput, true)
	r.SetWriter(&buf)
	return r, &buf
}

func TestRenderKeyValue(t *testing.T) {
	r, buf := newTestRenderer(false)
	r.RenderKeyValue("  ", "Subject", "hello")
	r.RenderKeyValue("", "Empty", "")
	assert.Equal(t, "  Subject:     hello\n", buf.String())
}

func TestRenderTable(t *testing.T) {
	r, buf := newTestRenderer(false)
	r.RenderTable("", []string{"ID", "NAME"}, [][]string{{"0", "Arial"}, {"12", "Courier New"}})
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{"ID  NAME", "0   Arial", "12  Courier New"}, lines)
}

func TestRenderJSON(t *testing.T) {
	r, buf := newTestRenderer(true)
	assert.True(t, r.JSON())
	require.NoError(t, r.RenderJSON(map[string]int{"fonts": 2}))

	var got map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 2, got["fonts"])
}

func TestMessages(t *testing.T) {
	r, buf := newTestRenderer(false)
	r.Success("done")
	r.Warning("careful")
	r.Error("failed")
	assert.Equal(t, "✓ done\n! careful\n✗ failed\n", buf.String())
}

func TestSize(t *testing.T) {
	assert.Equal(t, "0 B", Size(0))
	assert.Equal(t, "1.5 KiB", Size(1536))
	assert.Equal(t, "0 B", Size(-1))
}
