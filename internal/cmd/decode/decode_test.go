package decode

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avaropoint/rtfex/internal/config"
	"github.com/avaropoint/rtfex/parsers/rtfcp"
	"github.com/avaropoint/rtfex/parsers/rtfex"
)

const htmlDoc = `{\rtf1\ansi\ansicpg1252\fromhtml1\deff0{\fonttbl{\f0\fswiss Arial;}}` +
	`{\*\htmltag64 <p>}caf\'e9{\*\htmltag72 </p>}}`

func execute(t *testing.T, stdin []byte, args ...string) (string, string, error) {
	t.Helper()
	for _, v := range []string{"RTFEX_MODE", "RTFEX_OUTPUT", "RTFEX_PREFIX", "RTFEX_MARKDOWN"} {
		t.Setenv(v, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	parent := &cobra.Command{Use: "rtfex", SilenceUsage: true, SilenceErrors: true}
	parent.PersistentFlags().String("config", "", "")
	parent.PersistentFlags().Bool("verbose", false, "")
	parent.PersistentFlags().Bool("quiet", false, "")
	parent.AddCommand(NewCmdDecode())

	var stdout, stderr bytes.Buffer
	parent.SetOut(&stdout)
	parent.SetErr(&stderr)
	parent.SetIn(bytes.NewReader(stdin))
	parent.SetArgs(append([]string{"decode"}, args...))
	err := parent.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDecode_Stdin(t *testing.T) {
	out, _, err := execute(t, []byte(htmlDoc), "-")
	require.NoError(t, err)
	assert.Equal(t, "<p>café</p>", out)
}

func TestDecode_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msg.rtf")
	require.NoError(t, os.WriteFile(path, []byte(htmlDoc), 0o600))

	out, _, err := execute(t, nil, path, "--prefix")
	require.NoError(t, err)
	assert.Equal(t, "html:<p>café</p>", out)
}

func TestDecode_CodepageBytes(t *testing.T) {
	out, _, err := execute(t, []byte(htmlDoc), "-", "--codepage-bytes")
	require.NoError(t, err)
	assert.Equal(t, "<p>caf\xe9</p>", out)
}

func TestDecode_Compressed(t *testing.T) {
	out, _, err := execute(t, rtfcp.Store([]byte(htmlDoc)), "-")
	require.NoError(t, err)
	assert.Equal(t, "<p>café</p>", out)
}

func TestDecode_Markdown(t *testing.T) {
	out, _, err := execute(t, []byte(htmlDoc), "-", "--markdown")
	require.NoError(t, err)
	assert.Equal(t, "café\n", out)
}

func TestDecode_WriteFile(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.html")
	out, stderr, err := execute(t, []byte(htmlDoc), "-", "-w", dst)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "wrote payload")

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "<p>café</p>", string(data))
}

func TestDecode_ModeMismatch(t *testing.T) {
	_, _, err := execute(t, []byte(htmlDoc), "-", "--mode", "text")
	require.Error(t, err)
	assert.ErrorIs(t, err, rtfex.ErrNotEncapsulated)
}

func TestDecode_NotEncapsulated(t *testing.T) {
	_, _, err := execute(t, []byte(`{\rtf1\ansi plain}`), "-")
	require.Error(t, err)
	assert.ErrorIs(t, err, rtfex.ErrNotEncapsulated)
	assert.Contains(t, err.Error(), "stdin")
}

func TestDecode_WarningsLogged(t *testing.T) {
	doc := `{\rtf1\ansi\ansicpg1252\fromtext \f9 x}`
	out, stderr, err := execute(t, []byte(doc), "-")
	require.NoError(t, err)
	assert.Equal(t, "x", out)
	assert.Contains(t, stderr, "rtf warning")
	assert.Contains(t, stderr, "file=stdin")
}

func TestDecode_QuietHidesWarnings(t *testing.T) {
	doc := `{\rtf1\ansi\ansicpg1252\fromtext \f9 x}`
	_, stderr, err := execute(t, []byte(doc), "-", "--quiet")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestDecode_FlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, (&config.Config{Prefix: true}).Save(path))

	out, _, err := execute(t, []byte(htmlDoc), "-", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "html:<p>café</p>", out)

	out, _, err = execute(t, []byte(htmlDoc), "-", "--config", path, "--prefix=false")
	require.NoError(t, err)
	assert.Equal(t, "<p>café</p>", out)
}

func TestDecode_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad mode", []string{"--mode", "rtf"}, "mode"},
		{"codepage and output", []string{"--codepage-bytes", "--output", "utf8"}, "mutually exclusive"},
		{"markdown and codepage", []string{"--markdown", "--output", "codepage"}, "markdown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, []byte(htmlDoc), append([]string{"-"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDecode_WriteFileErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-dir", "out.html")
	_, _, err := execute(t, []byte(htmlDoc), "-", "-w", missing)
	require.Error(t, err)

	if _, statErr := os.Stat("/dev/full"); statErr != nil {
		t.Skip("no /dev/full")
	}
	_, stderr, err := execute(t, []byte(htmlDoc), "-", "-w", "/dev/full")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/dev/full")
	assert.NotContains(t, stderr, "wrote payload")
}

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, writeOutput(path, []byte("payload")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}
