package inspect

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avaropoint/rtfex/parsers/rtfcp"
)

// execute runs cmd under a parent carrying the root persistent flags.
func execute(t *testing.T, cmd *cobra.Command, stdin []byte, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	parent := &cobra.Command{Use: "rtfex", SilenceUsage: true, SilenceErrors: true}
	parent.PersistentFlags().String("config", "", "")
	parent.PersistentFlags().Bool("no-color", true, "")
	parent.PersistentFlags().Bool("verbose", false, "")
	parent.PersistentFlags().Bool("quiet", false, "")
	parent.AddCommand(cmd)

	var stdout, stderr bytes.Buffer
	parent.SetOut(&stdout)
	parent.SetErr(&stderr)
	parent.SetIn(bytes.NewReader(stdin))
	parent.SetArgs(append([]string{cmd.Name()}, args...))
	err := parent.Execute()
	return stdout.String(), stderr.String(), err
}

func TestView_RTF(t *testing.T) {
	out, _, err := execute(t, NewCmdView(), nil, "testdata/sample.rtf")
	require.NoError(t, err)

	assert.Contains(t, out, "sample.rtf")
	assert.Contains(t, out, "RTF")
	assert.Contains(t, out, "html")
	assert.Contains(t, out, "1252")
	assert.Contains(t, out, "Arial")
	assert.Contains(t, out, "Courier New")
	assert.Contains(t, out, "1251")
	assert.Less(t, strings.Index(out, "Arial"), strings.Index(out, "Courier New"))
}

func TestView_JSON(t *testing.T) {
	out, _, err := execute(t, NewCmdView(), nil, "testdata/sample.rtf", "--json")
	require.NoError(t, err)

	var s summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, "sample.rtf", s.File)
	require.NotNil(t, s.RTF)
	assert.Equal(t, "html", s.RTF.Mode)
	assert.Equal(t, 1252, s.RTF.DefaultCodepage)
	assert.Equal(t, len("<p>hi</p>"), s.RTF.PayloadSize)
	require.Contains(t, s.RTF.Fonts, "1")
	assert.Equal(t, 1251, s.RTF.Fonts["1"].Codepage())
	assert.Nil(t, s.Message)
}

func TestView_NotEncapsulated(t *testing.T) {
	out, _, err := execute(t, NewCmdView(), nil, "testdata/plain.rtf", "--json")
	require.NoError(t, err)

	var s summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	require.NotNil(t, s.RTF)
	assert.Equal(t, "none", s.RTF.Mode)
	assert.NotEmpty(t, s.RTF.Error)
}

func TestView_Compressed(t *testing.T) {
	raw, err := os.ReadFile("testdata/sample.rtf")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "body.lzfu")
	require.NoError(t, os.WriteFile(path, rtfcp.Store(raw), 0o600))

	out, _, err := execute(t, NewCmdView(), nil, path, "--json")
	require.NoError(t, err)

	var s summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, "Compressed RTF", s.Format)
	require.NotNil(t, s.RTF)
	assert.Equal(t, "html", s.RTF.Mode)
}

func TestView_TNEF(t *testing.T) {
	out, _, err := execute(t, NewCmdView(), nil, "testdata/winmail.dat")
	require.NoError(t, err)

	assert.Contains(t, out, "Quarterly report")
	assert.Contains(t, out, "encapsulated html")
	assert.Contains(t, out, "notes.txt")
	assert.Contains(t, out, "[file]")
}

func TestView_TNEFProps(t *testing.T) {
	out, _, err := execute(t, NewCmdView(), nil, "testdata/winmail.dat", "--json", "--props")
	require.NoError(t, err)

	var s summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	require.NotNil(t, s.Message)
	assert.Equal(t, "Quarterly report", s.Message.Subject)
	assert.Equal(t, "html", s.Message.PayloadMode)
	require.Len(t, s.Message.Properties, 1)
	assert.Equal(t, "0x1009", s.Message.Properties[0].ID)
	assert.Equal(t, "PR_RTF_COMPRESSED", s.Message.Properties[0].Name)
	require.Len(t, s.Message.Attachments, 1)
	assert.Equal(t, "notes.txt", s.Message.Attachments[0].Name)
	assert.Equal(t, len("hello attachment"), s.Message.Attachments[0].Size)
}

func TestView_Stdin(t *testing.T) {
	data, err := os.ReadFile("testdata/sample.rtf")
	require.NoError(t, err)

	out, _, err := execute(t, NewCmdView(), data, "-", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"mode": "html"`)
}

func TestView_Unsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("just text"), 0o600))

	_, _, err := execute(t, NewCmdView(), nil, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}

func TestTokens(t *testing.T) {
	out, _, err := execute(t, NewCmdTokens(), nil, "testdata/plain.rtf")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "     0  {", lines[0])
	assert.Equal(t, `     1    \rtf1  (destination)`, lines[1])
	assert.Equal(t, `     2    \ansi  (word)`, lines[2])
	assert.Equal(t, `     3    "hello"`, lines[3])
	assert.Equal(t, "     4  }", lines[4])
}

func TestTokens_Limit(t *testing.T) {
	out, _, err := execute(t, NewCmdTokens(), nil, "testdata/sample.rtf", "--limit", "3")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 3)
}

func TestTokens_Compressed(t *testing.T) {
	raw, err := os.ReadFile("testdata/plain.rtf")
	require.NoError(t, err)

	out, _, err := execute(t, NewCmdTokens(), rtfcp.Store(raw), "-")
	require.NoError(t, err)
	assert.Contains(t, out, `"hello"`)
}
