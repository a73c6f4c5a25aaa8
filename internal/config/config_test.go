package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avaropoint/rtfex/parsers/rtfex"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
		errMsg  string
	}{
		{"empty config", Config{}, false, ""},
		{"html and codepage", Config{Mode: "html", Output: "codepage"}, false, ""},
		{"bad mode", Config{Mode: "rtf"}, true, `unknown mode "rtf"`},
		{"bad output", Config{Output: "latin1"}, true, `unknown output mode "latin1"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := Config{
		Mode:               "text",
		Output:             "utf8",
		Prefix:             true,
		OutlookQuirks:      true,
		HTMLFixContentType: true,
		ReplaceSymbolFonts: []string{"Wingdings", "Symbol"},
	}
	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, rtfex.ModeText, opts.Mode)
	assert.Equal(t, rtfex.OutputUTF8, opts.OutputMode)
	assert.True(t, opts.Prefix)
	assert.True(t, opts.OutlookQuirksMode)
	assert.True(t, opts.HTMLFixContentType)
	assert.False(t, opts.ReplaceSymbolFontChars)
	assert.Equal(t, map[string]bool{"Wingdings": true, "Symbol": true}, opts.ReplaceSymbolFonts)

	cfg = Config{ReplaceSymbolFonts: []string{AllSymbolFonts}}
	opts, err = cfg.Options()
	require.NoError(t, err)
	assert.True(t, opts.ReplaceSymbolFontChars)
	assert.Nil(t, opts.ReplaceSymbolFonts)

	_, err = (&Config{Mode: "bogus"}).Options()
	assert.Error(t, err)
}

func TestConfig_LoadFromEnv(t *testing.T) {
	t.Setenv("RTFEX_MODE", "html")
	t.Setenv("RTFEX_OUTPUT", "codepage")
	t.Setenv("RTFEX_PREFIX", "true")
	t.Setenv("RTFEX_ALLOW_CP0", "1")
	t.Setenv("RTFEX_MARKDOWN", "false")
	t.Setenv("RTFEX_REPLACE_SYMBOL_FONTS", "Wingdings, Symbol,")

	cfg := &Config{Mode: "text", Markdown: true}
	require.NoError(t, cfg.LoadFromEnv())
	assert.Equal(t, "html", cfg.Mode)
	assert.Equal(t, "codepage", cfg.Output)
	assert.True(t, cfg.Prefix)
	assert.True(t, cfg.AllowCp0)
	assert.False(t, cfg.Markdown)
	assert.Equal(t, []string{"Wingdings", "Symbol"}, cfg.ReplaceSymbolFonts)

	t.Setenv("RTFEX_PREFIX", "maybe")
	err := cfg.LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RTFEX_PREFIX")
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "rtfex", "config.yml"), DefaultConfigPath())

	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "rtfex", "config.yml"), DefaultConfigPath())
}

func TestConfig_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yml")
	cfg := &Config{
		Mode:               "html",
		HTMLEncodeNonASCII: true,
		ReplaceSymbolFonts: []string{"Webdings"},
	}
	require.NoError(t, cfg.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "html_encode_non_ascii: true")
	assert.NotContains(t, string(data), "prefix")
}

func TestLoadWithEnv(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("RTFEX_MODE", "text")
	cfg, err := LoadWithEnv(filepath.Join(dir, "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Mode)

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("mode: [html"), 0600))
	_, err = LoadWithEnv(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")

	invalid := filepath.Join(dir, "invalid.yml")
	require.NoError(t, os.WriteFile(invalid, []byte("output: latin1\n"), 0600))
	_, err = LoadWithEnv(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
