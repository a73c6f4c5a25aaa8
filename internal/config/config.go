// Package config stores the decoder defaults used by the rtfex CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/avaropoint/rtfex/parsers/rtfex"
)

// AllSymbolFonts in ReplaceSymbolFonts recodes every symbol font.
const AllSymbolFonts = "*"

// Config holds the decoder defaults.
type Config struct {
	Mode               string   `yaml:"mode,omitempty" json:"mode"`
	Output             string   `yaml:"output,omitempty" json:"output"`
	Prefix             bool     `yaml:"prefix,omitempty" json:"prefix"`
	OutlookQuirks      bool     `yaml:"outlook_quirks,omitempty" json:"outlook_quirks"`
	AllowCp0           bool     `yaml:"allow_cp0,omitempty" json:"allow_cp0"`
	HTMLEncodeNonASCII bool     `yaml:"html_encode_non_ascii,omitempty" json:"html_encode_non_ascii"`
	HTMLFixContentType bool     `yaml:"html_fix_content_type,omitempty" json:"html_fix_content_type"`
	HTMLPreserveSpaces bool     `yaml:"html_preserve_spaces,omitempty" json:"html_preserve_spaces"`
	ReplaceSymbolFonts []string `yaml:"replace_symbol_fonts,omitempty" json:"replace_symbol_fonts"`
	Markdown           bool     `yaml:"markdown,omitempty" json:"markdown"`
}

// Validate checks the mode names.
func (c *Config) Validate() error {
	if _, err := rtfex.ParseMode(c.Mode); err != nil {
		return err
	}
	if _, err := rtfex.ParseOutputMode(c.Output); err != nil {
		return err
	}
	return nil
}

// Options converts the configuration to decoder options.
func (c *Config) Options() (rtfex.Options, error) {
	mode, err := rtfex.ParseMode(c.Mode)
	if err != nil {
		return rtfex.Options{}, err
	}
	out, err := rtfex.ParseOutputMode(c.Output)
	if err != nil {
		return rtfex.Options{}, err
	}
	opts := rtfex.Options{
		Mode:               mode,
		OutputMode:         out,
		Prefix:             c.Prefix,
		OutlookQuirksMode:  c.OutlookQuirks,
		AllowCp0:           c.AllowCp0,
		HTMLEncodeNonASCII: c.HTMLEncodeNonASCII,
		HTMLFixContentType: c.HTMLFixContentType,
		HTMLPreserveSpaces: c.HTMLPreserveSpaces,
	}
	for _, name := range c.ReplaceSymbolFonts {
		if name == AllSymbolFonts {
			opts.ReplaceSymbolFontChars = true
			continue
		}
		if opts.ReplaceSymbolFonts == nil {
			opts.ReplaceSymbolFonts = make(map[string]bool)
		}
		opts.ReplaceSymbolFonts[name] = true
	}
	return opts, nil
}

// LoadFromEnv overrides values with RTFEX_* environment variables that
// are set and non-empty.
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv("RTFEX_MODE"); v != "" {
		c.Mode = v
	}
	if v := os.Getenv("RTFEX_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("RTFEX_REPLACE_SYMBOL_FONTS"); v != "" {
		c.ReplaceSymbolFonts = splitList(v)
	}

	bools := []struct {
		env string
		dst *bool
	}{
		{"RTFEX_PREFIX", &c.Prefix},
		{"RTFEX_OUTLOOK_QUIRKS", &c.OutlookQuirks},
		{"RTFEX_ALLOW_CP0", &c.AllowCp0},
		{"RTFEX_HTML_ENCODE_NON_ASCII", &c.HTMLEncodeNonASCII},
		{"RTFEX_HTML_FIX_CONTENT_TYPE", &c.HTMLFixContentType},
		{"RTFEX_HTML_PRESERVE_SPACES", &c.HTMLPreserveSpaces},
		{"RTFEX_MARKDOWN", &c.Markdown},
	}
	for _, b := range bools {
		v := os.Getenv(b.env)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", b.env, err)
		}
		*b.dst = parsed
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "rtfex", "config.yml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".rtfex", "config.yml")
	}
	return filepath.Join(home, ".config", "rtfex", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// LoadWithEnv loads configuration from path, if it exists, and applies
// environment overrides. A missing file yields the defaults; a file
// that exists but cannot be parsed is an error.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return nil, err
		}
		cfg = &Config{}
	}

	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
