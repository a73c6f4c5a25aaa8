package rtfex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFontCodepages(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		decodings []string
	}{
		{
			"selected font",
			`{\rtf1\ansi\ansicpg1252\fromhtml1{\fonttbl{\f0\fcharset161}}\f0\'f0}`,
			"π", []string{"cp1253"},
		},
		{
			"default font",
			`{\rtf1\ansi\ansicpg1252\fromhtml1\deff0{\fonttbl{\f0\fcharset161}}\'f0}`,
			"π", []string{"cp1253"},
		},
		{
			"cpg overrides fcharset",
			`{\rtf1\ansi\ansicpg1252\fromhtml1\deff0{\fonttbl{\f0\cpg1253\fcharset255}}\'f0}`,
			"π", []string{"cp1253"},
		},
		{
			"fcharset given as codepage 20127",
			`{\rtf1\ansi\fromhtml1\deff0{\fonttbl{\f0\fcharset20127}}\'41}`,
			"A", nil,
		},
		{
			"fcharset given as codepage 28591",
			`{\rtf1\ansi\fromhtml1\deff0{\fonttbl{\f0\fcharset28591}}\'E9}`,
			"é", []string{"cp28591"},
		},
		{
			"fcharset given as codepage 1252",
			`{\rtf1\ansi\fromhtml1\deff0{\fonttbl{\f0\fcharset1252}}\'41}`,
			"A", []string{"cp1252"},
		},
		{
			"multi-byte run",
			`{\rtf1\ansi\ansicpg1252\fromhtml1\deff0{\fonttbl{\f1\cpg936}}\htmlrtf\f1\htmlrtf0\'a5\'c6\'a5\'e5}`,
			"テュ", []string{"cp936"},
		},
		{
			"fcharset unspecified",
			`{\rtf1\ansi\ansicpg1253\fromhtml1\deff0{\fonttbl{\f0\fcharset1}}\'f0}`,
			"π", []string{"cp1253"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, rec := mustDecode(t, tt.input, Options{})
			assert.Equal(t, tt.want, res.Text)
			assert.Equal(t, tt.decodings, rec.decodings)
		})
	}
}

func TestFontTable(t *testing.T) {
	input := `{\rtf1\ansi\ansicpg1252\fromhtml1\deff0{\fonttbl` +
		`{\f0\fswiss\fcharset0 Arial;}` +
		`{\f1\froman\flomajor\fcharset161{\*\panose 02020603050405020304}"Times New Roman";}` +
		`{\f2\fnil\cpg936 \'cb\'ce\'cc\'e5;}` +
		`}hi}`
	res, _ := mustDecode(t, input, Options{})
	assert.Equal(t, "hi", res.Text)

	require.Len(t, res.Fonts, 3)
	assert.Equal(t, &FontEntry{FcharsetCpg: 1252, FontFamily: "swiss", FontName: "Arial"}, res.Fonts["0"])
	assert.Equal(t, &FontEntry{FcharsetCpg: 1253, FontFamily: "roman", ThemeFont: "lomajor", FontName: "Times New Roman"}, res.Fonts["1"])
	assert.Equal(t, `\u00CB\u00CE\u00CC\u00E5`, res.Fonts["2"].FontName)
	assert.Equal(t, 936, res.Fonts["2"].Codepage())
}

func TestFontTableDirectDefinitions(t *testing.T) {
	input := `{\rtf1\ansi\fromhtml1{\fonttbl\f0\fswiss Arial;\f1\fcharset161 Greek;}\f1\'f0}`
	res, rec := mustDecode(t, input, Options{})
	assert.Equal(t, "π", res.Text)
	assert.Equal(t, []string{"cp1253"}, rec.decodings)
	assert.Equal(t, "Arial", res.Fonts["0"].FontName)
	assert.Equal(t, "Greek", res.Fonts["1"].FontName)
}

func TestFontDefinitionWithLateF(t *testing.T) {
	input := `{\rtf1\ansi\ansicpg65001\fromtext\uc0{\fonttbl` +
		`{\fcharset2 Wingdings;\f0\fswiss}{\fswiss\f1\fcharset0 Times New Roman;}}` +
		`{\f0\'80\u128\u-10179\u-8704}\par` +
		`{\f1\'80\u128\u-10179\u-8704}}`
	res, rec := mustDecode(t, input, Options{})
	assert.Equal(t, "\u0080\u0080😀\r\n€\u0080😀", res.Text)
	assert.Equal(t, []string{"cp1252"}, rec.decodings)
	assert.Equal(t, "Wingdings", res.Fonts["0"].FontName)
}

func TestFontWarnings(t *testing.T) {
	// Outlook writes an empty {\fonttbl} and then selects \f2 anyway.
	t.Run("outlook empty font table", func(t *testing.T) {
		res, rec, err := decode(t, `{\rtf1\ansi\ansicpg1252\fromhtml1{\fonttbl}\f2 hi}`, Options{})
		require.NoError(t, err)
		assert.Equal(t, "hi", res.Text)
		assert.Equal(t, []string{"unknown font 2"}, rec.warnings)
		assert.Equal(t, []string{"cp1252"}, rec.decodings)
	})

	t.Run("unknown font without param", func(t *testing.T) {
		_, _, err := decode(t, `{\rtf1\ansi\fromhtml1{\fonttbl}\f hi}`, Options{})
		require.ErrorIs(t, err, ErrSemantic)
	})

	t.Run("unknown charset", func(t *testing.T) {
		_, rec, err := decode(t, `{\rtf1\ansi\fromhtml1{\fonttbl{\f0\fcharset99 X;}}\f0 hi}`, Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"no codepage for charset 99"}, rec.warnings)
	})

	t.Run("definition without f", func(t *testing.T) {
		res, rec, err := decode(t, `{\rtf1\ansi\fromhtml1{\fonttbl{\fswiss Arial;}}hi}`, Options{})
		require.NoError(t, err)
		assert.Empty(t, res.Fonts)
		assert.Equal(t, []string{`font definition without \f`}, rec.warnings)
	})
}

func TestCharsetWords(t *testing.T) {
	res, rec := mustDecode(t, `{\rtf1\mac\fromhtml1{\*\htmltag \'8e}}`, Options{})
	assert.Equal(t, "é", res.Text)
	assert.Equal(t, 10000, res.DefaultCodepage)
	assert.Equal(t, []string{"cp10000"}, rec.decodings)

	res, _ = mustDecode(t, `{\rtf1\pca\fromhtml1{\*\htmltag \'82}}`, Options{})
	assert.Equal(t, "é", res.Text)
}

func TestUnsupportedAnsicpg(t *testing.T) {
	res, rec, err := decode(t, `{\rtf1\ansi\ansicpg9999\fromhtml1{\*\htmltag \'e9}}`, Options{})
	require.NoError(t, err)
	assert.Equal(t, "é", res.Text)
	assert.Equal(t, 1252, res.DefaultCodepage)
	assert.Equal(t, []string{"unsupported codepage 9999, using 1252"}, rec.warnings)
}
