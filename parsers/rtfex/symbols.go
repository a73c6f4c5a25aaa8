// symbols.go knows about symbol fonts and how to recode their glyphs.

package rtfex

import "strings"

// SymbolRecoder replaces the glyph codepoints of a symbol font with the
// Unicode characters they picture. Codepoints it does not know are kept.
type SymbolRecoder func(text, fontName string) string

var symbolFontNames = map[string]bool{
	"Wingdings":   true,
	"Wingdings 2": true,
	"Wingdings 3": true,
	"Webdings":    true,
	"Symbol":      true,
}

// isSymbolFont reports whether text in f is glyph codepoints.
func isSymbolFont(f *FontEntry) bool {
	return f.Cpg == 42 || f.FcharsetCpg == 42 || symbolFontNames[f.FontName]
}

// DefaultSymbolRecoder recodes the Symbol and Wingdings fonts.
func DefaultSymbolRecoder(text, fontName string) string {
	table := symbolTables[fontName]
	if table == nil {
		return text
	}
	return strings.Map(func(r rune) rune {
		if u, ok := table[r]; ok {
			return u
		}
		return r
	}, text)
}

var symbolTables = map[string]map[rune]rune{
	"Symbol":    symbolGlyphs,
	"Wingdings": wingdingsGlyphs,
}

var symbolGlyphs = map[rune]rune{
	'"': '∀', '$': '∃', '\'': '∋', '*': '∗', '-': '−', '@': '≅', '\\': '∴', '^': '⊥', '~': '∼',

	'A': 'Α', 'B': 'Β', 'C': 'Χ', 'D': 'Δ', 'E': 'Ε', 'F': 'Φ', 'G': 'Γ', 'H': 'Η', 'I': 'Ι',
	'J': 'ϑ', 'K': 'Κ', 'L': 'Λ', 'M': 'Μ', 'N': 'Ν', 'O': 'Ο', 'P': 'Π', 'Q': 'Θ', 'R': 'Ρ',
	'S': 'Σ', 'T': 'Τ', 'U': 'Υ', 'V': 'ς', 'W': 'Ω', 'X': 'Ξ', 'Y': 'Ψ', 'Z': 'Ζ',

	'a': 'α', 'b': 'β', 'c': 'χ', 'd': 'δ', 'e': 'ε', 'f': 'φ', 'g': 'γ', 'h': 'η', 'i': 'ι',
	'j': 'ϕ', 'k': 'κ', 'l': 'λ', 'm': 'μ', 'n': 'ν', 'o': 'ο', 'p': 'π', 'q': 'θ', 'r': 'ρ',
	's': 'σ', 't': 'τ', 'u': 'υ', 'v': 'ϖ', 'w': 'ω', 'x': 'ξ', 'y': 'ψ', 'z': 'ζ',

	0xA2: '′', 0xA3: '≤', 0xA5: '∞', 0xAC: '←', 0xAD: '↑', 0xAE: '→', 0xAF: '↓',
	0xB0: '°', 0xB1: '±', 0xB2: '″', 0xB3: '≥', 0xB4: '×', 0xB6: '∂', 0xB7: '•', 0xB8: '÷',
	0xB9: '≠', 0xBA: '≡', 0xBB: '≈', 0xBC: '…',
	0xC5: '⊕', 0xC6: '∅', 0xC7: '∩', 0xC8: '∪', 0xCE: '∈',
	0xD1: '∇', 0xD2: '®', 0xD3: '©', 0xD4: '™', 0xD5: '∏', 0xD6: '√', 0xD7: '⋅', 0xD8: '¬',
	0xD9: '∧', 0xDA: '∨', 0xDB: '⇔', 0xDC: '⇐', 0xDD: '⇑', 0xDE: '⇒', 0xDF: '⇓',
	0xE5: '∑', 0xF2: '∫',
}

var wingdingsGlyphs = func() map[rune]rune {
	m := map[rune]rune{
		0x21: 0x1F589, 0x22: 0x2702, 0x23: 0x2701, 0x24: 0x1F453, 0x25: 0x1F56D,
		0x26: 0x1F56E, 0x27: 0x1F56F, 0x28: 0x1F57F, 0x29: 0x2706, 0x2A: 0x1F582,
		0x2B: 0x1F583, 0x2C: 0x1F4EA, 0x2D: 0x1F4EB, 0x2E: 0x1F4EC, 0x2F: 0x1F4ED,
		0x30: 0x1F4C1, 0x31: 0x1F4C2, 0x32: 0x1F4C4, 0x33: 0x1F5CF, 0x34: 0x1F5D0,
		0x35: 0x1F5C4, 0x36: 0x231B, 0x37: 0x1F5AE, 0x38: 0x1F5B0, 0x39: 0x1F5B2,
		0x3A: 0x1F5B3, 0x3B: 0x1F5B4, 0x3C: 0x1F5AB, 0x3D: 0x1F5AC, 0x3E: 0x2707,
		0x3F: 0x270D, 0x40: 0x1F58E, 0x41: 0x270C, 0x42: 0x1F44C, 0x43: 0x1F44D,
		0x44: 0x1F44E, 0x45: 0x261C, 0x46: 0x261E, 0x47: 0x261D, 0x48: 0x261F,
		0x49: 0x1F590, 0x4A: 0x263A, 0x4B: 0x1F610, 0x4C: 0x2639, 0x4D: 0x1F4A3,
		0x4E: 0x2620, 0x4F: 0x1F3F3, 0x50: 0x1F3F1, 0x51: 0x2708, 0x52: 0x263C,
		0x53: 0x1F4A7, 0x54: 0x2744, 0x55: 0x1F546, 0x56: 0x271E, 0x57: 0x1F548,
		0x58: 0x2720, 0x59: 0x2721, 0x5A: 0x262A, 0x5B: 0x262F, 0x5C: 0x0950,
		0x5D: 0x2638, 0x6A: 0x1F670, 0x6B: 0x1F675, 0x6C: 0x25CF, 0x6D: 0x1F53E,
		0x6E: 0x25A0, 0x6F: 0x25A1, 0x70: 0x1F790, 0x71: 0x2751, 0x72: 0x2752,
		0x73: 0x2B27, 0x74: 0x29EB, 0x75: 0x25C6, 0x76: 0x2756, 0x77: 0x2B25,
		0x78: 0x2327, 0x79: 0x2BB9, 0x7A: 0x2318, 0x7B: 0x1F3F5, 0x7C: 0x1F3F6,
		0x7D: 0x1F676, 0x7E: 0x1F677,
		0x80: 0x24EA, 0x8B: 0x24FF,
	}
	// zodiac, circled digits and negative circled digits
	for i := rune(0); i < 12; i++ {
		m[0x5E+i] = 0x2648 + i
	}
	for i := rune(0); i < 10; i++ {
		m[0x81+i] = 0x2460 + i
		m[0x8C+i] = 0x2776 + i
	}
	return m
}()
