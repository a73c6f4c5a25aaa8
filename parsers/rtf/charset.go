// charset.go maps \fcharset values to Windows codepages.

package rtf

// charsetCodepages is the \fcharset table from the RTF specification.
var charsetCodepages = map[int]int{
	0:   1252, // ANSI
	2:   42,   // Symbol
	77:  10000,
	78:  10001,
	79:  10003,
	80:  10008,
	81:  10002,
	83:  10005,
	84:  10004,
	85:  10006,
	86:  10081,
	87:  10021,
	88:  10029,
	89:  10007,
	128: 932,  // Shift JIS
	129: 949,  // Hangul
	130: 1361, // Johab
	134: 936,  // GB2312
	136: 950,  // Big5
	161: 1253,
	162: 1254,
	163: 1258,
	177: 1255,
	178: 1256,
	186: 1257,
	204: 1251,
	222: 874,
	238: 1250,
	254: 437,
	255: 850,
}

// CharsetUnspecified is the \fcharset value meaning "use other information".
const CharsetUnspecified = 1

// SymbolCodepage is the pseudo-codepage of symbol fonts.
const SymbolCodepage = 42

var directCodepages = func() map[int]bool {
	m := map[int]bool{20127: true, 28591: true}
	for _, cpg := range charsetCodepages {
		m[cpg] = true
	}
	return m
}()

// CharsetCodepage returns the codepage for an \fcharset value.
func CharsetCodepage(charset int) (int, bool) {
	cpg, ok := charsetCodepages[charset]
	return cpg, ok
}

// IsCodepage reports whether n is a codepage number that writers in
// the wild put where an \fcharset value belongs.
func IsCodepage(n int) bool {
	return directCodepages[n]
}
