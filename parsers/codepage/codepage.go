// Package codepage decodes and encodes text in Windows codepages
// identified by "cp<N>" labels, the form RTF readers use.
package codepage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnsupported is returned for codepages with no available codec.
var ErrUnsupported = errors.New("unsupported codepage")

// ErrBadLabel is returned for labels not of the form "cp<N>".
var ErrBadLabel = errors.New(`codepage label must look like "cp<N>"`)

var table = map[int]encoding.Encoding{
	37:    charmap.CodePage037,
	437:   charmap.CodePage437,
	850:   charmap.CodePage850,
	852:   charmap.CodePage852,
	855:   charmap.CodePage855,
	858:   charmap.CodePage858,
	860:   charmap.CodePage860,
	862:   charmap.CodePage862,
	863:   charmap.CodePage863,
	865:   charmap.CodePage865,
	866:   charmap.CodePage866,
	874:   charmap.Windows874,
	932:   japanese.ShiftJIS,
	936:   simplifiedchinese.GBK,
	949:   korean.EUCKR,
	950:   traditionalchinese.Big5,
	1047:  charmap.CodePage1047,
	1140:  charmap.CodePage1140,
	1200:  unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	1201:  unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	1250:  charmap.Windows1250,
	1251:  charmap.Windows1251,
	1252:  charmap.Windows1252,
	1253:  charmap.Windows1253,
	1254:  charmap.Windows1254,
	1255:  charmap.Windows1255,
	1256:  charmap.Windows1256,
	1257:  charmap.Windows1257,
	1258:  charmap.Windows1258,
	10000: charmap.Macintosh,
	10007: charmap.MacintoshCyrillic,
	20127: unicode.UTF8, // ASCII is a subset
	20866: charmap.KOI8R,
	20932: japanese.EUCJP,
	21866: charmap.KOI8U,
	28591: charmap.ISO8859_1,
	28592: charmap.ISO8859_2,
	28593: charmap.ISO8859_3,
	28594: charmap.ISO8859_4,
	28595: charmap.ISO8859_5,
	28596: charmap.ISO8859_6,
	28597: charmap.ISO8859_7,
	28598: charmap.ISO8859_8,
	28599: charmap.ISO8859_9,
	28600: charmap.ISO8859_10,
	28603: charmap.ISO8859_13,
	28604: charmap.ISO8859_14,
	28605: charmap.ISO8859_15,
	38598: charmap.ISO8859_8I,
	50220: japanese.ISO2022JP,
	50221: japanese.ISO2022JP,
	50222: japanese.ISO2022JP,
	51932: japanese.EUCJP,
	51949: korean.EUCKR,
	52936: simplifiedchinese.HZGB2312,
	54936: simplifiedchinese.GB18030,
	65001: unicode.UTF8,
}

// Label returns the "cp<N>" label for a codepage number.
func Label(cpg int) string {
	return "cp" + strconv.Itoa(cpg)
}

// Parse extracts the codepage number from a "cp<N>" label.
func Parse(label string) (int, error) {
	rest, ok := strings.CutPrefix(strings.ToLower(label), "cp")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadLabel, label)
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadLabel, label)
	}
	return n, nil
}

// Lookup returns the encoding for a "cp<N>" label. Codepages missing
// from the built-in table are looked up by their IANA names.
func Lookup(label string) (encoding.Encoding, error) {
	cpg, err := Parse(label)
	if err != nil {
		return nil, err
	}
	if enc, ok := table[cpg]; ok {
		return enc, nil
	}
	n := strconv.Itoa(cpg)
	for _, name := range []string{"windows-" + n, "cp" + n, "ibm" + n} {
		if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
			return enc, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, label)
}

// Supported reports whether a codec exists for cpg.
func Supported(cpg int) bool {
	_, err := Lookup(Label(cpg))
	return err == nil
}

// Decode converts b from the codepage named by label to a string.
func Decode(b []byte, label string) (string, error) {
	enc, err := Lookup(label)
	if err != nil {
		return "", err
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", label, err)
	}
	return string(out), nil
}

// Encode converts s to the codepage named by label. Characters the
// codepage cannot represent are an error.
func Encode(s string, label string) ([]byte, error) {
	enc, err := Lookup(label)
	if err != nil {
		return nil, err
	}
	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", label, err)
	}
	return out, nil
}
