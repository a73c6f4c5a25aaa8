// unicode.go accounts for the fallback tokens that follow \u.

package rtfex

import "github.com/avaropoint/rtfex/parsers/rtf"

// skipUnicode swallows the e.skip tokens of fallback text after a \u.
// A control word counts as one unit, text counts per byte and braces
// end the skip.
func (e *Engine) skipUnicode(tok *rtf.Token) (bool, error) {
	switch tok.Kind {
	case rtf.GroupStart, rtf.GroupEnd:
		e.skip = 0
		return false, nil

	case rtf.Text:
		if e.skip >= len(tok.Data) {
			e.skip -= len(tok.Data)
			return true, nil
		}
		if e.skip > 0 {
			tok.Data = tok.Data[e.skip:]
			e.skip = 0
		}
		return false, nil
	}

	if e.skip > 0 {
		e.skip--
		return true, nil
	}
	switch tok.Word {
	case "uc":
		e.top().uc = max(int(tok.Param), 0)
		return true, nil
	case "u":
		e.skip = e.top().uc
	}
	return false, nil
}
