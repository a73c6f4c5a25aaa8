// charset.go tracks the document codepage.

package rtfex

import (
	"github.com/avaropoint/rtfex/parsers/codepage"
	"github.com/avaropoint/rtfex/parsers/rtf"
)

// Codepages implied by the \mac, \pc and \pca character set words.
var charsetWords = map[string]int{
	"mac": 10000,
	"pc":  437,
	"pca": 850,
}

// trackCharset handles \ansicpg and the legacy character set words.
func (e *Engine) trackCharset(tok *rtf.Token) (bool, error) {
	if tok.Kind != rtf.Control {
		return false, nil
	}
	s := e.top()

	if cpg, ok := charsetWords[tok.Word]; ok {
		if s.rtfNesting <= 1 && !e.ansicpgSeen {
			e.cpg = cpg
		}
		return true, nil
	}
	if tok.Word != "ansicpg" {
		return false, nil
	}

	switch {
	case s.destination != "rtf":
		return true, semanticf(`\ansicpg not at root group`)
	case s.rtfNesting > 1:
		return true, nil
	case e.ansicpgSeen:
		return true, semanticf(`\ansicpg already defined`)
	case !tok.HasParam:
		e.warnf(`\ansicpg with no param`)
		return true, nil
	}

	e.ansicpgSeen = true
	cpg := int(tok.Param)
	if cpg == 0 || e.supported(cpg) {
		e.cpg = cpg
	} else {
		e.warnf("unsupported codepage %d, using %d", cpg, e.cpg)
	}
	return true, nil
}

// supported reports whether text in cpg can be decoded.
func (e *Engine) supported(cpg int) bool {
	switch cpg {
	case 1200, 20127, 65001:
		return true
	}
	if cpg < 0 {
		return false
	}
	_, err := e.opts.Decode(nil, codepage.Label(cpg))
	return err == nil
}
