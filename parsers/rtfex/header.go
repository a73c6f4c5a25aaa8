// header.go validates the document header and the end of the stream.

package rtfex

import "github.com/avaropoint/rtfex/parsers/rtf"

// countTokens counts every token and checks the {\rtf0 or {\rtf1
// prefix.
func (e *Engine) countTokens(tok *rtf.Token) (bool, error) {
	e.count++
	switch e.count {
	case 1:
		if tok.Kind != rtf.GroupStart {
			return true, structuralf(`file should start with "{"`)
		}
	case 2:
		// A bare {\rtf with no version is accepted as \rtf1; mail
		// writers emit it and existing documents decode with it.
		if !tok.IsWord("rtf") || (tok.HasParam && tok.Param != 0 && tok.Param != 1) {
			return true, structuralf(`file should start with "{\rtf[0,1]"`)
		}
	}
	return false, nil
}

// guardEnd drops everything after the closing brace of the root group.
func (e *Engine) guardEnd(_ *rtf.Token) (bool, error) {
	if !e.done {
		return false, nil
	}
	if !e.warnedEnd {
		e.warnedEnd = true
		e.warnf("additional tokens after final closing bracket")
	}
	return true, nil
}

// checkMode enforces the header window: until \fromhtml or \fromtext is
// seen only braces and control words may appear, and only within the
// first headerTokens tokens. In quirks mode it also swallows everything
// but \f and \htmlrtf while htmlrtf is on, braces included.
func (e *Engine) checkMode(tok *rtf.Token) (bool, error) {
	if !e.fromHTML && !e.fromText {
		if tok.Kind == rtf.Text || e.count > headerTokens {
			return true, notEncapsulated(e.opts.Mode)
		}
	}
	if e.opts.OutlookQuirksMode && e.top().htmlrtf {
		if tok.Kind != rtf.Control || (tok.Word != "f" && tok.Word != "htmlrtf") {
			return true, nil
		}
	}
	return false, nil
}
