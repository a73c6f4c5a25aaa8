// deencapsulate.go detects the payload type and filters RTF-only text.

package rtfex

import "github.com/avaropoint/rtfex/parsers/rtf"

// deEncapsulate handles \fromhtml, \fromtext and \htmlrtf.
func (e *Engine) deEncapsulate(tok *rtf.Token) (bool, error) {
	if tok.Kind != rtf.Control {
		return false, nil
	}
	switch tok.Word {
	case "fromhtml":
		return true, e.setFlag(ModeHTML)
	case "fromtext":
		return true, e.setFlag(ModeText)
	case "htmlrtf":
		s := e.top()
		if s.dests.has("htmltag") && !e.opts.OutlookQuirksMode {
			e.warnf("htmlrtf control word inside htmltag")
			return true, nil
		}
		s.htmlrtf = !tok.HasParam || tok.Param != 0
		return true, nil
	}
	return false, nil
}

func (e *Engine) setFlag(m Mode) error {
	s := e.top()
	switch {
	case e.fromHTML || e.fromText:
		return semanticf(`\fromhtml or \fromtext already defined`)
	case s.destination != "rtf" || s.rtfNesting != 1:
		return semanticf(`\from%s not at root group`, m)
	case e.opts.Mode != ModeEither && e.opts.Mode != m:
		return notEncapsulated(e.opts.Mode)
	}

	if m == ModeHTML {
		e.fromHTML = true
	} else {
		e.fromText = true
	}
	if e.opts.Prefix {
		if err := e.flushRun(); err != nil {
			return err
		}
		return e.write(m.String() + ":")
	}
	return nil
}

// visible reports whether text in the current group is payload.
func (e *Engine) visible() bool {
	s := e.top()
	inTag := s.dests.has("htmltag")
	if s.htmlrtf && (!inTag || e.opts.OutlookQuirksMode) {
		return false
	}
	if inTag {
		return true
	}
	if s.destIgnorable || s.ancestorIgnorable {
		return false
	}
	for _, d := range hiddenDestinations {
		if s.dests.has(d) {
			return false
		}
	}
	return true
}
