// destinations.go classifies control words and records destinations.

package rtfex

import "github.com/avaropoint/rtfex/parsers/rtf"

// Destinations whose text is never part of the payload.
var hiddenDestinations = []string{"fonttbl", "colortbl", "stylesheet", "pntext"}

// trackDestinations records a destination word opening the current
// group. Only "{\name" and "{\*\name" are legal placements; an unknown
// word in the second shape is treated as an ignorable destination.
func (e *Engine) trackDestinations(tok *rtf.Token) (bool, error) {
	if tok.Kind != rtf.Control {
		return false, nil
	}
	afterBrace := e.lookback[0].kind == rtf.GroupStart
	afterStar := e.lookback[0].isWord("*") && e.lookback[1].kind == rtf.GroupStart

	switch rtf.Classify(tok.Word) {
	case rtf.Destination:
		switch {
		case afterBrace:
			e.enterDestination(tok.Word, false)
		case afterStar:
			e.enterDestination(tok.Word, true)
		default:
			e.warnf(`destination control word \%s not immediately after "{" or "{\*"`, tok.Word)
			return true, nil
		}
	case rtf.Unknown:
		if afterStar {
			e.enterDestination(tok.Word, true)
			return true, nil
		}
	}
	return false, nil
}

func (e *Engine) enterDestination(name string, ignorable bool) {
	s := e.top()
	s.destination = name
	s.dests = s.dests.with(name)
	s.destIgnorable = ignorable
	s.destDepth++
	s.destGroupDepth = s.depth
	if name == "rtf" {
		s.rtfNesting++
	}
}
