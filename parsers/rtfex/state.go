// state.go maintains the stack of per-group state.

package rtfex

import "github.com/avaropoint/rtfex/parsers/rtf"

// destSet is an immutable set of destination names shared between a
// group and its descendants. Adding a name returns a new head.
type destSet struct {
	name   string
	parent *destSet
}

func (d *destSet) has(name string) bool {
	for ; d != nil; d = d.parent {
		if d.name == name {
			return true
		}
	}
	return false
}

func (d *destSet) with(name string) *destSet {
	if d.has(name) {
		return d
	}
	return &destSet{name: name, parent: d}
}

// groupState is the state of one brace level. A child starts as a copy
// of its parent; leaving the group discards it.
type groupState struct {
	depth int

	destination       string
	dests             *destSet
	destIgnorable     bool
	ancestorIgnorable bool
	destDepth         int
	destGroupDepth    int
	rtfNesting        int

	uc      int
	htmlrtf bool
	font    string

	fontTableIgnored bool
}

func (e *Engine) top() *groupState {
	return &e.stack[len(e.stack)-1]
}

// trackGroups pushes and pops group state. Popping back to the root
// frame ends the document.
func (e *Engine) trackGroups(tok *rtf.Token) (bool, error) {
	switch tok.Kind {
	case rtf.GroupStart:
		parent := e.top()
		child := *parent
		child.depth++
		child.ancestorIgnorable = parent.ancestorIgnorable || parent.destIgnorable
		e.stack = append(e.stack, child)
	case rtf.GroupEnd:
		e.stack = e.stack[:len(e.stack)-1]
		if len(e.stack) == 1 {
			e.done = true
		}
	}
	return false, nil
}
