// fonts.go builds the font table and tracks the selected font.

package rtfex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avaropoint/rtfex/parsers/rtf"
)

// FontEntry describes one font of the font table.
type FontEntry struct {
	Cpg         int    `json:"cpg,omitempty"`          // from \cpg
	FcharsetCpg int    `json:"fcharset_cpg,omitempty"` // from \fcharset
	ThemeFont   string `json:"theme_font,omitempty"`   // e.g. "lomajor"
	FontFamily  string `json:"font_family,omitempty"`  // e.g. "swiss"
	FontName    string `json:"font_name,omitempty"`
}

// Codepage returns the codepage text in this font is encoded with,
// or 0 when the font does not say.
func (f *FontEntry) Codepage() int {
	if f.Cpg != 0 {
		return f.Cpg
	}
	return f.FcharsetCpg
}

// FontTable maps \f ids to font entries.
type FontTable map[string]*FontEntry

// fontDef is the font definition being built inside \fonttbl.
type fontDef struct {
	depth int // group depth of the definition
	key   string
	entry *FontEntry
	named bool // the terminating ';' has been seen
}

var themeFontWords = map[string]bool{
	"flomajor": true, "fhimajor": true, "fdbmajor": true, "fbimajor": true,
	"flominor": true, "fhiminor": true, "fdbminor": true, "fbiminor": true,
}

var fontFamilyWords = map[string]bool{
	"fnil": true, "froman": true, "fswiss": true, "fmodern": true,
	"fscript": true, "fdecor": true, "ftech": true, "fbidi": true,
}

// inFontTable reports whether the current group belongs to a font
// table that is being built.
func (s *groupState) inFontTable() bool {
	return s.destination == "fonttbl" && !s.fontTableIgnored
}

// buildFontTable handles \deff, \fonttbl, \f and the words that
// describe a font definition.
func (e *Engine) buildFontTable(tok *rtf.Token) (bool, error) {
	s := e.top()
	switch tok.Kind {
	case rtf.GroupStart:
		if s.inFontTable() && s.depth == s.destGroupDepth+1 {
			e.closeFontDef()
			e.fontDef = &fontDef{depth: s.depth, entry: &FontEntry{}}
		}
		return false, nil
	case rtf.GroupEnd:
		if e.fontDef != nil && s.depth < e.fontDef.depth {
			e.closeFontDef()
		}
		return false, nil
	case rtf.Text:
		return false, nil
	}

	switch tok.Word {
	case "deff":
		return true, e.setDefaultFont(tok)
	case "fonttbl":
		return true, e.openFontTable()
	case "f":
		if s.inFontTable() {
			return true, e.bindFont(tok)
		}
		if s.fontTableIgnored {
			return true, nil
		}
		return true, e.selectFont(tok)
	case "fcharset", "cpg":
		if s.fontTableIgnored {
			return true, nil
		}
		if e.fontDef == nil || !s.inFontTable() {
			return true, semanticf(`\%s not in a font definition`, tok.Word)
		}
		if tok.Word == "cpg" {
			if !tok.HasParam {
				e.warnf(`\cpg with no param`)
			} else {
				e.fontDef.entry.Cpg = int(tok.Param)
			}
			return true, nil
		}
		return true, e.setCharset(tok)
	}

	if themeFontWords[tok.Word] || fontFamilyWords[tok.Word] {
		if e.fontDef == nil || !s.inFontTable() {
			return true, nil
		}
		if themeFontWords[tok.Word] {
			e.fontDef.entry.ThemeFont = tok.Word[1:]
		} else {
			e.fontDef.entry.FontFamily = tok.Word[1:]
		}
		return true, nil
	}
	return false, nil
}

func (e *Engine) setDefaultFont(tok *rtf.Token) error {
	s := e.top()
	switch {
	case s.rtfNesting > 1:
		return nil
	case s.destination != "rtf":
		return semanticf(`\deff not at root group`)
	case e.deffSeen:
		return semanticf(`\deff already defined`)
	case !tok.HasParam:
		e.warnf(`\deff with no param`)
		return nil
	}
	e.deffSeen = true
	e.deff = strconv.Itoa(int(tok.Param))
	return nil
}

func (e *Engine) openFontTable() error {
	s := e.top()
	switch {
	case s.rtfNesting > 1:
		e.warnf("ignoring font table of nested rtf group")
		s.fontTableIgnored = true
		return nil
	case e.fontTblSeen:
		return semanticf("fonttbl already created")
	case s.destDepth != 2 || s.destGroupDepth != 2:
		return semanticf("fonttbl not in header")
	}
	e.fontTblSeen = true
	return nil
}

// bindFont handles \f inside the font table. It binds the id to the
// enclosing definition group, or, written directly in the \fonttbl
// group, starts a new definition.
func (e *Engine) bindFont(tok *rtf.Token) error {
	if !tok.HasParam {
		return semanticf(`\f with no param`)
	}
	s := e.top()
	if s.depth == s.destGroupDepth {
		e.closeFontDef()
		e.fontDef = &fontDef{depth: s.depth, entry: &FontEntry{}}
	}
	switch {
	case e.fontDef == nil:
		return semanticf(`\f in fonttbl outside a font definition`)
	case e.fontDef.key != "":
		return semanticf(`\f in font definition which already has \f%s`, e.fontDef.key)
	}
	e.fontDef.key = strconv.Itoa(int(tok.Param))
	e.fonts[e.fontDef.key] = e.fontDef.entry
	return nil
}

func (e *Engine) selectFont(tok *rtf.Token) error {
	if !tok.HasParam {
		return semanticf(`\f with no param`)
	}
	key := strconv.Itoa(int(tok.Param))
	if _, ok := e.fonts[key]; !ok {
		e.warnf("unknown font %s", key)
	}
	e.top().font = key
	return nil
}

func (e *Engine) setCharset(tok *rtf.Token) error {
	if !tok.HasParam {
		return semanticf(`\fcharset with no param`)
	}
	n := int(tok.Param)
	if n == rtf.CharsetUnspecified {
		return nil
	}
	cpg, ok := rtf.CharsetCodepage(n)
	if !ok && rtf.IsCodepage(n) {
		cpg, ok = n, true
	}
	if !ok {
		e.warnf("no codepage for charset %d", n)
		return nil
	}
	e.fontDef.entry.FcharsetCpg = cpg
	return nil
}

func (e *Engine) closeFontDef() {
	if e.fontDef != nil && e.fontDef.key == "" {
		e.warnf(`font definition without \f`)
	}
	e.fontDef = nil
}

// currentFont returns the selected font, falling back to \deff.
func (e *Engine) currentFont() *FontEntry {
	key := e.top().font
	if key == "" {
		key = e.deff
	}
	return e.fonts[key]
}

// captureFontText appends text from a font definition to its name.
// Non-ASCII is kept as \uXXXX since the name's codepage is unknown
// until the definition is complete.
func (e *Engine) captureFontText(b []byte, units []uint16) {
	def := e.fontDef
	if def == nil {
		if strings.TrimSpace(string(b)) != "" || len(units) > 0 {
			e.warnf("font table text outside a font definition")
		}
		return
	}
	if def.named {
		return
	}

	var sb strings.Builder
	sb.WriteString(def.entry.FontName)
	for _, c := range b {
		writeFontUnit(&sb, uint16(c))
	}
	for _, u := range units {
		writeFontUnit(&sb, u)
	}

	name := sb.String()
	if i := strings.IndexByte(name, ';'); i >= 0 {
		name = name[:i]
		def.named = true
		if len(name) > 2 && name[0] == '"' && name[len(name)-1] == '"' {
			name = name[1 : len(name)-1]
		}
	}
	def.entry.FontName = name
}

func writeFontUnit(sb *strings.Builder, u uint16) {
	if u < 0x80 {
		sb.WriteByte(byte(u))
		return
	}
	fmt.Fprintf(sb, `\u%04X`, u)
}
