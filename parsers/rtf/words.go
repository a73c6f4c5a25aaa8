// words.go classifies control words.

package rtf

// WordType is the semantic category of a control word.
type WordType uint8

// Word categories.
const (
	Unknown     WordType = iota // not in the table
	Symbol                      // substitutes literal text
	Destination                 // introduces a named sub-region
	Word                        // recognized, neither symbol nor destination
)

func (w WordType) String() string {
	switch w {
	case Symbol:
		return "symbol"
	case Destination:
		return "destination"
	case Word:
		return "word"
	default:
		return "unknown"
	}
}

// Classify returns the category of a control word or control symbol.
func Classify(word string) WordType {
	if t, ok := wordTable[word]; ok {
		return t
	}
	return Unknown
}

var wordTable = func() map[string]WordType {
	m := make(map[string]WordType, len(destinations)+len(symbols)+len(plainWords))
	for _, w := range destinations {
		m[w] = Destination
	}
	for _, w := range symbols {
		m[w] = Symbol
	}
	for _, w := range plainWords {
		m[w] = Word
	}
	return m
}()

// symbols are the control words and symbols that stand for literal text.
var symbols = []string{
	"par", "line", "tab", "lquote", "rquote", "ldblquote", "rdblquote",
	"bullet", "endash", "emdash", "emspace", "enspace", "qmspace",
	"zwj", "zwnj", "zwbo", "zwnbo", "ltrmark", "rtlmark",
	"{", "}", "\\", "~", "_", "-", "|", ":", "\r", "\n", "'",
}

// plainWords are recognized words that are neither symbols nor
// destinations: the ones the decoder acts on plus common formatting.
var plainWords = []string{
	"ansi", "ansicpg", "mac", "pc", "pca", "deff", "deflang", "deflangfe",
	"f", "fcharset", "cpg", "fprq", "fbidis",
	"fnil", "froman", "fswiss", "fmodern", "fscript", "fdecor", "ftech", "fbidi",
	"flomajor", "fhimajor", "fdbmajor", "fbimajor",
	"flominor", "fhiminor", "fdbminor", "fbiminor",
	"u", "uc", "bin", "htmlrtf", "fromhtml", "fromtext",
	"plain", "pard", "b", "i", "ul", "ulnone", "strike", "fs", "cf", "cb",
	"highlight", "lang", "langfe", "langnp", "loch", "hich", "dbch",
	"ql", "qr", "qc", "qj", "li", "ri", "fi", "sb", "sa", "sl", "slmult",
	"red", "green", "blue", "viewkind", "sectd", "cell", "row",
	"trowd", "intbl", "page", "sect", "column",
}

// destinations lists the RTF 1.9.1 destination control words plus
// the HTML encapsulation ones from MS-OXRTFEX.
var destinations = []string{
	"aftncn", "aftnsep", "aftnsepc", "annotation", "atnauthor", "atndate",
	"atnicn", "atnid", "atnparent", "atnref", "atntime", "atrfend",
	"atrfstart", "author", "background", "bkmkend", "bkmkstart", "blipuid",
	"buptim", "category", "colorschememapping", "colortbl", "comment",
	"company", "creatim", "datafield", "datastore", "defchp", "defpap", "do",
	"doccomm", "docvar", "dptxbxtext", "ebcend", "ebcstart", "factoidname",
	"falt", "fchars", "ffdeftext", "ffentrymcr", "ffexitmcr", "ffformat",
	"ffhelptext", "ffl", "ffname", "ffstattext", "field", "file", "filetbl",
	"fldinst", "fldrslt", "fldtype", "fname", "fontemb", "fontfile",
	"fonttbl", "footer", "footerf", "footerl", "footerr", "footnote",
	"formfield", "ftncn", "ftnsep", "ftnsepc", "g", "generator", "gridtbl",
	"header", "headerf", "headerl", "headerr", "hl", "hlfr", "hlinkbase",
	"hlloc", "hlsrc", "hsv", "htmltag", "info", "keycode", "keywords",
	"latentstyles", "lchars", "levelnumbers", "leveltext", "lfolevel",
	"linkval", "list", "listlevel", "listname", "listoverride",
	"listoverridetable", "listpicture", "liststylename", "listtable",
	"listtext", "lsdlockedexcept", "macc", "maccPr", "mailmerge", "maln",
	"malnScr", "manager", "margPr", "mbar", "mbarPr", "mbaseJc", "mbegChr",
	"mborderBox", "mborderBoxPr", "mbox", "mboxPr", "mchr", "mcount",
	"mctrlPr", "md", "mdeg", "mdegHide", "mden", "mdiff", "mdPr", "me",
	"mendChr", "meqArr", "meqArrPr", "mf", "mfName", "mfPr", "mfunc",
	"mfuncPr", "mgroupChr", "mgroupChrPr", "mgrow", "mhideBot", "mhideLeft",
	"mhideRight", "mhideTop", "mhtmltag", "mlim", "mlimloc", "mlimlow",
	"mlimlowPr", "mlimupp", "mlimuppPr", "mm", "mmaddfieldname", "mmath",
	"mmathPict", "mmathPr", "mmaxdist", "mmc", "mmcJc", "mmconnectstr",
	"mmconnectstrdata", "mmcPr", "mmcs", "mmdatasource", "mmheadersource",
	"mmmailsubject", "mmodso", "mmodsofilter", "mmodsofldmpdata",
	"mmodsomappedname", "mmodsoname", "mmodsorecipdata", "mmodsosort",
	"mmodsosrc", "mmodsotable", "mmodsoudl", "mmodsoudldata",
	"mmodsouniquetag", "mmPr", "mmquery", "mmr", "mnary", "mnaryPr",
	"mnoBreak", "mnum", "mobjDist", "moMath", "moMathPara", "moMathParaPr",
	"mopEmu", "mphant", "mphantPr", "mplcHide", "mpos", "mr", "mrad",
	"mradPr", "mrPr", "msepChr", "mshow", "mshp", "msPre", "msPrePr",
	"msSub", "msSubPr", "msSubSup", "msSubSupPr", "msSup", "msSupPr",
	"mstrikeBLTR", "mstrikeH", "mstrikeTLBR", "mstrikeV", "msub", "msubHide",
	"msup", "msupHide", "mtransp", "mtype", "mvertJc", "mvfmf", "mvfml",
	"mvtof", "mvtol", "mzeroAsc", "mzeroDesc", "mzeroWid", "nesttableprops",
	"nextfile", "nonesttables", "objalias", "objclass", "objdata", "object",
	"objname", "objsect", "objtime", "oldcprops", "oldpprops", "oldsprops",
	"oldtprops", "oleclsid", "operator", "panose", "password",
	"passwordhash", "pgp", "pgptbl", "picprop", "pict", "pn", "pnseclvl",
	"pntext", "pntxta", "pntxtb", "printim", "private", "propname",
	"protend", "protstart", "protusertbl", "pxe", "result", "revtbl",
	"revtim", "rsidtbl", "rtf", "rxe", "shp", "shpgrp", "shpinst",
	"shppict", "shprslt", "shptxt", "sn", "sp", "staticval", "stylesheet",
	"subject", "sv", "svb", "tc", "template", "themedata", "title", "txe",
	"ud", "upr", "userprops", "wgrffmtfilter", "windowcaption",
	"writereservation", "writereservhash", "xe", "xform", "xmlattrname",
	"xmlattrvalue", "xmlclose", "xmlname", "xmlnstbl", "xmlopen",
}
