// types.go defines the decoded message, its attachments and recipients.

package tnef

import (
	"bytes"

	"github.com/avaropoint/rtfex/parsers/rtfex"
)

// Options controls decoding.
type Options struct {
	// RTF configures de-encapsulation of the compressed RTF body.
	RTF rtfex.Options

	// Warn, when set, receives each warning as it is recorded.
	Warn func(msg string)
}

// Message holds the decoded contents of a TNEF stream.
type Message struct {
	Subject      string
	SenderName   string
	SenderEmail  string
	MessageClass string
	DisplayTo    string
	DisplayCc    string
	Recipients   []Recipient

	// Codepage is used for PT_STRING8 values: PR_INTERNET_CPID, else
	// the OEM codepage attribute, else 1252.
	Codepage int

	Body        []byte // plain text body as UTF-8
	BodyHTML    []byte // PR_BODY_HTML as stored
	BodyRTF     []byte // decompressed PR_RTF_COMPRESSED
	Payload     []byte // HTML or text de-encapsulated from BodyRTF
	PayloadMode rtfex.Mode

	Attachments []*Attachment
	Attributes  []MAPIAttr // message-level MAPI properties
	Warnings    []string
}

// Recipient is one row of the recipient table.
type Recipient struct {
	Name  string
	Email string
}

// GetAttr returns the first MAPI attribute matching the given property ID,
// or nil if not found.
func (m *Message) GetAttr(propID int) *MAPIAttr {
	return findAttr(m.Attributes, propID)
}

// GetAttrString returns the text of the first MAPI attribute matching
// propID in the message codepage.
func (m *Message) GetAttrString(propID int) string {
	if a := m.GetAttr(propID); a != nil {
		return a.Text(m.Codepage)
	}
	return ""
}

// HTML returns the best HTML body: PR_BODY_HTML, else the HTML
// de-encapsulated from the RTF body.
func (m *Message) HTML() []byte {
	if len(m.BodyHTML) > 0 {
		return m.BodyHTML
	}
	if m.PayloadMode == rtfex.ModeHTML {
		return m.Payload
	}
	return nil
}

// Attachment holds a single attachment (file, embedded message, or OLE object).
type Attachment struct {
	Title       string   // Short filename (8.3 format).
	LongName    string   // Long filename.
	Data        []byte   // Raw attachment content.
	MimeType    string   // MIME type, if available.
	ContentID   string   // Content-ID for inline images (cid: references).
	Method      int      // AttachByValue, AttachEmbeddedMsg, or AttachOLE.
	EmbeddedMsg *Message // Decoded nested message, if Method is AttachEmbeddedMsg.
	Attributes  []MAPIAttr
}

// Filename returns the best available display name for the attachment,
// preferring the long name over the short name.
func (a *Attachment) Filename() string {
	if a.LongName != "" {
		return a.LongName
	}
	if a.Title != "" {
		return a.Title
	}
	return "unnamed"
}

// ResolveContentIDs replaces cid: references in the HTML bodies with
// what mapper returns for each attachment that has a Content-ID.
func (m *Message) ResolveContentIDs(mapper func(att *Attachment) string) {
	cidMap := make(map[string]string)
	for _, att := range m.Attachments {
		if att.ContentID == "" {
			continue
		}
		if name := mapper(att); name != "" {
			cidMap[att.ContentID] = name
		}
	}
	if len(cidMap) == 0 {
		return
	}

	m.BodyHTML = replaceCIDs(m.BodyHTML, cidMap)
	if m.PayloadMode == rtfex.ModeHTML {
		m.Payload = replaceCIDs(m.Payload, cidMap)
	}
}

func replaceCIDs(html []byte, cidMap map[string]string) []byte {
	if len(html) == 0 {
		return html
	}
	for cid, repl := range cidMap {
		html = bytes.ReplaceAll(html, []byte("cid:"+cid), []byte(repl))
	}
	return html
}

func findAttr(attrs []MAPIAttr, propID int) *MAPIAttr {
	for i := range attrs {
		if attrs[i].ID == propID && !attrs[i].Named {
			return &attrs[i]
		}
	}
	return nil
}
