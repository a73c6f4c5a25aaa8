// decoder.go implements the top-level TNEF stream parser, walking the
// binary envelope to extract message attributes and attachments.

package tnef

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/avaropoint/rtfex/parsers/codepage"
)

// attribute is one level/id/data record of the TNEF envelope.
type attribute struct {
	offset   int
	level    byte
	id       uint16
	typ      uint16
	data     []byte
	checksum uint16
}

// sum is the checksum the attribute should carry: its data bytes
// added modulo 65536.
func (a *attribute) sum() uint16 {
	var s uint16
	for _, b := range a.data {
		s += uint16(b)
	}
	return s
}

type reader struct {
	data []byte
	off  int
}

// next returns the next attribute, or io.EOF after the last one.
func (r *reader) next() (attribute, error) {
	if r.off >= len(r.data) {
		return attribute{}, io.EOF
	}
	if r.off+attrHeaderSize > len(r.data) {
		return attribute{}, fmt.Errorf("truncated attribute header at offset %d", r.off)
	}
	h := r.data[r.off:]
	a := attribute{
		offset: r.off,
		level:  h[0],
		id:     binary.LittleEndian.Uint16(h[1:]),
		typ:    binary.LittleEndian.Uint16(h[3:]),
	}
	n := int(binary.LittleEndian.Uint32(h[5:]))
	end := r.off + attrHeaderSize + n
	if n < 0 || end+2 > len(r.data) || end < r.off {
		return attribute{}, fmt.Errorf("attribute %#04x at offset %d runs past the end of the stream", a.id, r.off)
	}
	a.data = r.data[r.off+attrHeaderSize : end]
	a.checksum = binary.LittleEndian.Uint16(r.data[end:])
	r.off = end + 2
	return a, nil
}

type decoder struct {
	opts  Options
	depth int
	msg   *Message

	cur        *Attachment
	pending    map[*Attachment]*rawAttachment
	oemCpg     int
	subject    []byte
	class      []byte
	body       []byte
	recipients [][]MAPIAttr
}

// rawAttachment holds attachment fields that are decoded once the
// message codepage is known.
type rawAttachment struct {
	title []byte
}

// Decode parses a raw TNEF byte stream and returns the decoded Message.
// Damage past the signature is reported in Message.Warnings.
func Decode(data []byte, opts Options) (*Message, error) {
	return decode(data, opts, 0)
}

func decode(data []byte, opts Options, depth int) (*Message, error) {
	if len(data) < 6 || binary.LittleEndian.Uint32(data) != tnefSignature {
		return nil, ErrBadSignature
	}
	d := &decoder{
		opts:    opts,
		depth:   depth,
		msg:     &Message{},
		pending: make(map[*Attachment]*rawAttachment),
	}

	r := &reader{data: data, off: 6}
	for {
		a, err := r.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			d.warnf("%v", err)
			break
		}
		if a.sum() != a.checksum {
			d.warnf("attribute %#04x at offset %d: bad checksum", a.id, a.offset)
		}
		d.handle(&a)
	}

	d.finish()
	return d.msg, nil
}

func (d *decoder) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	d.msg.Warnings = append(d.msg.Warnings, msg)
	if d.opts.Warn != nil {
		d.opts.Warn(msg)
	}
}

func (d *decoder) handle(a *attribute) {
	if a.level == lvlAttachment {
		d.handleAttachment(a)
		return
	}
	if a.level != lvlMessage {
		d.warnf("attribute %#04x at offset %d: unknown level %d", a.id, a.offset, a.level)
		return
	}

	switch a.id {
	case attrMAPIProps:
		attrs, _, err := decodeProps(a.data)
		if err != nil {
			d.warnf("attribute %#04x at offset %d: %v", a.id, a.offset, err)
		}
		d.msg.Attributes = append(d.msg.Attributes, attrs...)
	case attrSubject:
		d.subject = a.data
	case attrMessageClass:
		d.class = a.data
	case attrBody:
		d.body = a.data
	case attrFrom:
		d.msg.SenderName, d.msg.SenderEmail = decodeTriple(a.data)
	case attrOEMCodepage:
		if len(a.data) >= 4 {
			d.oemCpg = int(binary.LittleEndian.Uint32(a.data))
		}
	case attrRecipTable:
		var err error
		if d.recipients, err = decodeRows(a.data); err != nil {
			d.warnf("attribute %#04x at offset %d: %v", a.id, a.offset, err)
		}
	}
}

func (d *decoder) handleAttachment(a *attribute) {
	// attAttachRendData starts each attachment
	if a.id == attrAttachRendData {
		d.cur = &Attachment{}
		d.msg.Attachments = append(d.msg.Attachments, d.cur)
		d.pending[d.cur] = &rawAttachment{}
		return
	}
	if d.cur == nil {
		d.warnf("attachment attribute %#04x at offset %d before any attachment", a.id, a.offset)
		return
	}
	switch a.id {
	case attrAttachTitle:
		d.pending[d.cur].title = a.data
	case attrAttachData:
		d.cur.Data = a.data
	case attrAttachment:
		attrs, _, err := decodeProps(a.data)
		if err != nil {
			d.warnf("attribute %#04x at offset %d: %v", a.id, a.offset, err)
		}
		d.cur.Attributes = append(d.cur.Attributes, attrs...)
	}
}

// finish resolves everything that depends on the message codepage.
func (d *decoder) finish() {
	m := d.msg
	m.Codepage = 1252
	if d.oemCpg > 0 {
		m.Codepage = d.oemCpg
	}
	if a := m.GetAttr(MAPIInternetCPID); a != nil {
		if v, ok := a.Uint32(); ok && v > 0 {
			m.Codepage = int(v)
		}
	}

	m.Subject = d.text(m.GetAttr(MAPISubject), d.subject)
	m.MessageClass = d.text(m.GetAttr(MAPIMessageClass), d.class)
	m.DisplayTo = m.GetAttrString(MAPIDisplayTo)
	m.DisplayCc = m.GetAttrString(MAPIDisplayCc)
	if s := m.GetAttrString(MAPISenderName); s != "" {
		m.SenderName = s
	}
	if s := m.GetAttrString(MAPISenderEmail); s != "" {
		m.SenderEmail = s
	}
	for _, row := range d.recipients {
		r := Recipient{Name: d.text(findAttr(row, MAPIDisplayName), nil)}
		r.Email = d.text(findAttr(row, MAPISMTPAddress), nil)
		if r.Email == "" {
			r.Email = d.text(findAttr(row, MAPIEmailAddress), nil)
		}
		m.Recipients = append(m.Recipients, r)
	}

	if body := d.text(m.GetAttr(MAPIBody), d.body); body != "" {
		m.Body = []byte(body)
	}
	if a := m.GetAttr(MAPIBodyHTML); a != nil {
		m.BodyHTML = a.Data()
	}
	if a := m.GetAttr(MAPIRtfCompressed); a != nil {
		d.decodeRTF(a.Data())
	}

	for _, att := range m.Attachments {
		d.finishAttachment(att, d.pending[att])
	}
}

// text decodes a MAPI string property, falling back to a legacy
// attribute value in the message codepage.
func (d *decoder) text(a *MAPIAttr, legacy []byte) string {
	if a != nil {
		return a.Text(d.msg.Codepage)
	}
	if len(legacy) == 0 {
		return ""
	}
	s, err := codepage.Decode(legacy, codepage.Label(d.msg.Codepage))
	if err != nil {
		s = string(legacy)
	}
	return cleanStr(s)
}

func (d *decoder) finishAttachment(att *Attachment, raw *rawAttachment) {
	att.Title = d.text(nil, raw.title)
	var obj []byte
	for i := range att.Attributes {
		a := &att.Attributes[i]
		if a.Named {
			continue
		}
		switch a.ID {
		case MAPIAttachFilename:
			if att.Title == "" {
				att.Title = a.Text(d.msg.Codepage)
			}
		case MAPIAttachLongFname:
			att.LongName = a.Text(d.msg.Codepage)
		case MAPIAttachMimeTag:
			att.MimeType = a.Text(d.msg.Codepage)
		case MAPIAttachContentID:
			att.ContentID = a.Text(d.msg.Codepage)
		case MAPIAttachMethod:
			if v, ok := a.Uint32(); ok {
				att.Method = int(v)
			}
		case MAPIAttachDataObj:
			obj = a.Data()
		}
	}
	if len(obj) > 0 && len(att.Data) == 0 {
		d.resolveNested(att, obj)
	}
	// attAttachData with no PR_ATTACH_METHOD is a plain file
	if att.Method == 0 && att.EmbeddedMsg == nil && len(att.Data) > 0 {
		att.Method = AttachByValue
	}
}

// resolveNested decodes obj as a nested TNEF message, with or without
// the 16-byte interface ID some writers put in front of it.
func (d *decoder) resolveNested(att *Attachment, obj []byte) {
	att.Data = obj
	if d.depth+1 >= maxDepth {
		d.warnf("attachment %q: embedded messages nested too deeply", att.Filename())
		return
	}
	for _, skip := range []int{16, 0} {
		if len(obj) < skip+6 {
			continue
		}
		sub := obj[skip:]
		if binary.LittleEndian.Uint32(sub) != tnefSignature {
			continue
		}
		if n, err := decode(sub, d.opts, d.depth+1); err == nil {
			att.EmbeddedMsg = n
			att.Data = sub
			return
		}
	}
}

// decodeTriple reads the address triple of attFrom: a display name
// and an address, each NUL terminated.
func decodeTriple(b []byte) (name, email string) {
	if len(b) < 8 {
		return "", ""
	}
	nl := int(binary.LittleEndian.Uint16(b[4:]))
	al := int(binary.LittleEndian.Uint16(b[6:]))
	b = b[8:]
	if nl > len(b) {
		return "", ""
	}
	name = cleanStr(string(b[:nl]))
	b = b[nl:]
	if al > len(b) {
		al = len(b)
	}
	return name, cleanStr(string(b[:al]))
}

// decodeRows reads the recipient table: a row count followed by a
// property block per row.
func decodeRows(b []byte) ([][]MAPIAttr, error) {
	if len(b) < 4 {
		return nil, fmt.Errorf("recipient table of %d bytes has no count", len(b))
	}
	count := int(binary.LittleEndian.Uint32(b))
	b = b[4:]
	var rows [][]MAPIAttr
	for i := 0; i < count; i++ {
		if len(b) < 4 {
			return rows, fmt.Errorf("recipient table holds %d of %d rows", i, count)
		}
		attrs, n, err := decodeProps(b)
		rows = append(rows, attrs)
		if err != nil {
			return rows, fmt.Errorf("recipient %d: %w", i+1, err)
		}
		b = b[n:]
	}
	return rows, nil
}
