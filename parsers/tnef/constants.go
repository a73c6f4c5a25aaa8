// Package tnef decodes Microsoft TNEF (Transport Neutral Encapsulation
// Format) streams, commonly found as winmail.dat email attachments.
//
// The compressed RTF body is decompressed and, when it encapsulates
// HTML or plain text, de-encapsulated into Message.Payload.
package tnef

import "errors"

const (
	tnefSignature = 0x223e9f78
	lvlMessage    = 0x01
	lvlAttachment = 0x02

	// attribute header: level, id, type, length; then data and checksum
	attrHeaderSize = 9
	maxDepth       = 8
)

// TNEF attribute IDs.
const (
	attrFrom           = 0x8000
	attrSubject        = 0x8004
	attrMessageClass   = 0x8008
	attrBody           = 0x800C
	attrAttachData     = 0x800F
	attrAttachTitle    = 0x8010
	attrAttachRendData = 0x9002
	attrMAPIProps      = 0x9003
	attrRecipTable     = 0x9004
	attrAttachment     = 0x9005
	attrOEMCodepage    = 0x9007
)

// MAPI property IDs.
const (
	MAPISubject         = 0x0037 // PR_SUBJECT
	MAPIMessageClass    = 0x001A // PR_MESSAGE_CLASS
	MAPISenderName      = 0x0C1A // PR_SENDER_NAME
	MAPISenderEmail     = 0x0C1F // PR_SENDER_EMAIL_ADDRESS
	MAPIDisplayTo       = 0x0E04 // PR_DISPLAY_TO
	MAPIDisplayCc       = 0x0E03 // PR_DISPLAY_CC
	MAPIBody            = 0x1000 // PR_BODY
	MAPIRtfCompressed   = 0x1009 // PR_RTF_COMPRESSED
	MAPIBodyHTML        = 0x1013 // PR_BODY_HTML
	MAPIDisplayName     = 0x3001 // PR_DISPLAY_NAME
	MAPIEmailAddress    = 0x3003 // PR_EMAIL_ADDRESS
	MAPIAttachDataObj   = 0x3701 // PR_ATTACH_DATA_OBJ
	MAPIAttachFilename  = 0x3704 // PR_ATTACH_FILENAME
	MAPIAttachMethod    = 0x3705 // PR_ATTACH_METHOD
	MAPIAttachLongFname = 0x3707 // PR_ATTACH_LONG_FILENAME
	MAPIAttachMimeTag   = 0x370E // PR_ATTACH_MIME_TAG
	MAPIAttachContentID = 0x3712 // PR_ATTACH_CONTENT_ID
	MAPISMTPAddress     = 0x39FE // PR_SMTP_ADDRESS
	MAPIInternetCPID    = 0x3FDE // PR_INTERNET_CPID
)

// MAPI property types.
const (
	PTLong    = 0x0003
	PTBoolean = 0x000B
	PTObject  = 0x000D
	PTString8 = 0x001E
	PTUnicode = 0x001F
	PTBinary  = 0x0102
)

// Attachment method constants from PR_ATTACH_METHOD.
const (
	AttachByValue     = 1
	AttachEmbeddedMsg = 5
	AttachOLE         = 6
)

// ErrBadSignature is returned when the input is not a valid TNEF stream.
var ErrBadSignature = errors.New("not a valid TNEF file")
