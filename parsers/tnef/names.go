// names.go maps TNEF attribute and MAPI property numbers to the names
// Microsoft documents them under, for diagnostics.

package tnef

import "fmt"

var propNames = map[int]string{
	0x0002: "PR_ALTERNATE_RECIPIENT",
	0x001A: "PR_MESSAGE_CLASS",
	0x0037: "PR_SUBJECT",
	0x003D: "PR_SUBJECT_PREFIX",
	0x0042: "PR_SENT_REPRESENTING_NAME",
	0x0065: "PR_SENT_REPRESENTING_EMAIL",
	0x0070: "PR_CONVERSATION_TOPIC",
	0x0071: "PR_CONVERSATION_INDEX",
	0x0C1A: "PR_SENDER_NAME",
	0x0C1E: "PR_SENDER_ADDRTYPE",
	0x0C1F: "PR_SENDER_EMAIL_ADDRESS",
	0x0E03: "PR_DISPLAY_CC",
	0x0E04: "PR_DISPLAY_TO",
	0x0E06: "PR_MESSAGE_DELIVERY_TIME",
	0x0E07: "PR_MESSAGE_FLAGS",
	0x0E08: "PR_MESSAGE_SIZE",
	0x0E1D: "PR_SUBJECT_NORMALIZED",
	0x0E1F: "PR_RTF_IN_SYNC",
	0x0FF9: "PR_RECORD_KEY",
	0x1000: "PR_BODY",
	0x1006: "PR_RTF_SYNC_BODY_CRC",
	0x1007: "PR_RTF_SYNC_BODY_COUNT",
	0x1008: "PR_RTF_SYNC_BODY_TAG",
	0x1009: "PR_RTF_COMPRESSED",
	0x1013: "PR_BODY_HTML",
	0x1035: "PR_INTERNET_MESSAGE_ID",
	0x3001: "PR_DISPLAY_NAME",
	0x3003: "PR_EMAIL_ADDRESS",
	0x3007: "PR_CREATION_TIME",
	0x3008: "PR_LAST_MODIFICATION_TIME",
	0x300B: "PR_SEARCH_KEY",
	0x3701: "PR_ATTACH_DATA_OBJ",
	0x3702: "PR_ATTACH_ENCODING",
	0x3703: "PR_ATTACH_EXTENSION",
	0x3704: "PR_ATTACH_FILENAME",
	0x3705: "PR_ATTACH_METHOD",
	0x3707: "PR_ATTACH_LONG_FILENAME",
	0x3709: "PR_ATTACH_RENDERING",
	0x370B: "PR_RENDERING_POSITION",
	0x370E: "PR_ATTACH_MIME_TAG",
	0x3712: "PR_ATTACH_CONTENT_ID",
	0x3714: "PR_ATTACH_FLAGS",
	0x39FE: "PR_SMTP_ADDRESS",
	0x3FDE: "PR_INTERNET_CPID",
}

var typeNames = map[int]string{
	0x0002: "PT_SHORT",
	0x0003: "PT_LONG",
	0x000B: "PT_BOOLEAN",
	0x000D: "PT_OBJECT",
	0x0014: "PT_I8",
	0x001E: "PT_STRING8",
	0x001F: "PT_UNICODE",
	0x0040: "PT_SYSTIME",
	0x0048: "PT_CLSID",
	0x0102: "PT_BINARY",
}

// PropertyName returns the PR_ name of a MAPI property, or its number.
func PropertyName(id int) string {
	if n, ok := propNames[id]; ok {
		return n
	}
	return fmt.Sprintf("0x%04X", id)
}

// TypeName returns the PT_ name of a MAPI property type, or its number.
func TypeName(t int) string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("0x%04X", t)
}

// MethodName describes a PR_ATTACH_METHOD value.
func MethodName(m int) string {
	switch m {
	case AttachByValue:
		return "file"
	case AttachEmbeddedMsg:
		return "embedded message"
	case AttachOLE:
		return "OLE object"
	default:
		return fmt.Sprintf("method=%d", m)
	}
}
