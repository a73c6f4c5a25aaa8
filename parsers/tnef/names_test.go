package tnef

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNames(t *testing.T) {
	assert.Equal(t, "PR_RTF_COMPRESSED", PropertyName(MAPIRtfCompressed))
	assert.Equal(t, "0x7777", PropertyName(0x7777))
	assert.Equal(t, "PT_UNICODE", TypeName(PTUnicode))
	assert.Equal(t, "0x0099", TypeName(0x99))
	assert.Equal(t, "embedded message", MethodName(AttachEmbeddedMsg))
	assert.Equal(t, "method=9", MethodName(9))
}
