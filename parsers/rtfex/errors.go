// errors.go defines the error classes returned by the decoder.

package rtfex

import (
	"errors"
	"fmt"
)

// Error classes. Every fatal error returned by this package wraps
// exactly one of these; test with errors.Is.
var (
	// ErrStructure reports a stream that does not start with {\rtf0 or {\rtf1.
	ErrStructure = errors.New("malformed RTF")

	// ErrNotEncapsulated reports a well-formed RTF document that does
	// not carry the encapsulated payload the configured Mode asks for.
	ErrNotEncapsulated = errors.New("not encapsulated")

	// ErrSemantic reports control words used out of order or in the
	// wrong destination.
	ErrSemantic = errors.New("invalid RTF")

	// ErrCodepage reports text that cannot be decoded at all.
	ErrCodepage = errors.New("codepage")
)

func structuralf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrStructure}, args...)...)
}

func semanticf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrSemantic}, args...)...)
}

// notEncapsulated returns the mode-specific ErrNotEncapsulated error,
// e.g. "not encapsulated HTML file".
func notEncapsulated(m Mode) error {
	switch m {
	case ModeHTML:
		return fmt.Errorf("%w HTML file", ErrNotEncapsulated)
	case ModeText:
		return fmt.Errorf("%w text file", ErrNotEncapsulated)
	default:
		return fmt.Errorf("%w HTML or text file", ErrNotEncapsulated)
	}
}
