package textcodec

import "fmt"

// Flags selects how an illegal sequence is handled during transcoding:
// Strict conversions fail outright, Lenient conversions substitute the
// Unicode replacement character (U+FFFD) and continue.
type Flags int

const (
	Strict Flags = iota
	Lenient
)

// ErrIllegalSequence is returned by the width-specific decoders when Strict
// mode encounters an ill-formed code unit sequence.
type ErrIllegalSequence struct {
	Offset int
}

func (e ErrIllegalSequence) Error() string {
	return fmt.Sprintf("textcodec: illegal sequence at offset %d", e.Offset)
}

// CodepointCount returns the number of Unicode codepoints (not bytes, not
// UTF-16 code units) represented by a UTF-8-encoded string. This is what
// the string keyword's minLength/maxLength measure, so the length keywords
// route through this function instead of calling utf8.RuneCountInString
// directly. pattern and format do not use it; they work on the Go string.
func CodepointCount(s string) (int, error) {
	b := []byte(s)
	n := 0
	for i := 0; i < len(b); {
		_, size, ok := DecodeRune(b[i:], Strict)
		if !ok {
			return n, ErrIllegalSequence{Offset: i}
		}
		i += size
		n++
	}
	return n, nil
}

// Runes decodes s into its constituent codepoints using Strict legality
// rules, for callers that need random access by codepoint index rather
// than just a count. No keyword validator in this module calls it.
func Runes(s string) ([]rune, error) {
	b := []byte(s)
	out := make([]rune, 0, len(b))
	for i := 0; i < len(b); {
		r, size, ok := DecodeRune(b[i:], Strict)
		if !ok {
			return out, ErrIllegalSequence{Offset: i}
		}
		out = append(out, r)
		i += size
	}
	return out, nil
}

// BOMWidth reports the code-unit width (8, 16, or 32) and the number of
// leading bytes consumed by a byte-order mark at the start of b, or (0, 0)
// if none is present.
func BOMWidth(b []byte) (width, consumed int) {
	switch {
	case len(b) >= 4 && b[0] == 0x00 && b[1] == 0x00 && b[2] == 0xFE && b[3] == 0xFF:
		return 32, 4 // UTF-32 BE
	case len(b) >= 4 && b[0] == 0xFF && b[1] == 0xFE && b[2] == 0x00 && b[3] == 0x00:
		return 32, 4 // UTF-32 LE
	case len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF:
		return 8, 3 // UTF-8
	case len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF:
		return 16, 2 // UTF-16 BE
	case len(b) >= 2 && b[0] == 0xFF && b[1] == 0xFE:
		return 16, 2 // UTF-16 LE
	default:
		return 0, 0
	}
}
