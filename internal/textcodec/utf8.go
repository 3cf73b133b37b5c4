package textcodec

// trailingBytesForUTF8 classifies every possible lead byte by how many
// continuation bytes must follow it: 0 for single-byte sequences and
// continuation bytes themselves (which can never start a sequence), 1-5 for
// 2- through 6-byte lead bytes (the 5- and 6-byte forms of the original
// Unicode Transformation Format are not legal UTF-8 per the current
// Unicode Standard, so lead bytes 0xF8-0xFF are always illegal even though
// this table still assigns them a trailing-byte count for the scanning
// logic to reject uniformly).
var trailingBytesForUTF8 = [256]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	3, 3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 5, 5, 5,
}

const (
	replacementChar rune = 0xFFFD
	maxLegalUTF32   rune = 0x10FFFF
)

// isLegalUTF8 applies the Unicode Standard's table 3-7 (D92) definition of
// "well-formed UTF-8" to one candidate sequence of length len(b). It checks
// the second byte's range for the lead bytes whose legal continuation range
// is narrower than [0x80,0xBF] (the overlong-encoding and surrogate-range
// guards), then the remaining continuation bytes generically.
func isLegalUTF8(b []byte) bool {
	n := len(b)
	if n == 0 {
		return false
	}
	srcIdx := n - 1
	switch n {
	case 4:
		if b[srcIdx] < 0x80 || b[srcIdx] > 0xBF {
			return false
		}
		srcIdx--
		fallthrough
	case 3:
		if b[srcIdx] < 0x80 || b[srcIdx] > 0xBF {
			return false
		}
		srcIdx--
		fallthrough
	case 2:
		if b[srcIdx] < 0x80 || b[srcIdx] > 0xBF {
			return false
		}
		switch b[0] {
		case 0xE0:
			if b[1] < 0xA0 {
				return false
			}
		case 0xED:
			if b[1] > 0x9F {
				return false
			}
		case 0xF0:
			if b[1] < 0x90 {
				return false
			}
		case 0xF4:
			if b[1] > 0x8F {
				return false
			}
		}
		srcIdx--
		fallthrough
	case 1:
		if b[0] >= 0x80 && b[0] < 0xC2 {
			return false
		}
	}
	if b[0] > 0xF4 {
		return false
	}
	return true
}

// SequenceLength returns the number of bytes the UTF-8 sequence starting at
// lead is declared to occupy (1-6; 5 and 6 are always illegal and will be
// rejected by DecodeRune/ValidateUTF8, never by SequenceLength itself).
func SequenceLength(lead byte) int { return int(trailingBytesForUTF8[lead]) + 1 }

// DecodeRune decodes the UTF-8 sequence at the start of s, returning the
// decoded rune, the number of bytes consumed, and whether the sequence was
// well-formed. On an ill-formed sequence it returns (replacementChar, 1,
// false) in Lenient mode and (-1, 0, false) in Strict mode,
// mirroring the strict/lenient conversion flags of the Unicode reference
// converter.
func DecodeRune(s []byte, flags Flags) (r rune, size int, ok bool) {
	if len(s) == 0 {
		return 0, 0, false
	}
	n := SequenceLength(s[0])
	if n < 1 || n > 4 || n > len(s) {
		return illegalRune(flags), illegalSize(flags), false
	}
	if !isLegalUTF8(s[:n]) {
		return illegalRune(flags), illegalSize(flags), false
	}
	switch n {
	case 1:
		return rune(s[0]), 1, true
	case 2:
		return rune(s[0]&0x1F)<<6 | rune(s[1]&0x3F), 2, true
	case 3:
		return rune(s[0]&0x0F)<<12 | rune(s[1]&0x3F)<<6 | rune(s[2]&0x3F), 3, true
	default: // 4
		return rune(s[0]&0x07)<<18 | rune(s[1]&0x3F)<<12 | rune(s[2]&0x3F)<<6 | rune(s[3]&0x3F), 4, true
	}
}

func illegalRune(flags Flags) rune {
	if flags == Lenient {
		return replacementChar
	}
	return -1
}

func illegalSize(flags Flags) int {
	if flags == Lenient {
		return 1
	}
	return 0
}

// ValidateUTF8 reports whether b is entirely well-formed UTF-8.
func ValidateUTF8(b []byte) bool {
	for i := 0; i < len(b); {
		_, size, ok := DecodeRune(b[i:], Strict)
		if !ok {
			return false
		}
		i += size
	}
	return true
}
