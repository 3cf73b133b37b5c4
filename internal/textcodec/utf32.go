package textcodec

// DecodeUTF32Rune validates and returns a single UTF-32 code unit as a
// rune. UTF-32 code units are codepoints already; the only legality checks
// are range (<= 0x10FFFF) and exclusion of the surrogate range, which is
// never a valid scalar value on its own.
func DecodeUTF32Rune(u uint32, flags Flags) (r rune, ok bool) {
	rv := rune(u)
	if rv < 0 || rv > maxLegalUTF32 || (rv >= surrHighStart && rv <= surrLowEnd) {
		if flags == Lenient {
			return replacementChar, false
		}
		return -1, false
	}
	return rv, true
}

// DecodeUTF32 validates and converts an entire UTF-32 code-unit slice.
func DecodeUTF32(units []uint32, flags Flags) ([]rune, error) {
	out := make([]rune, len(units))
	for i, u := range units {
		r, ok := DecodeUTF32Rune(u, flags)
		if !ok && flags == Strict {
			return out[:i], ErrIllegalSequence{Offset: i}
		}
		out[i] = r
	}
	return out, nil
}
