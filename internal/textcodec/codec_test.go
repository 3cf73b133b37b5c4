package textcodec

import "testing"

func TestCodepointCountASCII(t *testing.T) {
	n, err := CodepointCount("hello")
	if err != nil || n != 5 {
		t.Fatalf("got (%d,%v), want (5,nil)", n, err)
	}
}

func TestCodepointCountMultiByte(t *testing.T) {
	// "héllo" has 5 codepoints but 6 bytes (é is 2 bytes in UTF-8).
	n, err := CodepointCount("héllo")
	if err != nil || n != 5 {
		t.Fatalf("got (%d,%v), want (5,nil)", n, err)
	}
}

func TestCodepointCountSurrogatePairEmoji(t *testing.T) {
	// U+1F600 GRINNING FACE is one codepoint, four UTF-8 bytes.
	n, err := CodepointCount("😀")
	if err != nil || n != 1 {
		t.Fatalf("got (%d,%v), want (1,nil)", n, err)
	}
}

func TestValidateUTF8RejectsOverlong(t *testing.T) {
	// 0xC0 0x80 is an overlong encoding of U+0000 and must be rejected.
	if ValidateUTF8([]byte{0xC0, 0x80}) {
		t.Fatal("expected overlong sequence to be illegal")
	}
}

func TestValidateUTF8RejectsLoneContinuation(t *testing.T) {
	if ValidateUTF8([]byte{0x80}) {
		t.Fatal("expected lone continuation byte to be illegal")
	}
}

func TestValidateUTF8RejectsSurrogateRangeInED(t *testing.T) {
	// 0xED 0xA0 0x80 would encode U+D800, a surrogate; illegal in UTF-8.
	if ValidateUTF8([]byte{0xED, 0xA0, 0x80}) {
		t.Fatal("expected encoded surrogate to be illegal")
	}
}

func TestBOMWidthDetectsUTF8(t *testing.T) {
	w, n := BOMWidth([]byte{0xEF, 0xBB, 0xBF, 'x'})
	if w != 8 || n != 3 {
		t.Fatalf("got (%d,%d), want (8,3)", w, n)
	}
}

func TestBOMWidthNone(t *testing.T) {
	w, n := BOMWidth([]byte("no bom here"))
	if w != 0 || n != 0 {
		t.Fatalf("got (%d,%d), want (0,0)", w, n)
	}
}

func TestEncodeDecodeUTF16Surrogates(t *testing.T) {
	units, ok := EncodeUTF16Rune('😀')
	if !ok || len(units) != 2 {
		t.Fatalf("expected surrogate pair, got %v ok=%v", units, ok)
	}
	r, size, ok := DecodeUTF16Rune(units, Strict)
	if !ok || size != 2 || r != '😀' {
		t.Fatalf("roundtrip mismatch: r=%q size=%d ok=%v", r, size, ok)
	}
}
