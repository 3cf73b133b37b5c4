package uriref

import "testing"

func TestAppendGrowsPointerFragment(t *testing.T) {
	w := MustParse("https://example.com/schema.json")
	w = w.Append("properties").Append("name")
	if got, want := w.String(), "https://example.com/schema.json#/properties/name"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAppendEscapesReferenceTokens(t *testing.T) {
	w := MustParse("https://example.com/schema.json")
	w = w.Append("a/b~c")
	if got, want := w.String(), "https://example.com/schema.json#/a~1b~0c"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAppendIsNoOpOnPlainIdentifier(t *testing.T) {
	w := MustParse("https://example.com/schema.json#foo")
	w2 := w.Append("bar")
	if !w2.Equal(w) {
		t.Errorf("Append on a plain identifier fragment should be a no-op, got %q", w2.String())
	}
}

func TestResolveKeepsReceiverFragment(t *testing.T) {
	base := MustParse("https://example.com/a/schema.json#/definitions/foo")
	ref := MustParse("other.json#/definitions/bar")
	resolved := ref.Resolve(base)
	if got, want := resolved.String(), "https://example.com/a/other.json#/definitions/bar"; got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestResolveWithNoOwnFragmentKeepsEmptyPointer(t *testing.T) {
	base := MustParse("https://example.com/a/schema.json#/definitions/foo")
	ref := MustParse("other.json")
	resolved := ref.Resolve(base)
	if got, want := resolved.String(), "https://example.com/a/other.json"; got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
	if !resolved.HasPointer() {
		t.Error("expected empty fragment to still count as a (empty) JSON pointer")
	}
}

func TestHasPointerVsHasIdentifier(t *testing.T) {
	ptr := MustParse("https://example.com/s.json#/a/b")
	if !ptr.HasPointer() || ptr.HasIdentifier() {
		t.Errorf("expected pointer fragment classification for %q", ptr.String())
	}
	ident := MustParse("https://example.com/s.json#anchor")
	if ident.HasPointer() || !ident.HasIdentifier() {
		t.Errorf("expected identifier fragment classification for %q", ident.String())
	}
}

func TestEscapeToken(t *testing.T) {
	if got, want := EscapeToken("a/b~c"), "a~1b~0c"; got != want {
		t.Errorf("EscapeToken() = %q, want %q", got, want)
	}
}
