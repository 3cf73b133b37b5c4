package source

import (
	"encoding/json"
	"errors"
	"io"
	"testing"
)

// listSource replays a fixed token list, tracking a synthetic byte offset
// of one unit per token so MaxBytes enforcement has something to compare
// against.
type listSource struct {
	toks []Token
	i    int
}

func (l *listSource) NextToken() (Token, error) {
	if l.i >= len(l.toks) {
		return Token{}, io.EOF
	}
	t := l.toks[l.i]
	l.i++
	return t, nil
}

func (l *listSource) Location() int64 { return int64(l.i) }

func obj(toks ...Token) []Token {
	return append(append([]Token{{Kind: KindBeginObject}}, toks...), Token{Kind: KindEndObject})
}

func key(s string) Token { return Token{Kind: KindKey, String: s} }
func str(s string) Token { return Token{Kind: KindString, String: s} }
func num(s string) Token { return Token{Kind: KindNumber, Number: s} }

func TestDecodeAnyBuildsTree(t *testing.T) {
	toks := obj(key("a"), num("1"), key("b"), str("x"))
	v, err := DecodeAny(&listSource{toks: toks})
	if err != nil {
		t.Fatalf("DecodeAny: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok || m["b"] != "x" {
		t.Fatalf("got %#v", v)
	}
}

func TestDecodeAnyWithOptionsRejectsDuplicateKey(t *testing.T) {
	toks := obj(key("a"), num("1"), key("a"), num("2"))
	_, err := DecodeAnyWithOptions(&listSource{toks: toks}, DecodeOptions{OnDuplicate: DupError})
	var ce ConstraintError
	if !errors.As(err, &ce) || ce.Code != "duplicate_key" {
		t.Fatalf("expected a duplicate_key ConstraintError, got %v", err)
	}
}

func TestDecodeAnyWithOptionsWarnsOnDuplicateKey(t *testing.T) {
	toks := obj(key("a"), num("1"), key("a"), num("2"))
	var warned ConstraintError
	v, err := DecodeAnyWithOptions(&listSource{toks: toks}, DecodeOptions{
		OnDuplicate: DupWarn,
		OnWarn:      func(ce ConstraintError) { warned = ce },
	})
	if err != nil {
		t.Fatalf("DecodeAnyWithOptions: %v", err)
	}
	if warned.Code != "duplicate_key" {
		t.Fatalf("expected OnWarn to fire, got %+v", warned)
	}
	if v.(map[string]any)["a"] != json.Number("2") {
		t.Fatalf("expected the later value to win, got %#v", v)
	}
}

func TestDecodeAnyWithOptionsEnforcesMaxDepth(t *testing.T) {
	toks := obj(key("a"), Token{Kind: KindBeginObject}, key("b"), num("1"), Token{Kind: KindEndObject})
	_, err := DecodeAnyWithOptions(&listSource{toks: toks}, DecodeOptions{MaxDepth: 1})
	var ce ConstraintError
	if !errors.As(err, &ce) || ce.Code != "parse_error" {
		t.Fatalf("expected a max-depth ConstraintError, got %v", err)
	}
}
