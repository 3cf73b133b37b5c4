// Package stdjson implements the default source.TokenSource using the
// standard library's encoding/json decoder.
package stdjson

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	src "github.com/oknoso/schemaguard/internal/source"
)

// This package is imported directly by the root package to implement the
// process-wide default JSONDriver, so it must not import the root package
// itself (that would be a cycle) — only alternate drivers like jsondrv/gojson
// do, since they are opt-in and the root package never imports them.

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

type tokenSource struct {
	dec        *json.Decoder
	stack      []frame
	lastOffset int64
}

// NewReader wraps an io.Reader into a source.TokenSource.
func NewReader(r io.Reader) src.TokenSource {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &tokenSource{dec: dec, lastOffset: -1}
}

// NewBytes wraps a byte slice into a source.TokenSource.
func NewBytes(b []byte) src.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *tokenSource) NextToken() (src.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return src.Token{}, io.EOF
		}
		return src.Token{}, err
	}
	s.lastOffset = s.dec.InputOffset()

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			s.push(frame{kind: kindObject, expectingKey: true})
			return src.Token{Kind: src.KindBeginObject, Offset: s.lastOffset}, nil
		case '}':
			s.pop()
			return src.Token{Kind: src.KindEndObject, Offset: s.lastOffset}, nil
		case '[':
			s.push(frame{kind: kindArray})
			return src.Token{Kind: src.KindBeginArray, Offset: s.lastOffset}, nil
		case ']':
			s.pop()
			return src.Token{Kind: src.KindEndArray, Offset: s.lastOffset}, nil
		}
	case string:
		if s.expectingKey() {
			s.sawValue()
			return src.Token{Kind: src.KindKey, String: v, Offset: s.lastOffset}, nil
		}
		s.sawValue()
		return src.Token{Kind: src.KindString, String: v, Offset: s.lastOffset}, nil
	case bool:
		s.sawValue()
		return src.Token{Kind: src.KindBool, Bool: v, Offset: s.lastOffset}, nil
	case json.Number:
		s.sawValue()
		return src.Token{Kind: src.KindNumber, Number: string(v), Offset: s.lastOffset}, nil
	case float64:
		s.sawValue()
		return src.Token{Kind: src.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: s.lastOffset}, nil
	case nil:
		s.sawValue()
		return src.Token{Kind: src.KindNull, Offset: s.lastOffset}, nil
	}
	s.sawValue()
	return src.Token{Kind: src.KindNull, Offset: s.lastOffset}, nil
}

func (s *tokenSource) push(f frame) { s.stack = append(s.stack, f) }

func (s *tokenSource) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
	s.sawValue()
}

// expectingKey reports whether the current container is an object awaiting
// the next property name.
func (s *tokenSource) expectingKey() bool {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		return top.kind == kindObject && top.expectingKey
	}
	return false
}

// sawValue flips an object frame back to expecting a key after it consumes
// a value (string key tokens toggle expectingKey to false themselves).
func (s *tokenSource) sawValue() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == kindObject {
			if top.expectingKey {
				top.expectingKey = false
			} else {
				top.expectingKey = true
			}
		}
	}
}

func (s *tokenSource) Location() int64 { return s.lastOffset }
