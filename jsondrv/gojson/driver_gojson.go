//go:build gojson

// Package gojson implements source.TokenSource using github.com/goccy/go-json,
// built only when the "gojson" build tag is set.
package gojson

import (
	"bytes"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	schemaguard "github.com/oknoso/schemaguard"
	src "github.com/oknoso/schemaguard/internal/source"
)

// Driver returns a schemaguard.JSONDriver backed by goccy/go-json.
func Driver() schemaguard.JSONDriver { return driver{} }

type driver struct{}

func (driver) NewReader(r io.Reader) schemaguard.Source {
	return schemaguard.SourceFromTokens(NewReader(r))
}
func (driver) NewBytes(b []byte) schemaguard.Source {
	return schemaguard.SourceFromTokens(NewBytes(b))
}
func (driver) Name() string { return "go-json" }

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
	dec   *j.Decoder
	stack []frame
}

// NewReader wraps an io.Reader into a source.TokenSource backed by go-json.
func NewReader(r io.Reader) src.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &tokenSource{dec: dec}
}

// NewBytes wraps a byte slice into a source.TokenSource backed by go-json.
func NewBytes(b []byte) src.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *tokenSource) NextToken() (src.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return src.Token{}, io.EOF
		}
		return src.Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{kind: kindObject, expectingKey: true})
			return src.Token{Kind: src.KindBeginObject, Offset: -1}, nil
		case '}':
			s.pop()
			return src.Token{Kind: src.KindEndObject, Offset: -1}, nil
		case '[':
			s.stack = append(s.stack, frame{kind: kindArray})
			return src.Token{Kind: src.KindBeginArray, Offset: -1}, nil
		case ']':
			s.pop()
			return src.Token{Kind: src.KindEndArray, Offset: -1}, nil
		}
	case string:
		if s.expectingKey() {
			s.sawValue()
			return src.Token{Kind: src.KindKey, String: v, Offset: -1}, nil
		}
		s.sawValue()
		return src.Token{Kind: src.KindString, String: v, Offset: -1}, nil
	case bool:
		s.sawValue()
		return src.Token{Kind: src.KindBool, Bool: v, Offset: -1}, nil
	case j.Number:
		s.sawValue()
		return src.Token{Kind: src.KindNumber, Number: string(v), Offset: -1}, nil
	case float64:
		s.sawValue()
		return src.Token{Kind: src.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: -1}, nil
	case nil:
		s.sawValue()
		return src.Token{Kind: src.KindNull, Offset: -1}, nil
	}
	s.sawValue()
	return src.Token{Kind: src.KindNull, Offset: -1}, nil
}

func (s *tokenSource) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
	s.sawValue()
}

func (s *tokenSource) expectingKey() bool {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		return top.kind == kindObject && top.expectingKey
	}
	return false
}

func (s *tokenSource) sawValue() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == kindObject {
			top.expectingKey = !top.expectingKey
		}
	}
}

func (s *tokenSource) Location() int64 { return -1 }
