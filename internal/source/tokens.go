package source

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Kind represents token kinds surfaced by a JSONDriver.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is the minimal interface a JSON driver exposes once it has
// turned raw text into a token stream.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// DuplicateStrictness controls how DecodeAnyWithOptions reacts to a
// repeated object key.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// ConstraintError is returned by DecodeAnyWithOptions when a decode-time
// constraint (duplicate key, nesting depth, byte budget) is violated. It
// carries a JSON Pointer to where the violation occurred so the root
// package can fold it straight into an Issue without re-deriving the
// location.
type ConstraintError struct {
	Code    string
	Path    string
	Message string
}

func (e ConstraintError) Error() string { return e.Message }

// DecodeOptions configures the constraints DecodeAnyWithOptions enforces
// while it builds the instance tree. The zero value enforces nothing,
// which is exactly what DecodeAny does.
type DecodeOptions struct {
	OnDuplicate DuplicateStrictness
	MaxDepth    int
	MaxBytes    int64
	// OnWarn, if set, is called for a duplicate key detected under
	// DupWarn; DecodeAnyWithOptions otherwise keeps decoding with the
	// later value winning, the same as encoding/json does for structs.
	OnWarn func(ConstraintError)
}

// DecodeAny builds the "any"/map[string]any/[]any/json.Number tree the
// builder and validator consume from a streaming token source, enforcing
// no limits. Numbers are always kept as json.Number text, never coerced
// to float64, since draft-07 keywords like multipleOf need the original
// decimal precision.
func DecodeAny(src TokenSource) (any, error) {
	return DecodeAnyWithOptions(src, DecodeOptions{})
}

// DecodeAnyWithOptions is DecodeAny plus duplicate-key, max-depth and
// max-bytes enforcement, applied in the same recursive-descent pass that
// builds the tree rather than as a separate wrapping layer.
func DecodeAnyWithOptions(src TokenSource, opts DecodeOptions) (any, error) {
	d := &decoder{src: src, opts: opts}
	tok, err := src.NextToken()
	if err != nil {
		return nil, err
	}
	return d.value(tok, "")
}

type decoder struct {
	src   TokenSource
	opts  DecodeOptions
	depth int
}

func (d *decoder) value(tok Token, path string) (any, error) {
	if d.overBudget(path) {
		return nil, ConstraintError{Code: "truncated", Path: normalizePath(path), Message: "max bytes exceeded"}
	}
	switch tok.Kind {
	case KindBeginObject:
		return d.object(path)
	case KindBeginArray:
		return d.array(path)
	case KindString:
		return tok.String, nil
	case KindNumber:
		return json.Number(tok.Number), nil
	case KindBool:
		return tok.Bool, nil
	case KindNull:
		return nil, nil
	default:
		return nil, io.ErrUnexpectedEOF
	}
}

func (d *decoder) overBudget(path string) bool {
	if d.opts.MaxBytes <= 0 {
		return false
	}
	off := d.src.Location()
	return off >= 0 && off > d.opts.MaxBytes
}

func (d *decoder) enterContainer(path string) error {
	d.depth++
	if d.opts.MaxDepth > 0 && d.depth > d.opts.MaxDepth {
		return ConstraintError{Code: "parse_error", Path: normalizePath(path), Message: "max depth exceeded"}
	}
	return nil
}

func (d *decoder) object(path string) (any, error) {
	if err := d.enterContainer(path); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()

	m := make(map[string]any)
	for {
		tok, err := d.src.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndObject {
			return m, nil
		}
		if tok.Kind != KindKey {
			return nil, io.ErrUnexpectedEOF
		}
		if _, dup := m[tok.String]; dup && d.opts.OnDuplicate != DupIgnore {
			ce := ConstraintError{
				Code:    "duplicate_key",
				Path:    normalizePath(path),
				Message: fmt.Sprintf("key %q duplicated", tok.String),
			}
			if d.opts.OnDuplicate == DupError {
				return nil, ce
			}
			if d.opts.OnWarn != nil {
				d.opts.OnWarn(ce)
			}
		}
		childPath := joinPointer(path, tok.String)
		vt, err := d.src.NextToken()
		if err != nil {
			return nil, err
		}
		v, err := d.value(vt, childPath)
		if err != nil {
			return nil, err
		}
		m[tok.String] = v
	}
}

func (d *decoder) array(path string) (any, error) {
	if err := d.enterContainer(path); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()

	var arr []any
	for i := 0; ; i++ {
		tok, err := d.src.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndArray {
			return arr, nil
		}
		v, err := d.value(tok, joinPointer(path, strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

func normalizePath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

var pointerTokenEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func joinPointer(base, token string) string {
	return base + "/" + pointerTokenEscaper.Replace(token)
}
