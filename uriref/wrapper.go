// Package uriref implements the absolute-URI-plus-fragment value type the
// schema registry and builder use to name every subschema they produce.
//
// The fragment is either a JSON Pointer (it starts with "/") or a plain-name
// identifier (an anchor such as "#foo" from an "$id"). The two behave
// differently under Append: a JSON-Pointer fragment grows as the builder
// descends into the schema tree, while a plain-name fragment is opaque and
// Append leaves it untouched, matching the way "$id" boundaries stop pointer
// accumulation in draft-07.
package uriref

import (
	"net/url"
	"strconv"
	"strings"
)

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// EscapeToken escapes a single JSON-Pointer reference token per RFC 6901.
func EscapeToken(s string) string { return pointerEscaper.Replace(s) }

// Wrapper pairs an absolute base URI with a fragment that is either a JSON
// Pointer or a plain-name identifier.
type Wrapper struct {
	base       *url.URL // always has Fragment == ""
	identifier string   // raw (unescaped at the URI-percent-encoding level) fragment
}

// Parse parses raw as a URI and splits off its fragment.
func Parse(raw string) (Wrapper, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Wrapper{}, err
	}
	ident := u.Fragment
	u.Fragment = ""
	u.RawFragment = ""
	return Wrapper{base: u, identifier: ident}, nil
}

// MustParse is like Parse but panics on error; useful for literal URIs
// known at init time (e.g. the synthetic base URI assigned to a schema
// document with no "$id").
func MustParse(raw string) Wrapper {
	w, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return w
}

// HasPointer reports whether the fragment is a JSON Pointer (possibly the
// empty pointer, which also starts a pointer chain at the document root).
func (w Wrapper) HasPointer() bool { return strings.HasPrefix(w.identifier, "/") || w.identifier == "" }

// HasIdentifier reports whether the fragment is a non-empty plain-name
// anchor, as opposed to a JSON Pointer.
func (w Wrapper) HasIdentifier() bool {
	return w.identifier != "" && !strings.HasPrefix(w.identifier, "/")
}

// Resolve resolves w against base the way a relative "$id" or "$ref" target
// resolves against its enclosing schema's base URI: the authority/path
// components are resolved per RFC 3986, but w's own fragment is always kept
// (a $ref's fragment is never inherited from the base it resolves against).
func (w Wrapper) Resolve(base Wrapper) Wrapper {
	// A reference with no scheme, authority, path or query (such as
	// "#/definitions/x") names the base document itself. Some Go releases'
	// ResolveReference drop an opaque base such as "urn:a:b" in that case,
	// so the base is copied as-is instead.
	if *w.base == (url.URL{}) {
		same := *base.base
		return Wrapper{base: &same, identifier: w.identifier}
	}
	resolved := base.base.ResolveReference(w.base)
	return Wrapper{base: resolved, identifier: w.identifier}
}

// Append extends a JSON-Pointer fragment with one more reference token
// (an object's property name). It is a no-op when the fragment is a
// plain-name identifier.
func (w Wrapper) Append(field string) Wrapper {
	if w.HasIdentifier() {
		return w
	}
	return Wrapper{base: w.base, identifier: w.identifier + "/" + EscapeToken(field)}
}

// AppendIndex extends a JSON-Pointer fragment with an array index. It is a
// no-op when the fragment is a plain-name identifier.
func (w Wrapper) AppendIndex(i int) Wrapper {
	return w.Append(strconv.Itoa(i))
}

// Identifier returns the raw fragment (without a leading "#").
func (w Wrapper) Identifier() string { return w.identifier }

// String renders the absolute URI with its fragment, e.g.
// "https://example.com/schema.json#/properties/name".
func (w Wrapper) String() string {
	u := *w.base
	u.Fragment = w.identifier
	return u.String()
}

// Equal reports whether two wrappers name the same location.
func (w Wrapper) Equal(other Wrapper) bool { return w.String() == other.String() }
