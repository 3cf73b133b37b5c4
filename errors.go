package schemaguard

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes for programmatic matching. The Keyword field on Issue carries
// the exact schema keyword that produced the issue; these codes group
// keywords into the coarser categories callers usually branch on.
const (
	CodeInvalidType        = "invalid_type"
	CodeRequired           = "required"
	CodeAdditionalProperty = "additional_property"
	CodeDuplicateKey       = "duplicate_key"
	CodeTooSmall           = "too_small"
	CodeTooBig             = "too_big"
	CodeTooShort           = "too_short"
	CodeTooLong            = "too_long"
	CodePattern            = "pattern"
	CodeInvalidEnum        = "invalid_enum"
	CodeInvalidConst       = "invalid_const"
	CodeInvalidFormat      = "invalid_format"
	CodeParseError         = "parse_error"
	CodeTruncated          = "truncated"
	// CodeSchemaViolation is the fallback for keywords whose failure mode
	// doesn't fit a narrower category above (not/allOf/anyOf/oneOf,
	// contains, uniqueItems, multipleOf, and the `false` schema).
	// Keyword distinguishes which one fired.
	CodeSchemaViolation = "schema_violation"
)

// Issue is a single entry of the structured validation output the validator
// produces for a failing instance. It mirrors the "instance_location /
// message / keyword / absolute_keyword_location / nested" shape produced by
// walking the validator tree, extended with a coarse Code for callers that
// want to branch without string-matching Keyword, and a few ambient fields
// (Offset, Cause) useful for diagnostics.
type Issue struct {
	// InstanceLocation is a JSON Pointer into the instance being validated
	// (for example "/items/2/price").
	InstanceLocation string
	// AbsoluteKeywordLocation is a JSON Pointer into the schema, composed
	// with the absolute URI of the subschema that owns Keyword.
	AbsoluteKeywordLocation string
	// Keyword is the exact schema keyword that rejected the instance
	// ("type", "required", "additionalProperties", "oneOf", ...).
	Keyword string
	Code    string
	Message string
	// Params carries structured parameters (e.g. {"min":1,"max":10,"got":42})
	// for callers that want to render their own message.
	Params map[string]any
	// Cause is an optional underlying error (e.g. a regexp compile failure).
	Cause error
	// Offset is the 1-based byte position in the input source where the
	// loader knows it; it is 0 when unknown, as on every validation issue.
	Offset int64
	// Nested carries the sub-errors aggregated by quorum keywords
	// (allOf/anyOf/oneOf/not/contains/additionalProperties).
	Nested Issues
}

// Issues is a collection of validation issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Keyword, it.InstanceLocation)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice
// when needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
