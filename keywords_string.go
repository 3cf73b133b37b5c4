package schemaguard

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/oknoso/schemaguard/internal/textcodec"
)

// stringLengthValidator implements "minLength"/"maxLength", measured in
// Unicode codepoints via internal/textcodec rather than UTF-16 code units
// or raw bytes, matching draft-07's "the length of a string instance is
// defined as the number of its characters" wording.
type stringLengthValidator struct {
	base
	hasMin, hasMax bool
	min, max       int
}

func (v *stringLengthValidator) validate(loc instanceLoc, instance any, rep Reporter, patch *Patch) {
	s, ok := instance.(string)
	if !ok {
		return
	}
	n, err := textcodec.CodepointCount(s)
	if err != nil {
		rep.Report(v.issueAt(loc, "minLength", CodeParseError, "string is not valid UTF-8"))
		return
	}
	if v.hasMin && n < v.min {
		rep.Report(v.issueAt(loc, "minLength", CodeTooShort, fmt.Sprintf("string has %d characters, fewer than the minimum %d", n, v.min)))
	}
	if v.hasMax && n > v.max {
		rep.Report(v.issueAt(loc, "maxLength", CodeTooLong, fmt.Sprintf("string has %d characters, more than the maximum %d", n, v.max)))
	}
}

// patternValidator implements "pattern" using RE2 via regexp, the same
// tradeoff the format checkers document for "format": "regex".
type patternValidator struct {
	base
	re *regexp.Regexp
}

func (v *patternValidator) validate(loc instanceLoc, instance any, rep Reporter, patch *Patch) {
	s, ok := instance.(string)
	if !ok {
		return
	}
	if !v.re.MatchString(s) {
		rep.Report(v.issueAt(loc, "pattern", CodePattern, fmt.Sprintf("string does not match pattern %q", v.re.String())))
	}
}

// formatValidator implements "format" by dispatching to whichever
// checker the active FormatRegistry has registered under the keyword's
// name; an unrecognized format name is not an error, it is simply skipped.
type formatValidator struct {
	base
	name     string
	registry *FormatRegistry
}

func (v *formatValidator) validate(loc instanceLoc, instance any, rep Reporter, patch *Patch) {
	s, ok := instance.(string)
	if !ok {
		return
	}
	check, ok := v.registry.Lookup(v.name)
	if !ok {
		return
	}
	if !check(s) {
		rep.Report(v.issueAt(loc, "format", CodeInvalidFormat, fmt.Sprintf("string does not satisfy format %q", v.name)))
	}
}

// contentEncodingValidator implements "contentEncoding". Only "base64" is
// checked; any other non-empty encoding name is unsupported and reported
// rather than silently skipped.
type contentEncodingValidator struct {
	base
	encoding string
}

func (v *contentEncodingValidator) validate(loc instanceLoc, instance any, rep Reporter, patch *Patch) {
	s, ok := instance.(string)
	if !ok {
		return
	}
	if v.encoding != "base64" {
		if v.encoding != "" {
			rep.Report(v.issueAt(loc, "contentEncoding", CodeParseError, fmt.Sprintf("unable to check for contentEncoding %q", v.encoding)))
		}
		return
	}
	if _, err := base64.StdEncoding.DecodeString(s); err != nil {
		rep.Report(v.issueAt(loc, "contentEncoding", CodeParseError, "string is not valid base64"))
	}
}

// contentMediaTypeValidator implements "contentMediaType" for
// "application/json", decoding a string through contentEncoding first when a
// sibling "contentEncoding": "base64" is also present. A byte-string
// instance is checked as-is, since its bytes are already decoded.
type contentMediaTypeValidator struct {
	base
	mediaType     string
	base64Decoded bool
}

func (v *contentMediaTypeValidator) validate(loc instanceLoc, instance any, rep Reporter, patch *Patch) {
	if v.mediaType != "application/json" {
		return
	}
	var raw []byte
	switch s := instance.(type) {
	case string:
		raw = []byte(s)
		if v.base64Decoded {
			decoded, err := base64.StdEncoding.DecodeString(s)
			if err != nil {
				return // contentEncoding already reported the decode failure
			}
			raw = decoded
		}
	case []byte:
		raw = s
	default:
		return
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		rep.Report(v.issueAt(loc, "contentMediaType", CodeParseError, "decoded content is not valid JSON"))
	}
}
