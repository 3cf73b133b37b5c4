package schemaguard

import "github.com/oknoso/schemaguard/uriref"

// validator is the tagged-variant interface every keyword validator
// implements. It is the Go realization of spec.md's ValidatorNode: built
// once by the schema builder, never mutated afterward, and addressed
// through ordinary pointers rather than an arena — Go's garbage collector
// already reclaims the cyclic graphs $ref can produce, so the arena/weak-
// reference scheme a non-GC'd language needs is unnecessary here.
type validator interface {
	// validate checks instance (located at loc within the document being
	// validated) against this node, reporting any failures to rep and
	// appending any default-value insertions to patch.
	validate(loc instanceLoc, instance any, rep Reporter, patch *Patch)
	// defaultValue returns the keyword's declared "default", if any.
	defaultValue() (any, bool)
}

// base is embedded by every concrete validator to carry the location that
// defined it and an optional default value.
type base struct {
	loc        uriref.Wrapper
	def        any
	hasDefault bool
}

func (b *base) defaultValue() (any, bool) { return b.def, b.hasDefault }

// issueAt builds an Issue anchored at the current instance location and
// this node's absolute schema location, for the given keyword.
func (b *base) issueAt(loc instanceLoc, keyword, code, msg string) Issue {
	kwLoc := b.loc
	if keyword != "" {
		kwLoc = kwLoc.Append(keyword)
	}
	return Issue{
		InstanceLocation:        loc.Pointer(),
		AbsoluteKeywordLocation: kwLoc.String(),
		Keyword:                 keyword,
		Code:                    code,
		Message:                 msg,
	}
}
