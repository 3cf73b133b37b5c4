package schemaguard

// PatchOp is a single JSON-Patch (RFC 6902) style operation. The validator
// only ever emits "add" operations, one per default value it materializes
// for a missing object property; it never repairs or rewrites existing
// instance data.
type PatchOp struct {
	Op    string
	Path  string
	Value any
}

// Patch is an ordered sequence of default-value insertions discovered while
// validating an instance. It is a sibling output of validation, not a
// transformation of the source: callers apply it themselves if they want a
// defaulted copy of the instance.
type Patch []PatchOp

func (p *Patch) add(path string, value any) {
	*p = append(*p, PatchOp{Op: "add", Path: path, Value: value})
}
