package schemaguard

// subschema is the validator built for one schema object: the ordered set
// of keyword validators the builder found present on it. It is the Go
// shape of spec.md's ValidatorNode whenever that node is not a bare
// boolean schema or a $ref.
type subschema struct {
	base
	keywords []validator
}

func (s *subschema) validate(loc instanceLoc, instance any, rep Reporter, patch *Patch) {
	for _, kw := range s.keywords {
		if rep.FailFast() && !rep.Empty() {
			return
		}
		kw.validate(loc, instance, rep, patch)
	}
}

// alwaysValid implements the boolean schema `true`: every instance passes.
type alwaysValid struct{ base }

func (alwaysValid) validate(instanceLoc, any, Reporter, *Patch) {}

// alwaysInvalid implements the boolean schema `false`: every instance
// fails, unconditionally.
type alwaysInvalid struct{ base }

func (v alwaysInvalid) validate(loc instanceLoc, instance any, rep Reporter, patch *Patch) {
	rep.Report(v.issueAt(loc, "", CodeSchemaViolation, "schema is `false`: no instance satisfies it"))
}
