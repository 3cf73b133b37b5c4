package schemaguard

import "fmt"

// notValidator implements "not": the instance must fail the subschema.
// Like every quorum keyword, it evaluates its candidate through a local,
// always-collecting reporter so the caller's fail-fast setting can never
// short-circuit the candidate evaluation itself.
type notValidator struct {
	base
	schema validator
}

func (v *notValidator) validate(loc instanceLoc, instance any, rep Reporter, patch *Patch) {
	local := &CollectingReporter{}
	v.schema.validate(loc, instance, local, &Patch{})
	if local.Empty() {
		rep.Report(v.issueAt(loc, "not", CodeSchemaViolation, "instance must not validate against the \"not\" schema"))
	}
}

// allOfValidator implements "allOf": the instance must satisfy every
// branch. Each branch's own issues are nested under one reported Issue per
// failing branch so a caller can see exactly which branches failed and why.
type allOfValidator struct {
	base
	branches []validator
}

func (v *allOfValidator) validate(loc instanceLoc, instance any, rep Reporter, patch *Patch) {
	for i, branch := range v.branches {
		local := &CollectingReporter{}
		branch.validate(loc, instance, local, patch)
		if !local.Empty() {
			issue := v.issueAt(loc, "allOf", CodeSchemaViolation, fmt.Sprintf("branch %d of \"allOf\" failed", i))
			issue.Nested = local.Issues
			rep.Report(issue)
		}
	}
}

// anyOfValidator implements "anyOf": the instance must satisfy at least
// one branch. Default-value patches are taken only from the first branch
// that succeeds.
type anyOfValidator struct {
	base
	branches []validator
}

func (v *anyOfValidator) validate(loc instanceLoc, instance any, rep Reporter, patch *Patch) {
	nested := make(Issues, 0, len(v.branches))
	for i, branch := range v.branches {
		local := &CollectingReporter{}
		branchPatch := &Patch{}
		branch.validate(loc, instance, local, branchPatch)
		if local.Empty() {
			*patch = append(*patch, *branchPatch...)
			return
		}
		issue := v.issueAt(loc, "anyOf", CodeSchemaViolation, fmt.Sprintf("branch %d of \"anyOf\" failed", i))
		issue.Nested = local.Issues
		nested = append(nested, issue)
	}
	issue := v.issueAt(loc, "anyOf", CodeSchemaViolation, "instance matched none of the \"anyOf\" branches")
	issue.Nested = nested
	rep.Report(issue)
}

// oneOfValidator implements "oneOf": the instance must satisfy exactly one
// branch. Every branch is scored before a verdict is reached, since an
// ambiguity report needs the true count of matching branches, not just the
// fact that a second one was found.
type oneOfValidator struct {
	base
	branches []validator
}

func (v *oneOfValidator) validate(loc instanceLoc, instance any, rep Reporter, patch *Patch) {
	matched := 0
	var matchedPatch *Patch
	var failures Issues
	for i, branch := range v.branches {
		local := &CollectingReporter{}
		branchPatch := &Patch{}
		branch.validate(loc, instance, local, branchPatch)
		if local.Empty() {
			matched++
			if matchedPatch == nil {
				matchedPatch = branchPatch
			}
			continue
		}
		issue := v.issueAt(loc, "oneOf", CodeSchemaViolation, fmt.Sprintf("branch %d of \"oneOf\" failed", i))
		issue.Nested = local.Issues
		failures = append(failures, issue)
	}
	switch matched {
	case 1:
		*patch = append(*patch, *matchedPatch...)
	case 0:
		issue := v.issueAt(loc, "oneOf", CodeSchemaViolation, "instance matched none of the \"oneOf\" branches")
		issue.Nested = failures
		rep.Report(issue)
	default:
		rep.Report(v.issueAt(loc, "oneOf", CodeSchemaViolation, fmt.Sprintf("%d subschemas matched, but exactly one is required to match", matched)))
	}
}

// ifThenElseValidator implements "if"/"then"/"else". The "if" branch's own
// issues are always discarded, win or lose; it exists purely to select
// between "then" and "else".
type ifThenElseValidator struct {
	base
	ifSchema   validator
	thenSchema validator
	elseSchema validator
}

func (v *ifThenElseValidator) validate(loc instanceLoc, instance any, rep Reporter, patch *Patch) {
	local := &CollectingReporter{}
	v.ifSchema.validate(loc, instance, local, &Patch{})
	if local.Empty() {
		if v.thenSchema != nil {
			v.thenSchema.validate(loc, instance, rep, patch)
		}
		return
	}
	if v.elseSchema != nil {
		v.elseSchema.validate(loc, instance, rep, patch)
	}
}
