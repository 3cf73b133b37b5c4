package schemaguard

import "fmt"

// itemsValidator implements "items"/"additionalItems". itemsList is nil
// when "items" was a single schema applied uniformly to every element; in
// that case additional has no effect and is left nil.
type itemsValidator struct {
	base
	single     validator   // "items" given as one schema
	itemsList  []validator // "items" given as a tuple of schemas
	additional validator   // "additionalItems", paired only with itemsList
}

func (v *itemsValidator) validate(loc instanceLoc, instance any, rep Reporter, patch *Patch) {
	arr, ok := instance.([]any)
	if !ok {
		return
	}
	if v.single != nil {
		for i, elem := range arr {
			v.single.validate(loc.Index(i), elem, rep, patch)
		}
		return
	}
	for i, elem := range arr {
		if i < len(v.itemsList) {
			v.itemsList[i].validate(loc.Index(i), elem, rep, patch)
			continue
		}
		if v.additional != nil {
			v.additional.validate(loc.Index(i), elem, rep, patch)
		}
	}
}

// arrayLengthValidator implements "minItems"/"maxItems".
type arrayLengthValidator struct {
	base
	hasMin, hasMax bool
	min, max       int
}

func (v *arrayLengthValidator) validate(loc instanceLoc, instance any, rep Reporter, patch *Patch) {
	arr, ok := instance.([]any)
	if !ok {
		return
	}
	n := len(arr)
	if v.hasMin && n < v.min {
		rep.Report(v.issueAt(loc, "minItems", CodeTooShort, fmt.Sprintf("array has %d items, fewer than the minimum %d", n, v.min)))
	}
	if v.hasMax && n > v.max {
		rep.Report(v.issueAt(loc, "maxItems", CodeTooLong, fmt.Sprintf("array has %d items, more than the maximum %d", n, v.max)))
	}
}

// uniqueItemsValidator implements "uniqueItems": any number of duplicate
// elements produces exactly one reported issue, not one per duplicate.
type uniqueItemsValidator struct {
	base
}

func (v *uniqueItemsValidator) validate(loc instanceLoc, instance any, rep Reporter, patch *Patch) {
	arr, ok := instance.([]any)
	if !ok {
		return
	}
	for i := 0; i < len(arr); i++ {
		for j := i + 1; j < len(arr); j++ {
			if deepEqual(arr[i], arr[j]) {
				rep.Report(v.issueAt(loc, "uniqueItems", CodeSchemaViolation, fmt.Sprintf("items at index %d and %d are duplicates", i, j)))
				return
			}
		}
	}
}

// containsValidator implements "contains": at least one element must
// satisfy the subschema. Evaluation stops at the first success; if none
// succeeds, every element's collected issues are reported as nested context
// on the single "contains" issue.
type containsValidator struct {
	base
	schema validator
}

func (v *containsValidator) validate(loc instanceLoc, instance any, rep Reporter, patch *Patch) {
	arr, ok := instance.([]any)
	if !ok {
		return
	}
	var nested Issues
	for i, elem := range arr {
		local := &CollectingReporter{}
		v.schema.validate(loc.Index(i), elem, local, &Patch{})
		if local.Empty() {
			return
		}
		nested = append(nested, local.Issues...)
	}
	issue := v.issueAt(loc, "contains", CodeSchemaViolation, "no item matches the \"contains\" schema")
	issue.Nested = nested
	rep.Report(issue)
}
