package schemaguard

import (
	"fmt"
	"regexp"
)

// patternPropEntry pairs a compiled patternProperties regex with the
// subschema that applies to every key it matches.
type patternPropEntry struct {
	re     *regexp.Regexp
	schema validator
}

// propertiesValidator implements "properties", "patternProperties" and
// "additionalProperties" together, since additionalProperties must know
// which keys the other two already claimed. A nil additional field means
// additionalProperties was absent and every leftover key is accepted;
// additionalProperties: true compiles to alwaysValid and false to
// alwaysInvalid.
type propertiesValidator struct {
	base
	props      map[string]validator
	patterns   []patternPropEntry
	additional validator
}

func (v *propertiesValidator) validate(loc instanceLoc, instance any, rep Reporter, patch *Patch) {
	obj, ok := instance.(map[string]any)
	if !ok {
		return
	}
	for key, val := range obj {
		matched := false
		if schema, ok := v.props[key]; ok {
			schema.validate(loc.Field(key), val, rep, patch)
			matched = true
		}
		for _, pp := range v.patterns {
			if pp.re.MatchString(key) {
				pp.schema.validate(loc.Field(key), val, rep, patch)
				matched = true
			}
		}
		if !matched && v.additional != nil {
			local := &CollectingReporter{}
			v.additional.validate(loc.Field(key), val, local, patch)
			if !local.Empty() {
				issue := v.issueAt(loc.Field(key), "additionalProperties", CodeAdditionalProperty, fmt.Sprintf("Additional property %q found but was invalid.", key))
				issue.Nested = local.Issues
				rep.Report(issue)
			}
		}
	}
	for key, schema := range v.props {
		if _, present := obj[key]; present {
			continue
		}
		if def, ok := schema.defaultValue(); ok {
			patch.add(loc.Field(key).Pointer(), def)
		}
	}
}

// propertyNamesValidator implements "propertyNames": every object key,
// treated as a string instance, must satisfy the subschema.
type propertyNamesValidator struct {
	base
	schema validator
}

func (v *propertyNamesValidator) validate(loc instanceLoc, instance any, rep Reporter, patch *Patch) {
	obj, ok := instance.(map[string]any)
	if !ok {
		return
	}
	for key := range obj {
		v.schema.validate(loc.Field(key), key, rep, &Patch{})
	}
}

// objectLengthValidator implements "minProperties"/"maxProperties".
type objectLengthValidator struct {
	base
	hasMin, hasMax bool
	min, max       int
}

func (v *objectLengthValidator) validate(loc instanceLoc, instance any, rep Reporter, patch *Patch) {
	obj, ok := instance.(map[string]any)
	if !ok {
		return
	}
	n := len(obj)
	if v.hasMin && n < v.min {
		rep.Report(v.issueAt(loc, "minProperties", CodeTooShort, fmt.Sprintf("object has %d properties, fewer than the minimum %d", n, v.min)))
	}
	if v.hasMax && n > v.max {
		rep.Report(v.issueAt(loc, "maxProperties", CodeTooLong, fmt.Sprintf("object has %d properties, more than the maximum %d", n, v.max)))
	}
}

// dependency is one entry of "dependencies": either a subschema applied
// when the triggering property is present, or a plain list of property
// names that must also be present.
type dependency struct {
	schema validator // non-nil for schema-form dependencies
	names  []string  // non-nil for property-form dependencies
}

// dependenciesValidator implements "dependencies".
type dependenciesValidator struct {
	base
	deps map[string]dependency
}

func (v *dependenciesValidator) validate(loc instanceLoc, instance any, rep Reporter, patch *Patch) {
	obj, ok := instance.(map[string]any)
	if !ok {
		return
	}
	for trigger, dep := range v.deps {
		if _, present := obj[trigger]; !present {
			continue
		}
		if dep.schema != nil {
			dep.schema.validate(loc, instance, rep, patch)
			continue
		}
		for _, name := range dep.names {
			if _, present := obj[name]; !present {
				rep.Report(v.issueAt(loc, "dependencies", CodeRequired, fmt.Sprintf("property %q requires %q to also be present", trigger, name)))
			}
		}
	}
}
