package schemaguard

// refValidator implements "$ref". Its target is nil until the owning
// registry is frozen, since $ref is routinely a forward or self reference.
type refValidator struct {
	base
	target validator
}

func (v *refValidator) validate(loc instanceLoc, instance any, rep Reporter, patch *Patch) {
	v.target.validate(loc, instance, rep, patch)
}

func (v *refValidator) defaultValue() (any, bool) {
	if v.target == nil {
		return nil, false
	}
	return v.target.defaultValue()
}
