package schemaguard

// Validate checks instance against the compiled schema, returning every
// issue found (or just the first, under WithFailFast) plus a Patch of any
// default values the schema declared for properties missing from
// instance. A non-nil error is only ever a usage error, never a reflection
// of instance failing validation — instance failing validation is
// reported through the returned Issues, not through error.
func (s *Schema) Validate(instance any, opts ...ValidateOption) (Issues, Patch, error) {
	cfg := newValidateConfig(opts)
	rep := newReporter(cfg)
	var patch Patch
	s.root.validate(rootLoc(), instance, rep, &patch)
	return reporterIssues(rep), patch, nil
}

// Valid is a convenience wrapper around Validate for callers that only
// care whether instance passes, not why it failed.
func (s *Schema) Valid(instance any) bool {
	issues, _, _ := s.Validate(instance, WithFailFast(true))
	return len(issues) == 0
}
