package schemaguard

// Reporter is the sink every keyword validator writes its failures to.
// Quorum keywords (allOf/anyOf/oneOf/not/contains/additionalProperties)
// always validate their candidate branches through a local, always-
// collecting reporter first, then decide — based on how many issues that
// local reporter accumulated — whether to report anything to the real
// reporter at all.
type Reporter interface {
	Report(Issue)
	// Empty reports whether no issues have been recorded yet.
	Empty() bool
	// FailFast reports whether the caller should stop descending as soon
	// as one issue has been recorded.
	FailFast() bool
}

// CollectingReporter buffers every issue it receives.
type CollectingReporter struct {
	Issues Issues
}

func (r *CollectingReporter) Report(i Issue) { r.Issues = append(r.Issues, i) }
func (r *CollectingReporter) Empty() bool    { return len(r.Issues) == 0 }
func (r *CollectingReporter) FailFast() bool { return false }

// FailFastReporter keeps only the first issue reported and signals the
// caller to stop as soon as it has one.
type FailFastReporter struct {
	Issue Issue
	has   bool
}

func (r *FailFastReporter) Report(i Issue) {
	if !r.has {
		r.Issue = i
		r.has = true
	}
}
func (r *FailFastReporter) Empty() bool    { return !r.has }
func (r *FailFastReporter) FailFast() bool { return true }

func (r *FailFastReporter) issues() Issues {
	if !r.has {
		return nil
	}
	return Issues{r.Issue}
}

func newReporter(cfg validateConfig) Reporter {
	if cfg.failFast {
		return &FailFastReporter{}
	}
	return &CollectingReporter{}
}

func reporterIssues(r Reporter) Issues {
	switch t := r.(type) {
	case *CollectingReporter:
		return t.Issues
	case *FailFastReporter:
		return t.issues()
	default:
		return nil
	}
}
