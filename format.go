package schemaguard

import (
	"sync"

	"github.com/oknoso/schemaguard/format"
)

// CheckFunc reports whether a string instance satisfies a named format.
type CheckFunc func(s string) bool

// FormatRegistry maps a draft-07 "format" name to its checker. It is
// mutable so callers can add or override checkers per spec.md's
// pluggability requirement for this component.
type FormatRegistry struct {
	mu    sync.RWMutex
	funcs map[string]CheckFunc
}

// NewFormatRegistry returns an empty registry.
func NewFormatRegistry() *FormatRegistry {
	return &FormatRegistry{funcs: make(map[string]CheckFunc)}
}

// Register installs or overrides the checker for name.
func (r *FormatRegistry) Register(name string, fn CheckFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[name] = fn
}

// Lookup returns the checker for name, if any.
func (r *FormatRegistry) Lookup(name string) (CheckFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[name]
	return fn, ok
}

var defaultFormats = buildDefaultFormats()

func buildDefaultFormats() *FormatRegistry {
	r := NewFormatRegistry()
	r.Register("date-time", format.DateTime)
	r.Register("date", format.Date)
	r.Register("time", format.Time)
	r.Register("email", format.Email)
	r.Register("hostname", format.Hostname)
	r.Register("ipv4", format.IPv4)
	r.Register("ipv6", format.IPv6)
	r.Register("regex", format.Regex)
	return r
}

// DefaultFormats returns a fresh registry seeded with the built-in
// date-time/date/time/email/hostname/ipv4/ipv6/regex checkers.
func DefaultFormats() *FormatRegistry {
	r := NewFormatRegistry()
	defaultFormats.mu.RLock()
	for name, fn := range defaultFormats.funcs {
		r.funcs[name] = fn
	}
	defaultFormats.mu.RUnlock()
	return r
}
