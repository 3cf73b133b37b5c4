package schemaguard

import (
	"strconv"
	"strings"
)

// instanceLoc builds JSON Pointer instance locations in a chain-safe way
// while the validator descends into the instance tree. Each Field/Index
// call returns a new immutable value so sibling branches (e.g. the k
// properties of an object, or allOf's parallel branches) never see each
// other's mutations.
type instanceLoc struct {
	parts []string
}

func rootLoc() instanceLoc { return instanceLoc{} }

func (p instanceLoc) Field(name string) instanceLoc {
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	next := make([]string, len(p.parts)+1)
	copy(next, p.parts)
	next[len(p.parts)] = esc
	return instanceLoc{parts: next}
}

func (p instanceLoc) Index(i int) instanceLoc {
	return p.Field(strconv.Itoa(i))
}

func (p instanceLoc) Pointer() string {
	if len(p.parts) == 0 {
		return ""
	}
	return "/" + strings.Join(p.parts, "/")
}
