package schemaguard

import "fmt"

// registry maps absolute schema URIs (the string form of a uriref.Wrapper
// with no JSON-pointer fragment semantics baked in, $id-relative or
// pointer-derived alike) to the validator built for that location. It
// exists for exactly as long as a single Compile call: once frozen it is
// handed off, read-only, to the *Schema it backs.
type registry struct {
	nodes   map[string]validator
	pending []pendingRef
	frozen  bool
}

type pendingRef struct {
	targetURI string
	node      *refValidator
}

func newRegistry() *registry {
	return &registry{nodes: make(map[string]validator)}
}

// register records v as the validator for uri. A second registration of
// the same URI is an $id collision and is rejected.
func (reg *registry) register(uri string, v validator) error {
	if reg.frozen {
		panic("schemaguard: register called on a frozen registry")
	}
	if _, exists := reg.nodes[uri]; exists {
		return fmt.Errorf("schemaguard: duplicate schema location %q (id collision)", uri)
	}
	reg.nodes[uri] = v
	return nil
}

// deferRef records that node's target will not be known until every
// schema in the document has been registered.
func (reg *registry) deferRef(targetURI string, node *refValidator) {
	reg.pending = append(reg.pending, pendingRef{targetURI: targetURI, node: node})
}

// freeze resolves every deferred $ref against the now-complete node map.
// An unresolvable $ref is a compile-time error, never a validate-time one.
func (reg *registry) freeze() error {
	for _, p := range reg.pending {
		target, ok := reg.nodes[p.targetURI]
		if !ok {
			return fmt.Errorf("schemaguard: unresolved $ref %q", p.targetURI)
		}
		p.node.target = target
	}
	reg.frozen = true
	return nil
}

func (reg *registry) lookup(uri string) (validator, bool) {
	v, ok := reg.nodes[uri]
	return v, ok
}
