package router

import (
	"fmt"

	"github.com/trailmap/router/radix"
)

// Router is the destination registry and decision tree builder (spec
// §4.2/§4.3). It is exclusively owned by one actor during the build
// phase; it is not safe for concurrent mutation. Compile freezes it
// into an immutable Matcher.
type Router struct {
	destinations   []*Destination
	tree           *radix.Tree
	defaultUntil   byte
	expandOptional bool
	compiled       bool
}

// New returns an empty Router ready for Add/AddDestination.
func New(opts ...Option) *Router {
	r := defaultRouter()
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add parses pattern (or each of patterns, if a []string is given),
// registers a new Destination bound to payload, and returns its stable
// index. Insertion order is preserved and is the sole tiebreaker when
// two routes can both match the same input (spec §4.2).
//
// A pattern containing a parameter written `{name?}` is expanded into
// two routes — one with the parameter's segment present, one with it
// and its leading delimiter removed — unless the Router was built with
// WithOptionalParameters(false).
func (r *Router) Add(pattern any, payload any) (uint32, error) {
	if r.compiled {
		return 0, &radix.CompileError{Msg: "Add called on a compiled Router"}
	}

	patterns, err := normalizePatterns(pattern)
	if err != nil {
		return 0, err
	}

	if r.expandOptional {
		var expanded []string
		for _, p := range patterns {
			expanded = append(expanded, expandOptionalPattern(p)...)
		}
		patterns = expanded
	}

	routes := make([]radix.Route, 0, len(patterns))
	for _, p := range patterns {
		route, err := radix.Parse(p, r.defaultUntil)
		if err != nil {
			return 0, err
		}
		routes = append(routes, route)
	}

	return r.register(routes, payload)
}

// AddDestination registers a pre-built Destination's routes directly,
// skipping the parser. A fresh, dense index is still assigned — the
// Destination's own Index field (if set) is ignored.
func (r *Router) AddDestination(dest *Destination) (uint32, error) {
	if r.compiled {
		return 0, &radix.CompileError{Msg: "AddDestination called on a compiled Router"}
	}
	return r.register(dest.Routes, dest.Payload)
}

// register stages every route of a destination against the tree as one
// atomic unit (radix.Tree.AddRoutes): if any route conflicts, the tree
// is left untouched and the destination is never appended, so a failed
// Add/AddDestination truly leaves no trace — no destination reuses an
// index that was never actually registered, and no orphaned terminal
// is left pointing at a payload Match can never reach.
func (r *Router) register(routes []radix.Route, payload any) (uint32, error) {
	index := uint32(len(r.destinations))

	if err := r.tree.AddRoutes(routes, index); err != nil {
		return 0, fmt.Errorf("register destination %d: %w", index, err)
	}

	dest := &Destination{Index: index, Routes: routes, Payload: payload}
	r.destinations = append(r.destinations, dest)
	return index, nil
}

// Destinations returns the registered destinations in insertion order.
// The returned slice is a copy; mutating it does not affect the Router.
func (r *Router) Destinations() []*Destination {
	out := make([]*Destination, len(r.destinations))
	copy(out, r.destinations)
	return out
}

// Tree exposes the decision tree root for introspection (Node.Dump).
func (r *Router) Tree() *radix.Node {
	return r.tree.Root()
}

// Compile freezes the decision tree and returns an immutable Matcher.
// The Router must not be mutated (via Add/AddDestination) afterward.
func (r *Router) Compile() (*Matcher, error) {
	r.tree.Freeze()
	r.compiled = true
	return &Matcher{tree: r.tree, destinations: r.Destinations()}, nil
}

func normalizePatterns(pattern any) ([]string, error) {
	switch v := pattern.(type) {
	case string:
		return []string{v}, nil
	case []string:
		if len(v) == 0 {
			return nil, &radix.ParseError{Kind: radix.UnexpectedEndOfInput, Msg: "no patterns given"}
		}
		return v, nil
	default:
		return nil, &radix.ParseError{Kind: radix.UnexpectedEndOfInput, Msg: fmt.Sprintf("pattern must be a string or []string, got %T", v)}
	}
}
