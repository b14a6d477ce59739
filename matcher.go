package router

import (
	"github.com/savsgio/gotils/strconv"
	"github.com/trailmap/router/radix"
)

// Match is the result of a successful Matcher.Match call.
type Match struct {
	Payload          any
	DestinationIndex uint32
	Params           [][]byte
}

// ParamString returns params[i] as a string without copying, using the
// same zero-copy conversion the teacher applies to ctx.Path()/
// ctx.Method() on its own hot path.
func (m Match) ParamString(i int) string {
	return strconv.B2S(m.Params[i])
}

// Matcher is the compiled, immutable artifact produced by
// Router.Compile. It has no mutable internal state and is safe for
// simultaneous use from any number of goroutines without coordination
// (spec §5).
type Matcher struct {
	tree         *radix.Tree
	destinations []*Destination
}

// Match answers, for input (typically "METHOD /path"), which registered
// destination's payload it resolves to and which parameter spans it
// captured, in pattern order. It never allocates on a miss that does
// not enter a parametric branch, never panics, and always terminates.
func (m *Matcher) Match(input []byte) (Match, bool) {
	idx, params, ok := m.tree.Match(input)
	if !ok {
		return Match{}, false
	}
	return Match{
		Payload:          m.destinations[idx].Payload,
		DestinationIndex: idx,
		Params:           params,
	}, true
}

// Destinations returns the compiled destinations in insertion order.
func (m *Matcher) Destinations() []*Destination {
	out := make([]*Destination, len(m.destinations))
	copy(out, m.destinations)
	return out
}

// MaxParams returns the greatest number of parameters any single
// registered route can capture. A caller that wants to presize its own
// params buffer (e.g. to reuse one across many Match calls) sizes it
// to this; Match itself does not presize, since any fixed capacity
// greater than zero would allocate on every call, including the
// exact-literal misses spec §8 property 7 requires to allocate nothing.
func (m *Matcher) MaxParams() int {
	return m.tree.MaxParams()
}
