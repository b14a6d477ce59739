package router

import "github.com/trailmap/router/radix"

// Option configures a Router at construction time. The Router has a
// hard build/match lifecycle split (see package doc), so configuration
// is a one-shot functional-options pass rather than public struct
// fields that could be mutated after routes are registered.
type Option func(*Router)

// WithDefaultUntil sets the delimiter byte a parameter without an
// explicit delimiter falls back to. The default is '/'.
func WithDefaultUntil(b byte) Option {
	return func(r *Router) { r.defaultUntil = b }
}

// WithOptionalParameters enables or disables the `{name?}` optional
// parameter expansion performed by Add (see doc comment on Add). It is
// enabled by default.
func WithOptionalParameters(enabled bool) Option {
	return func(r *Router) { r.expandOptional = enabled }
}

func defaultRouter() *Router {
	return &Router{
		tree:           radix.NewTree(),
		defaultUntil:   radix.DefaultUntil,
		expandOptional: true,
	}
}
