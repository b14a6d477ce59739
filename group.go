package router

// Group wraps a literal pattern prefix ahead of a parent Router's Add.
// It has no matching semantics of its own — it is pure pattern-string
// assembly, grounded on the teacher's Group type but stripped of the
// HTTP-method shortcuts and middleware chain that have no analog in a
// payload-opaque core (see DESIGN.md).
type Group struct {
	router *Router
	prefix string
}

// Group returns a Group rooted at r with the given literal prefix.
func (r *Router) Group(prefix string) *Group {
	return &Group{router: r, prefix: prefix}
}

// Group returns a nested Group whose prefix is g's prefix followed by
// the given one.
func (g *Group) Group(prefix string) *Group {
	return &Group{router: g.router, prefix: g.prefix + prefix}
}

// Add prepends g's prefix to pattern (or to each pattern in a
// []string) and delegates to the parent Router's Add.
func (g *Group) Add(pattern any, payload any) (uint32, error) {
	patterns, err := normalizePatterns(pattern)
	if err != nil {
		return 0, err
	}

	prefixed := make([]string, len(patterns))
	for i, p := range patterns {
		prefixed[i] = g.prefix + p
	}

	if len(prefixed) == 1 {
		return g.router.Add(prefixed[0], payload)
	}
	return g.router.Add(prefixed, payload)
}
