package router

import "strings"

// expandOptionalPattern expands a pattern containing a single `{name?}`
// optional parameter into two patterns: one with the parameter present
// (the `?` stripped), and one with the parameter and the single
// delimiter byte immediately preceding it removed entirely.
//
// Patterns with no `?}` are returned unchanged as a single-element
// slice. This is adapted from the teacher's getOptionalPaths, which
// performs the same expansion for fasthttp-router's `{name?}` dialect
// (see DESIGN.md).
func expandOptionalPattern(pattern string) []string {
	idx := strings.Index(pattern, "?}")
	if idx < 0 {
		return []string{pattern}
	}

	open := strings.LastIndex(pattern[:idx], "{")
	if open < 0 {
		return []string{pattern}
	}

	withParam := pattern[:idx] + pattern[idx+1:] // drop the '?', keep the param

	before := pattern[:open]
	after := pattern[idx+2:]
	if len(before) > 0 {
		before = before[:len(before)-1] // drop the delimiter right before '{'
	}
	withoutParam := before + after

	return []string{withoutParam, withParam}
}
