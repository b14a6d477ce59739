// Package router builds an immutable matcher from a set of route
// patterns, each bound to an opaque payload, and answers — for a single
// input byte slice, typically "METHOD /path" — which payload a pattern
// resolves it to and which parameter spans it captured along the way.
//
// # Build and match phases
//
// A Router is built up with Add and AddDestination, then turned into a
// Matcher with Compile. The Router is exclusively owned by one actor
// during the build phase; the Matcher it produces is immutable and safe
// for unsynchronized concurrent use from any number of goroutines.
//
// # Pattern grammar
//
//	pattern := step+
//	step    := exact | param
//	exact   := any run of bytes not containing '{'
//	param   := '{' name [ ':' regex ] [ ':' delim ] '}'
//	         | '{' name '::' delim '}'
//	name    := [A-Za-z_][A-Za-z0-9_]*
//	delim   := a single literal byte, or the escape \n denoting the
//	           end-of-input sentinel (not the newline byte)
//
// A parameter with no regex and no explicit delimiter consumes input up
// to the router's default delimiter (a '/' unless WithDefaultUntil was
// given). A parameter whose delimiter is the end-of-input sentinel
// consumes all remaining input and must be the last step of its route.
//
//	r := router.New()
//	r.Add("GET /users/{id}", handlerA)
//	r.Add("GET /users/{id:[0-9]+}", handlerB) // tried before the one above
//	r.Add("GET /static/{path::\n}", handlerC) // rest parameter
//
//	m, err := r.Compile()
//	match, ok := m.Match([]byte("GET /users/42"))
package router
