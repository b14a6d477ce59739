package router

import "github.com/trailmap/router/radix"

// Destination binds an opaque payload to one or more parsed Routes.
// Index is assigned by the Router at registration time: it is dense,
// zero-based, and stable across the Destination's lifetime — it is the
// value Match.DestinationIndex reports back.
type Destination struct {
	Index   uint32
	Routes  []radix.Route
	Payload any
}
