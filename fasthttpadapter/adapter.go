// Package fasthttpadapter bridges a compiled router.Matcher into a
// fasthttp.RequestHandler. It is a thin, optional out-of-core adapter:
// the matcher core has no notion of an HTTP stack, so the adapter is
// the one place that builds its "METHOD PATH" input from a
// fasthttp.RequestCtx and invokes the payload it gets back.
package fasthttpadapter

import (
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"

	"github.com/trailmap/router"
)

// MatchUserValue is the fasthttp.RequestCtx user value key under which
// the winning router.Match (and its captured params) is stashed before
// the matched handler runs, mirroring the teacher's own
// ctx.SetUserValue(MatchedRoutePathParam, path) in router.go.
const MatchUserValue = "fasthttpadapter.match"

// Adapter wraps a compiled Matcher whose destination payloads are
// fasthttp.RequestHandler values.
type Adapter struct {
	matcher  *router.Matcher
	NotFound fasthttp.RequestHandler
}

// New returns an Adapter over matcher. If NotFound is left nil, a miss
// answers with a plain 404.
func New(matcher *router.Matcher) *Adapter {
	return &Adapter{matcher: matcher}
}

// Handler builds "METHOD PATH" from ctx.Method() and ctx.Path() in a
// pooled buffer, looks it up in the compiled Matcher, and either invokes the matched
// fasthttp.RequestHandler payload or falls through to NotFound/404.
func (a *Adapter) Handler(ctx *fasthttp.RequestCtx) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.Write(ctx.Method())
	buf.WriteByte(' ')
	buf.Write(ctx.Path())

	match, ok := a.matcher.Match(buf.B)
	if !ok {
		a.notFound(ctx)
		return
	}

	handler, ok := match.Payload.(fasthttp.RequestHandler)
	if !ok {
		a.notFound(ctx)
		return
	}

	ctx.SetUserValue(MatchUserValue, match)
	handler(ctx)
}

func (a *Adapter) notFound(ctx *fasthttp.RequestCtx) {
	if a.NotFound != nil {
		a.NotFound(ctx)
		return
	}
	ctx.Error(fasthttp.StatusMessage(fasthttp.StatusNotFound), fasthttp.StatusNotFound)
}
