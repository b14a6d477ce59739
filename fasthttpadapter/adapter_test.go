package fasthttpadapter

import (
	"testing"

	"github.com/valyala/fasthttp"

	"github.com/trailmap/router"
)

func TestAdapterDispatchesMatchedHandler(t *testing.T) {
	called := false

	r := router.New()
	if _, err := r.Add("GET /users/{id}", fasthttp.RequestHandler(func(ctx *fasthttp.RequestCtx) {
		called = true
		match := ctx.UserValue(MatchUserValue).(router.Match)
		if match.ParamString(0) != "42" {
			t.Fatalf("param = %q, want 42", match.ParamString(0))
		}
	})); err != nil {
		t.Fatalf("Add: %v", err)
	}

	m, err := r.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	a := New(m)

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod("GET")
	ctx.Request.SetRequestURI("/users/42")

	a.Handler(ctx)

	if !called {
		t.Fatalf("expected the matched handler to run")
	}
}

func TestAdapterNotFound(t *testing.T) {
	notFoundCalled := false

	r := router.New()
	r.Add("GET /ping", fasthttp.RequestHandler(func(ctx *fasthttp.RequestCtx) {}))
	m, err := r.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	a := New(m)
	a.NotFound = func(ctx *fasthttp.RequestCtx) { notFoundCalled = true }

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod("GET")
	ctx.Request.SetRequestURI("/pong")

	a.Handler(ctx)

	if !notFoundCalled {
		t.Fatalf("expected NotFound to run")
	}
}
