package radix

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, pattern string) Route {
	t.Helper()
	r, err := Parse(pattern, DefaultUntil)
	if err != nil {
		t.Fatalf("Parse(%q) returned unexpected error: %v", pattern, err)
	}
	return r
}

func TestParseLiteral(t *testing.T) {
	r := mustParse(t, "GET /ping")
	if len(r.Steps) != 1 || r.Steps[0].Kind != KindExact {
		t.Fatalf("expected a single exact step, got %+v", r.Steps)
	}
	if string(r.Steps[0].Literal) != "GET /ping" {
		t.Fatalf("unexpected literal: %q", r.Steps[0].Literal)
	}
}

func TestParseUntilDefaultDelimiter(t *testing.T) {
	r := mustParse(t, "GET /users/{id}")
	if len(r.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d: %+v", len(r.Steps), r.Steps)
	}
	p := r.Steps[1]
	if p.Kind != KindUntil || p.Name != "id" || p.Until != (Delimiter{B: '/'}) {
		t.Fatalf("unexpected param step: %+v", p)
	}
}

func TestParseAdjacentExactsCoalesce(t *testing.T) {
	r := mustParse(t, "GET /files/{name}.{ext}")
	if len(r.Steps) != 4 {
		t.Fatalf("expected 4 steps, got %d: %+v", len(r.Steps), r.Steps)
	}
	if r.Steps[0].Kind != KindExact || string(r.Steps[0].Literal) != "GET /files/" {
		t.Fatalf("unexpected first step: %+v", r.Steps[0])
	}
	if r.Steps[2].Kind != KindExact || string(r.Steps[2].Literal) != "." {
		t.Fatalf("unexpected third step: %+v", r.Steps[2])
	}
}

func TestParseRegexNoDelimiter(t *testing.T) {
	r := mustParse(t, "GET /users/{id:[0-9]+}")
	p := r.Steps[1]
	if p.Kind != KindRegex || p.Name != "id" || p.Until != (Delimiter{B: '/'}) {
		t.Fatalf("unexpected param step: %+v", p)
	}
	if !p.Pattern.MatchString("42") || p.Pattern.MatchString("42a") {
		t.Fatalf("regex anchoring is wrong: %v", p.Pattern)
	}
}

func TestParseRegexWithAlternation(t *testing.T) {
	r := mustParse(t, "{m:(GET|POST)} /api/{ep}")
	p := r.Steps[0]
	if p.Kind != KindRegex || p.Name != "m" {
		t.Fatalf("unexpected param step: %+v", p)
	}
	if !p.Pattern.MatchString("POST") || p.Pattern.MatchString("DELETE") {
		t.Fatalf("regex alternation parsed wrong: %v", p.Pattern)
	}
}

func TestParseExplicitDelimiterShorthand(t *testing.T) {
	r := mustParse(t, "GET /static/{path::\\n}")
	p := r.Steps[1]
	if p.Kind != KindUntil || !p.Until.End {
		t.Fatalf("expected a rest parameter, got %+v", p)
	}
}

func TestParseRestParameterMustBeLast(t *testing.T) {
	_, err := Parse("GET /static/{path::\\n}/more", DefaultUntil)
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != TrailingAfterRest {
		t.Fatalf("expected TrailingAfterRest, got %v", err)
	}
}

func TestParseDuplicateParameterName(t *testing.T) {
	_, err := Parse("GET /users/{id}/posts/{id}", DefaultUntil)
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != DuplicateParameterName {
		t.Fatalf("expected DuplicateParameterName, got %v", err)
	}
}

func TestParseEmptyParameterName(t *testing.T) {
	_, err := Parse("GET /users/{}", DefaultUntil)
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != EmptyParameterName {
		t.Fatalf("expected EmptyParameterName, got %v", err)
	}
}

func TestParseUnbalancedBrace(t *testing.T) {
	_, err := Parse("GET /users/{id", DefaultUntil)
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != UnbalancedBrace {
		t.Fatalf("expected UnbalancedBrace, got %v", err)
	}
}

func TestParseEmptyPattern(t *testing.T) {
	_, err := Parse("", DefaultUntil)
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != UnexpectedEndOfInput {
		t.Fatalf("expected UnexpectedEndOfInput, got %v", err)
	}
}

func TestParseInvalidRegex(t *testing.T) {
	_, err := Parse("GET /users/{id:(}", DefaultUntil)
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != InvalidRegex {
		t.Fatalf("expected InvalidRegex, got %v", err)
	}
}
