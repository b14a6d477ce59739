package radix

import (
	"regexp"
	"strings"
)

// Parse turns a single pattern string into a Route. defaultUntil is the
// delimiter byte a parameter falls back to when the pattern does not
// specify one explicitly (spec §4.1 "Resolution rules").
//
// The parser is total on well-formed input; malformed input returns a
// *ParseError naming one of the enumerated ErrorKinds.
func Parse(pattern string, defaultUntil byte) (Route, error) {
	if pattern == "" {
		return Route{}, &ParseError{Kind: UnexpectedEndOfInput, Pattern: pattern, Pos: 0, Msg: "pattern must not be empty"}
	}

	var steps []Step
	names := make(map[string]struct{})

	i := 0
	for i < len(pattern) {
		if pattern[i] != '{' {
			start := i
			for i < len(pattern) && pattern[i] != '{' {
				i++
			}
			appendExact(&steps, pattern[start:i])
			continue
		}

		step, next, err := parseParam(pattern, i, defaultUntil)
		if err != nil {
			return Route{}, err
		}

		if _, dup := names[step.Name]; dup {
			return Route{}, &ParseError{
				Kind: DuplicateParameterName, Pattern: pattern, Pos: i,
				Msg: "parameter name " + step.Name + " already used in this route",
			}
		}
		names[step.Name] = struct{}{}

		steps = append(steps, step)
		i = next

		if step.Until.End && i < len(pattern) {
			return Route{}, &ParseError{
				Kind: TrailingAfterRest, Pattern: pattern, Pos: i,
				Msg: "no step may follow a rest parameter in the same route",
			}
		}
	}

	if len(steps) == 0 {
		return Route{}, &ParseError{Kind: UnexpectedEndOfInput, Pattern: pattern, Pos: len(pattern), Msg: "pattern has no steps"}
	}

	return Route{Steps: steps, Pattern: pattern}, nil
}

// appendExact merges a literal fragment into the trailing Exact step, if
// any, otherwise starts a new one. This enforces the invariant that two
// consecutive Exact steps are always merged into one.
func appendExact(steps *[]Step, lit string) {
	if lit == "" {
		return
	}
	if n := len(*steps); n > 0 && (*steps)[n-1].Kind == KindExact {
		(*steps)[n-1].Literal = append((*steps)[n-1].Literal, lit...)
		return
	}
	*steps = append(*steps, Step{Kind: KindExact, Literal: []byte(lit)})
}

// parseParam parses a single "{...}" parameter starting at pattern[start]
// ('{') and returns the Step plus the index just past its closing '}'.
func parseParam(pattern string, start int, defaultUntil byte) (Step, int, error) {
	depth := 1
	j := start + 1
	for j < len(pattern) {
		switch pattern[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return parseParamBody(pattern, start, j, defaultUntil)
			}
		}
		j++
	}
	return Step{}, 0, &ParseError{Kind: UnbalancedBrace, Pattern: pattern, Pos: start, Msg: "unterminated '{'"}
}

func parseParamBody(pattern string, start, closeBrace int, defaultUntil byte) (Step, int, error) {
	inner := pattern[start+1 : closeBrace]
	next := closeBrace + 1
	source := pattern[start:next]

	name, rest, hasColon := strings.Cut(inner, ":")
	if name == "" {
		return Step{}, 0, &ParseError{Kind: EmptyParameterName, Pattern: pattern, Pos: start, Msg: "parameter name must not be empty"}
	}
	if !validName(name) {
		return Step{}, 0, &ParseError{Kind: EmptyParameterName, Pattern: pattern, Pos: start, Msg: "invalid parameter name " + name}
	}

	if !hasColon {
		return Step{Kind: KindUntil, Name: name, Until: Delimiter{B: defaultUntil}, Source: source}, next, nil
	}

	if strings.HasPrefix(rest, ":") {
		// '{' name '::' delim '}'
		delim, err := parseDelim(rest[1:], pattern, start)
		if err != nil {
			return Step{}, 0, err
		}
		return Step{Kind: KindUntil, Name: name, Until: delim, Source: source}, next, nil
	}

	regexPart, delimToken, hasDelim := splitRegexDelim(rest)
	delim := Delimiter{B: defaultUntil}
	if hasDelim {
		d, err := parseDelim(delimToken, pattern, start)
		if err != nil {
			return Step{}, 0, err
		}
		delim = d
	}

	re, err := regexp.Compile("^(?:" + regexPart + ")$")
	if err != nil {
		return Step{}, 0, &ParseError{Kind: InvalidRegex, Pattern: pattern, Pos: start, Msg: err.Error()}
	}
	return Step{Kind: KindRegex, Name: name, Until: delim, Pattern: re, Source: source}, next, nil
}

// splitRegexDelim splits "regex" or "regex:delim" by finding the last
// top-level ':' (outside any (), [] or {} nesting inside the regex
// text) whose suffix up to the end is a valid delimiter token. A
// top-level colon that isn't followed by a valid delimiter token is
// treated as part of the regex itself (e.g. a non-capturing group).
func splitRegexDelim(rest string) (regexPart, delimToken string, hasDelim bool) {
	depth := 0
	lastColon := -1
	for idx := 0; idx < len(rest); idx++ {
		switch rest[idx] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				lastColon = idx
			}
		}
	}
	if lastColon < 0 {
		return rest, "", false
	}
	suffix := rest[lastColon+1:]
	if suffix == `\n` || len(suffix) == 1 {
		return rest[:lastColon], suffix, true
	}
	return rest, "", false
}

// parseDelim resolves a raw delimiter token: either the two-byte
// end-of-input escape `\n` (literal backslash, 'n' — NOT the newline
// byte) or a single literal byte.
func parseDelim(token, pattern string, pos int) (Delimiter, error) {
	if token == `\n` {
		return Delimiter{End: true}, nil
	}
	if len(token) == 1 {
		return Delimiter{B: token[0]}, nil
	}
	return Delimiter{}, &ParseError{
		Kind: InvalidRegex, Pattern: pattern, Pos: pos,
		Msg: "delimiter must be a single byte or the end-of-input escape \\n",
	}
}

func validName(name string) bool {
	c := name[0]
	if !(c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
		return false
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		if !(c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return false
		}
	}
	return true
}
