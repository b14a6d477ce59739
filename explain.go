package router

import (
	"fmt"

	"github.com/valyala/bytebufferpool"

	"github.com/trailmap/router/radix"
)

// Explain renders a line-oriented pseudo-source trace of the compiled
// tree's dispatch decisions — the bounds checks, prefix compares, byte
// switches, regex tests and terminal returns a strategy-(a) code
// generator would have emitted — without generating or compiling any
// Go source at runtime. It is advisory and unstable.
func (m *Matcher) Explain() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	explainNode(buf, m.tree.Root(), 0)
	return buf.String()
}

func explainNode(buf *bytebufferpool.ByteBuffer, n *radix.Node, depth int) {
	ind := indent(depth)
	fmt.Fprintf(buf, "%sif !hasPrefix(input[cursor:], %q) { return NO_MATCH }\n", ind, n.Prefix())
	fmt.Fprintf(buf, "%scursor += %d\n", ind, len(n.Prefix()))

	if children := n.Children(); len(children) > 0 {
		fmt.Fprintf(buf, "%sswitch input[cursor] {\n", ind)
		for _, c := range children {
			fmt.Fprintf(buf, "%scase %q:\n", ind, c.Prefix()[0])
			explainNode(buf, c, depth+1)
		}
		fmt.Fprintf(buf, "%s}\n", ind)
	}

	for i, step := range n.Params() {
		fmt.Fprintf(buf, "%s// parametric edge %d: %s %q until=%s\n", ind, i, step.Kind, step.Name, explainDelim(step.Until))
		if step.Kind == radix.KindRegex {
			fmt.Fprintf(buf, "%sif !%s.Match(span) { continue }\n", ind, step.Pattern.String())
		}
		fmt.Fprintf(buf, "%sparams = append(params, span)\n", ind)
		explainNode(buf, n.ParamChild(i), depth+1)
	}

	if pattern, destIndex, ok := n.Terminal(); ok {
		fmt.Fprintf(buf, "%sterminalOrFail:\n", ind)
		fmt.Fprintf(buf, "%sif cursor == len(input) { return MATCHED(dest=%d, pattern=%q) }\n", ind, destIndex, pattern)
	}
	fmt.Fprintf(buf, "%sreturn NO_MATCH\n", ind)
}

func explainDelim(d radix.Delimiter) string {
	if d.End {
		return "<end-of-input>"
	}
	return string(d.B)
}

func indent(depth int) string {
	out := make([]byte, depth)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}
