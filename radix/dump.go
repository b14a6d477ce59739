package radix

import (
	"fmt"

	"github.com/valyala/bytebufferpool"
)

// Dump renders a human-readable, indented text dump of the subtree
// rooted at n. It is advisory and unstable — intended for debugging a
// route set, not for programmatic use.
func (n *Node) Dump(indent string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	n.dump(buf, indent, 0)
	return buf.String()
}

func (n *Node) dump(buf *bytebufferpool.ByteBuffer, indent string, depth int) {
	if depth > maxDiagDepth {
		fmt.Fprintf(buf, "%s...\n", pad(indent, depth))
		return
	}

	p := pad(indent, depth)
	fmt.Fprintf(buf, "%sprefix %q", p, n.prefix)
	if n.term != nil {
		fmt.Fprintf(buf, " terminal(dest=%d, pattern=%q)", n.term.destIndex, n.term.pattern)
	}
	buf.WriteByte('\n')

	for _, e := range n.params {
		fmt.Fprintf(buf, "%sparam %s %q until=%s\n", pad(indent, depth+1), e.step.Kind, e.step.Name, delimText(e.step.Until))
		e.child.dump(buf, indent, depth+2)
	}
	for _, c := range n.children {
		c.dump(buf, indent, depth+1)
	}
}

func pad(indent string, depth int) string {
	out := ""
	for i := 0; i < depth; i++ {
		out += indent
	}
	return out
}

func delimText(d Delimiter) string {
	if d.End {
		return `\n(end-of-input)`
	}
	return string(d.B)
}
