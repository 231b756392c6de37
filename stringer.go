package binopt

import (
	"bytes"
	"strings"
)

// String returns the prefix-notation rendering of the tree: the exact
// inverse of Build. Tokens are separated by single spaces with no
// trailing whitespace.
func (n *Node) String() string {
	buf := &bytes.Buffer{}
	n.prefix(buf)
	return buf.String()
}

func (n *Node) prefix(buf *bytes.Buffer) {
	buf.WriteString(n.Value)
	if n.Kind == Operator {
		buf.WriteString(" ")
		n.Left.prefix(buf)
		buf.WriteString(" ")
		n.Right.prefix(buf)
	}
}

// Indented returns a multi-line rendering with one node per line,
// indented two spaces per depth level, children below their parent.
// Diagnostic only; no consumer depends on the exact layout.
func (n *Node) Indented() string {
	buf := &bytes.Buffer{}
	n.indent(buf, 0)
	return buf.String()
}

func (n *Node) indent(buf *bytes.Buffer, depth int) {
	buf.WriteString(strings.Repeat("  ", depth))
	buf.WriteString(n.Value)
	if n.Kind == Operator {
		buf.WriteString("\n")
		n.Left.indent(buf, depth+1)
		buf.WriteString("\n")
		n.Right.indent(buf, depth+1)
	}
}
