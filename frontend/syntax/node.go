// Package syntax defines the concrete syntax tree handed to lowering.
//
// A Node is untyped: its Kind names the production and Children holds the
// production's slots in order. Optional slots that are absent are nil
// entries, so positions stay stable; repeated children follow the fixed
// slots. Leaves carry their source text in Text.
package syntax

import (
	"strings"

	"github.com/ziust-lang/ziust/common"
)

type Node struct {
	Kind     Kind
	Children []*Node
	Text     string
	span     common.Span
}

func New(kind Kind, span common.Span, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children, span: span}
}

func Leaf(kind Kind, text string, span common.Span) *Node {
	return &Node{Kind: kind, Text: text, span: span}
}

func (n *Node) Span() common.Span { return n.span }

// Child returns the i-th slot, or nil if it is absent or out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Rest returns the children from slot i on.
func (n *Node) Rest(i int) []*Node {
	if i >= len(n.Children) {
		return nil
	}
	return n.Children[i:]
}

// Inspect calls f for n and every non-nil descendant in pre-order; f
// returning false prunes the subtree.
func Inspect(n *Node, f func(*Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, c := range n.Children {
		Inspect(c, f)
	}
}

// Sexp renders the tree in the s-expression form tree-sitter uses.
// Absent optional children are omitted.
func (n *Node) Sexp() string {
	var sb strings.Builder
	n.writeSexp(&sb)
	return sb.String()
}

func (n *Node) writeSexp(sb *strings.Builder) {
	sb.WriteByte('(')
	sb.WriteString(n.Kind.String())
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		sb.WriteByte(' ')
		c.writeSexp(sb)
	}
	sb.WriteByte(')')
}
