package lower

import (
	"strings"

	"github.com/ziust-lang/ziust/frontend/ast"
	"github.com/ziust-lang/ziust/frontend/syntax"
)

func lowerModule(l *lowerer, n *syntax.Node) any {
	return ast.NewModule(l.statements(n, n.Children), n.Span())
}

func lowerStatementList(l *lowerer, n *syntax.Node) any {
	return l.statements(n, n.Children)
}

func lowerMarker(*lowerer, *syntax.Node) any {
	return true
}

func lowerIdentifier(l *lowerer, n *syntax.Node) any {
	if n.Text == "" {
		l.malformed(n.Span(), "empty identifier")
	}
	return ast.NewIdent(n.Text, n.Span())
}

// lowerLabel strips the leading quote: `'outer` is known as "outer".
func lowerLabel(l *lowerer, n *syntax.Node) any {
	name, ok := strings.CutPrefix(n.Text, "'")
	if !ok || name == "" {
		l.malformed(n.Span(), "malformed label %q", n.Text)
	}
	return ast.NewIdent(name, n.Span())
}

func lowerLabelList(l *lowerer, n *syntax.Node) any {
	return items[ast.Ident](l, n, 0, "label")
}

func lowerConstReference(l *lowerer, n *syntax.Node) any {
	segments := items[ast.Ident](l, n, 0, "path segment")
	if len(segments) == 0 {
		l.malformed(n.Span(), "empty path")
	}
	return ast.NewConstReference(segments, n.Span())
}

func lowerAttributeList(l *lowerer, n *syntax.Node) any {
	return items[*ast.Attribute](l, n, 0, "attribute")
}

func lowerAttribute(l *lowerer, n *syntax.Node) any {
	return ast.NewAttribute(items[*ast.AttributeMember](l, n, 0, "attribute member"), n.Span())
}

func lowerAttributeMember(l *lowerer, n *syntax.Node) any {
	return ast.NewAttributeMember(
		slot[*ast.ConstReference](l, n, 0, "name"),
		optSlot[*ast.ArgumentGroup](l, n, 1, "arguments"),
		n.Span(),
	)
}

func lowerArgumentGroup(l *lowerer, n *syntax.Node) any {
	return ast.NewArgumentGroup(items[ast.Expression](l, n, 0, "argument"), n.Span())
}
