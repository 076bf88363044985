package lower

import (
	"github.com/ziust-lang/ziust/frontend/ast"
	"github.com/ziust-lang/ziust/frontend/syntax"
)

// LetDecl: attrs mut? name type? value
func lowerLet(l *lowerer, n *syntax.Node) any {
	let := ast.NewLetDeclaration(
		l.attributes(n),
		l.flag(n, 1, syntax.KindMutability),
		slot[ast.Ident](l, n, 2, "name"),
		optSlot[ast.Type](l, n, 3, "type"),
		slot[ast.Expression](l, n, 4, "value"),
		n.Span(),
	)
	l.checkLiteralFits(let.Type, let.Value)
	return let
}

// LetElseDecl: attrs pattern value else-block
func lowerLetElse(l *lowerer, n *syntax.Node) any {
	return ast.NewLetElseDeclaration(
		l.attributes(n),
		slot[ast.Pattern](l, n, 1, "pattern"),
		slot[ast.Expression](l, n, 2, "value"),
		slot[*ast.BlockExpression](l, n, 3, "else block"),
		n.Span(),
	)
}

func lowerNull(l *lowerer, n *syntax.Node) any {
	return ast.NewNullStatement(l.attributes(n), n.Span())
}

// DeferStmt: attrs labels when? statement
func lowerDefer(l *lowerer, n *syntax.Node) any {
	attrs := l.attributes(n)
	labelList := slot[[]ast.Ident](l, n, 1, "label list")
	when := l.optLabel(n, 2)
	c := n.Child(3)
	if c == nil {
		l.malformed(n.Span(), "%s is missing its statement", n.Kind)
	}
	return ast.NewDeferStatement(attrs, labelList, when, l.statement(c), n.Span())
}

// TestStmt: attrs name body
func lowerTest(l *lowerer, n *syntax.Node) any {
	attrs := l.attributes(n)
	name := slot[*ast.Literal](l, n, 1, "test name")
	if name.Kind != ast.LiteralString {
		l.malformed(name.Span(), "test name must be a string literal")
	}
	return ast.NewTestStatement(attrs, name.String, slot[[]ast.Statement](l, n, 2, "body"), n.Span())
}

func lowerExpressionStmt(l *lowerer, n *syntax.Node) any {
	return ast.NewExpressionStatement(
		l.attributes(n),
		slot[ast.Expression](l, n, 1, "expression"),
		n.Span(),
	)
}

func lowerAssignment(l *lowerer, n *syntax.Node) any {
	return ast.NewAssignmentStatement(
		slot[ast.Expression](l, n, 0, "left-hand side"),
		slot[ast.Expression](l, n, 1, "right-hand side"),
		n.Span(),
	)
}

// BlockStmt: label? statements
func lowerBlockStmt(l *lowerer, n *syntax.Node) any {
	label := l.optLabel(n, 0)
	if label != nil {
		l.enter(label, ast.ConstructBlock, n.Span())
		defer l.labels.Pop()
	}
	return ast.NewBlockStatement(label, slot[[]ast.Statement](l, n, 1, "statement list"), n.Span())
}

// ForStmt: label? pattern iterable body
func lowerFor(l *lowerer, n *syntax.Node) any {
	label := l.optLabel(n, 0)
	pattern := slot[ast.Pattern](l, n, 1, "pattern")
	in := slot[ast.SimpleExpression](l, n, 2, "iterable")

	l.enter(label, ast.ConstructLoop, n.Span())
	defer l.labels.Pop()
	body := slot[*ast.BlockStatement](l, n, 3, "body")

	return ast.NewForStatement(label, pattern, in, body, n.Span())
}

// WhileStmt: label? condition body
func lowerWhile(l *lowerer, n *syntax.Node) any {
	label := l.optLabel(n, 0)
	cond := slot[ast.SimpleExpression](l, n, 1, "condition")

	l.enter(label, ast.ConstructLoop, n.Span())
	defer l.labels.Pop()
	body := slot[*ast.BlockStatement](l, n, 2, "body")

	return ast.NewWhileStatement(label, cond, body, n.Span())
}
