package lower

import (
	"github.com/ziust-lang/ziust/frontend/ast"
	"github.com/ziust-lang/ziust/frontend/syntax"
)

func lowerParenthesised(l *lowerer, n *syntax.Node) any {
	return ast.NewParenthesisedExpression(items[ast.Expression](l, n, 0, "expression"), n.Span())
}

func lowerBuiltinCall(l *lowerer, n *syntax.Node) any {
	return ast.NewBuiltinCallExpression(
		slot[ast.Ident](l, n, 0, "name"),
		slot[*ast.ArgumentGroup](l, n, 1, "arguments"),
		n.Span(),
	)
}

func lowerMacroCall(l *lowerer, n *syntax.Node) any {
	return ast.NewMacroCallExpression(
		slot[*ast.ConstReference](l, n, 0, "name"),
		slot[*ast.ArgumentGroup](l, n, 1, "arguments"),
		n.Span(),
	)
}

func lowerMember(l *lowerer, n *syntax.Node) any {
	return ast.NewMemberExpression(
		slot[ast.Expression](l, n, 0, "expression"),
		slot[ast.Ident](l, n, 1, "member"),
		n.Span(),
	)
}

// BlockExpr: label? statements value?
func lowerBlockExpr(l *lowerer, n *syntax.Node) any {
	label := l.optLabel(n, 0)
	if label != nil {
		l.enter(label, ast.ConstructBlock, n.Span())
		defer l.labels.Pop()
	}
	return ast.NewBlockExpression(
		label,
		slot[[]ast.Statement](l, n, 1, "statement list"),
		optSlot[ast.Expression](l, n, 2, "value"),
		n.Span(),
	)
}

// IfExpr: const? condition then else-ifs else?
func lowerIf(l *lowerer, n *syntax.Node) any {
	return ast.NewIfExpression(
		l.flag(n, 0, syntax.KindConstModifier),
		slot[*ast.IfCondition](l, n, 1, "condition"),
		slot[*ast.BlockExpression](l, n, 2, "then block"),
		slot[[]*ast.ElseIf](l, n, 3, "else-if list"),
		optSlot[*ast.BlockExpression](l, n, 4, "else block"),
		n.Span(),
	)
}

func lowerIfCondition(l *lowerer, n *syntax.Node) any {
	return ast.NewIfCondition(
		optSlot[ast.Pattern](l, n, 0, "pattern"),
		slot[ast.Expression](l, n, 1, "condition"),
		n.Span(),
	)
}

func lowerElseIfList(l *lowerer, n *syntax.Node) any {
	return items[*ast.ElseIf](l, n, 0, "else-if")
}

func lowerElseIf(l *lowerer, n *syntax.Node) any {
	return ast.NewElseIf(
		slot[*ast.IfCondition](l, n, 0, "condition"),
		slot[*ast.BlockExpression](l, n, 1, "block"),
		n.Span(),
	)
}

// LoopExpr: label? statements
func lowerLoop(l *lowerer, n *syntax.Node) any {
	label := l.optLabel(n, 0)
	l.enter(label, ast.ConstructLoop, n.Span())
	defer l.labels.Pop()
	return ast.NewLoopExpression(label, slot[[]ast.Statement](l, n, 1, "statement list"), n.Span())
}

// MatchExpr: label? subject arms
func lowerMatch(l *lowerer, n *syntax.Node) any {
	label := l.optLabel(n, 0)
	subject := slot[ast.SimpleExpression](l, n, 1, "subject")

	l.enter(label, ast.ConstructMatch, n.Span())
	defer l.labels.Pop()
	arms := slot[[]*ast.MatchArm](l, n, 2, "arm list")

	return ast.NewMatchExpression(label, subject, arms, n.Span())
}

func lowerMatchArmList(l *lowerer, n *syntax.Node) any {
	return items[*ast.MatchArm](l, n, 0, "match arm")
}

func lowerMatchArm(l *lowerer, n *syntax.Node) any {
	return ast.NewMatchArm(
		slot[ast.Pattern](l, n, 0, "pattern"),
		optSlot[ast.Expression](l, n, 1, "guard"),
		slot[ast.Expression](l, n, 2, "value"),
		n.Span(),
	)
}

// target resolves a jump against the enclosing constructs; nil when it
// does not resolve.
func (l *lowerer) target(label *ast.Ident, unlabeled func() (ast.LabelTarget, bool)) *ast.LabelTarget {
	var (
		t  ast.LabelTarget
		ok bool
	)
	if label != nil {
		t, ok = l.labels.Resolve(label.Raw)
	} else {
		t, ok = unlabeled()
	}
	if !ok {
		return nil
	}
	return &t
}

func lowerReturn(l *lowerer, n *syntax.Node) any {
	ret := ast.NewReturnExpression(l.optLabel(n, 0), optSlot[ast.Expression](l, n, 1, "value"), n.Span())
	ret.Target = l.target(ret.Label, l.labels.ResolveReturn)
	return ret
}

func lowerBreak(l *lowerer, n *syntax.Node) any {
	brk := ast.NewBreakExpression(l.optLabel(n, 0), optSlot[ast.Expression](l, n, 1, "value"), n.Span())
	brk.Target = l.target(brk.Label, l.labels.ResolveBreak)
	return brk
}

func lowerContinue(l *lowerer, n *syntax.Node) any {
	cont := ast.NewContinueExpression(l.optLabel(n, 0), n.Span())
	cont.Target = l.target(cont.Label, l.labels.ResolveContinue)
	if cont.Target != nil && cont.Target.Kind != ast.ConstructLoop {
		cont.Target = nil
	}
	return cont
}

func lowerAnd(l *lowerer, n *syntax.Node) any {
	return ast.NewAndExpression(
		slot[ast.Expression](l, n, 0, "left operand"),
		slot[ast.Expression](l, n, 1, "right operand"),
		n.Span(),
	)
}

func lowerOr(l *lowerer, n *syntax.Node) any {
	return ast.NewOrExpression(
		slot[ast.Expression](l, n, 0, "left operand"),
		slot[ast.Expression](l, n, 1, "right operand"),
		n.Span(),
	)
}

func lowerAs(l *lowerer, n *syntax.Node) any {
	return ast.NewAsExpression(
		slot[ast.Expression](l, n, 0, "expression"),
		slot[ast.Type](l, n, 1, "type"),
		n.Span(),
	)
}
