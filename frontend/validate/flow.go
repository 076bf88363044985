package validate

import (
	"github.com/ziust-lang/ziust/common"
	"github.com/ziust-lang/ziust/frontend/ast"
)

func (v *validator) enter(label *ast.Ident, kind ast.ConstructKind, span common.Span) {
	name := ""
	if label != nil {
		name, span = label.Raw, label.Span()
	}
	v.labels.Push(name, kind, span)
}

// enterLabeled tracks a block only when it carries a label; Exit mirrors it.
func (v *validator) enterLabeled(label *ast.Ident, kind ast.ConstructKind, span common.Span) {
	if label != nil {
		v.enter(label, kind, span)
	}
}

func (v *validator) resolve(label ast.Ident, span common.Span) (ast.LabelTarget, bool) {
	target, ok := v.labels.Resolve(label.Raw)
	if !ok {
		v.errorf(common.KindUnresolvedLabel, span, []common.Span{label.Span()}, "unresolved label `'%s`", label.Raw)
	}
	return target, ok
}

func (v *validator) breakExpression(n *ast.BreakExpression) {
	if n.Label != nil {
		v.resolve(*n.Label, n.Span())
		return
	}
	if _, ok := v.labels.ResolveBreak(); !ok {
		v.errorf(common.KindUnresolvedLabel, n.Span(), nil, "`break` outside of a loop or match")
	}
}

func (v *validator) continueExpression(n *ast.ContinueExpression) {
	if n.Label == nil {
		if _, ok := v.labels.ResolveContinue(); !ok {
			v.errorf(common.KindUnresolvedLabel, n.Span(), nil, "`continue` outside of a loop")
		}
		return
	}
	target, ok := v.resolve(*n.Label, n.Span())
	if ok && target.Kind != ast.ConstructLoop {
		v.errorf(common.KindUnresolvedLabel, n.Span(), []common.Span{target.Span},
			"`continue '%s` does not refer to a loop, `'%s` labels a %s", n.Label.Raw, n.Label.Raw, target.Kind)
	}
}

func (v *validator) deferStatement(n *ast.DeferStatement) {
	for _, label := range n.Labels {
		v.resolve(label, label.Span())
	}
	if n.When != nil {
		v.resolve(*n.When, n.When.Span())
	}

	switch stmt := n.Statement.(type) {
	case *ast.DeferrableStatement, *ast.ErrorStatement:
	case *ast.DeferStatement:
		v.errorf(common.KindInvalidDeferTarget, stmt.Span(), []common.Span{n.Span()}, "a defer statement cannot be deferred")
	default:
		v.errorf(common.KindInvalidDeferTarget, stmt.Span(), []common.Span{n.Span()},
			"%s cannot be deferred; expected a block, expression, assignment, if, for, while, loop or match", describe(stmt))
	}
}

func describe(s ast.Statement) string {
	switch s.(type) {
	case *ast.StructDeclaration:
		return "a struct declaration"
	case *ast.EnumDeclaration:
		return "an enum declaration"
	case *ast.TypeDeclaration:
		return "a type declaration"
	case *ast.TraitDeclaration:
		return "a trait declaration"
	case *ast.ImplDeclaration:
		return "an impl block"
	case *ast.ConstDeclaration:
		return "a const declaration"
	case *ast.FnDeclaration:
		return "a function declaration"
	case *ast.LetDeclaration, *ast.LetElseDeclaration:
		return "a let statement"
	case *ast.NullStatement:
		return "an empty statement"
	case *ast.TestStatement:
		return "a test"
	}
	return "this statement"
}
