// Package validate checks the structural rules of a lowered module that
// the grammar cannot express.
package validate

import (
	"fmt"

	"github.com/ziust-lang/ziust/common"
	"github.com/ziust-lang/ziust/frontend/ast"
	"github.com/ziust-lang/ziust/frontend/labels"
)

// Validate walks m once and returns every violation found, in walk order.
// The module is not modified.
func Validate(m *ast.Module) []common.Diagnostic {
	if m == nil {
		return nil
	}
	v := &validator{labels: labels.New()}
	ast.Walk(v, m)
	return v.diags
}

type validator struct {
	labels *labels.Tracker
	diags  []common.Diagnostic
}

func (v *validator) errorf(kind common.Kind, span common.Span, related []common.Span, format string, args ...any) {
	v.diags = append(v.diags, common.NewDiagnostic(kind, fmt.Sprintf(format, args...), span, related...))
}

func (v *validator) Enter(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.ErrorStatement:
		return false

	case *ast.StructDeclaration:
		v.parameters(n.TemplateParameters, n.GenericParameters)
		members := make([]named, 0, len(n.Members))
		for _, m := range n.Members {
			members = append(members, named{m.Name.Raw, m.Name.Span()})
		}
		v.unique("struct member", members)
	case *ast.EnumDeclaration:
		v.parameters(n.TemplateParameters, n.GenericParameters)
		v.enumMembers(n)
	case *ast.TypeDeclaration:
		v.parameters(n.TemplateParameters, n.GenericParameters)
	case *ast.TraitDeclaration:
		v.parameters(n.TemplateParameters, nil)
		v.traitMembers(n)
	case *ast.TraitFnMember:
		v.parameters(n.TemplateParameters, n.GenericParameters)
		v.fnParameters(n.Parameters)
	case *ast.ImplDeclaration:
		v.parameters(n.TemplateParameters, n.GenericParameters)
		v.implMembers(n)
	case *ast.FnDeclaration:
		v.parameters(n.TemplateParameters, n.GenericParameters)
		v.fnParameters(n.Parameters)
		v.labels.Push("", ast.ConstructFunction, n.Span())

	case *ast.DeferStatement:
		v.deferStatement(n)

	case *ast.BlockExpression:
		v.enterLabeled(n.Label, ast.ConstructBlock, n.Span())
	case *ast.BlockStatement:
		v.enterLabeled(n.Label, ast.ConstructBlock, n.Span())
	case *ast.LoopExpression:
		v.enter(n.Label, ast.ConstructLoop, n.Span())
	case *ast.WhileStatement:
		ast.Walk(v, n.Condition)
		v.enter(n.Label, ast.ConstructLoop, n.Span())
		ast.Walk(v, n.Body)
		v.labels.Pop()
		return false
	case *ast.ForStatement:
		ast.Walk(v, n.Pattern)
		ast.Walk(v, n.In)
		v.enter(n.Label, ast.ConstructLoop, n.Span())
		ast.Walk(v, n.Body)
		v.labels.Pop()
		return false
	case *ast.MatchExpression:
		ast.Walk(v, n.Expression)
		v.enter(n.Label, ast.ConstructMatch, n.Span())
		for _, arm := range n.Arms {
			ast.Walk(v, arm)
		}
		v.labels.Pop()
		return false

	case *ast.BreakExpression:
		v.breakExpression(n)
	case *ast.ContinueExpression:
		v.continueExpression(n)
	case *ast.ReturnExpression:
		if n.Label != nil {
			v.resolve(*n.Label, n.Span())
		}
	}
	return true
}

func (v *validator) Exit(n ast.Node) {
	switch n := n.(type) {
	case *ast.FnDeclaration, *ast.LoopExpression:
		v.labels.Pop()
	case *ast.BlockExpression:
		if n.Label != nil {
			v.labels.Pop()
		}
	case *ast.BlockStatement:
		if n.Label != nil {
			v.labels.Pop()
		}
	}
}
