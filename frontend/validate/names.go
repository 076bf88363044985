package validate

import (
	"github.com/ziust-lang/ziust/common"
	"github.com/ziust-lang/ziust/frontend/ast"
)

type named struct {
	name string
	span common.Span
}

// unique reports every name that repeats an earlier one in list.
func (v *validator) unique(what string, list []named) {
	first := make(map[string]common.Span, len(list))
	for _, n := range list {
		if prev, ok := first[n.name]; ok {
			v.errorf(common.KindDuplicateName, n.span, []common.Span{prev}, "duplicate %s `%s`", what, n.name)
			continue
		}
		first[n.name] = n.span
	}
}

// parameters checks the template and generic parameters of a declaration
// as one namespace.
func (v *validator) parameters(tparams []*ast.TemplateParameter, gparams []*ast.GenericParameter) {
	type param struct {
		named
		generic bool
	}
	seen := make(map[string]param, len(tparams)+len(gparams))
	check := func(p param) {
		prev, ok := seen[p.name]
		if !ok {
			seen[p.name] = p
			return
		}
		related := []common.Span{prev.span}
		switch {
		case prev.generic == p.generic && p.generic:
			v.errorf(common.KindDuplicateName, p.span, related, "duplicate generic parameter `%s`", p.name)
		case prev.generic == p.generic:
			v.errorf(common.KindDuplicateName, p.span, related, "duplicate template parameter `%s`", p.name)
		default:
			v.errorf(common.KindDuplicateName, p.span, related,
				"`%s` is declared as both a template and a generic parameter", p.name)
		}
	}

	for _, tp := range tparams {
		check(param{named{tp.Name.Raw, tp.Name.Span()}, false})
	}
	for _, gp := range gparams {
		check(param{named{gp.Name.Raw, gp.Name.Span()}, true})
	}
}

// fnParameters checks receiver placement and parameter names. A receiver
// is named `self`, so two receivers are also duplicates.
func (v *validator) fnParameters(params []ast.FnParameter) {
	list := make([]named, 0, len(params))
	for i, p := range params {
		if _, ok := p.(*ast.SelfParameter); ok && i > 0 {
			v.errorf(common.KindMisplacedReceiverParameter, p.Span(), []common.Span{params[0].Span()},
				"receiver parameter `self` must be the first parameter, found at position %d", i+1)
		}
		list = append(list, named{p.ParameterName(), p.Span()})
	}
	v.unique("parameter", list)
}

func (v *validator) traitMembers(n *ast.TraitDeclaration) {
	list := make([]named, 0, len(n.Members))
	for _, m := range n.Members {
		switch m := m.(type) {
		case *ast.TraitConstMember:
			list = append(list, named{m.Name.Raw, m.Name.Span()})
		case *ast.TraitFnMember:
			list = append(list, named{m.Name.Raw, m.Name.Span()})
		}
	}
	v.unique("trait member", list)
}

func (v *validator) implMembers(n *ast.ImplDeclaration) {
	list := make([]named, 0, len(n.Members))
	for _, m := range n.Members {
		switch m := m.(type) {
		case *ast.ConstDeclaration:
			list = append(list, named{m.Name.Raw, m.Name.Span()})
		case *ast.FnDeclaration:
			list = append(list, named{m.Name.Raw, m.Name.Span()})
		}
	}
	v.unique("impl member", list)
}

// enumMembers checks member names and that every explicit tag value is a
// constant expression.
func (v *validator) enumMembers(n *ast.EnumDeclaration) {
	list := make([]named, 0, len(n.Members))
	for _, m := range n.Members {
		list = append(list, named{m.Name.Raw, m.Name.Span()})
		if m.TagValue != nil && !isConstant(m.TagValue) {
			v.errorf(common.KindNonConstantTagValue, m.TagValue.Span(), nil,
				"tag value of `%s` must be a literal, a constant reference or a tuple of those", m.Name.Raw)
		}
	}
	v.unique("enum member", list)
}

func isConstant(e ast.Expression) bool {
	switch e := e.(type) {
	case *ast.Literal, *ast.ConstReference:
		return true
	case *ast.ParenthesisedExpression:
		for _, inner := range e.Expressions {
			if !isConstant(inner) {
				return false
			}
		}
		return true
	}
	return false
}
