package ast

import "github.com/ziust-lang/ziust/common"

// TemplateParameter is a compile-time value parameter, `[N: 1 | 2 | 4]`.
// Candidates is empty when the parameter is unconstrained.
type TemplateParameter struct {
	Name       Ident
	Candidates []Expression
	node
}

func NewTemplateParameter(name Ident, candidates []Expression, span common.Span) *TemplateParameter {
	return &TemplateParameter{Name: name, Candidates: candidates, node: node{span}}
}

// GenericParameter is a type-level parameter, `<T: Bound>`.
type GenericParameter struct {
	Name  Ident
	Bound GenericArgument // nil if absent
	node
}

func NewGenericParameter(name Ident, bound GenericArgument, span common.Span) *GenericParameter {
	return &GenericParameter{Name: name, Bound: bound, node: node{span}}
}

type GenericArgumentTerminal struct {
	Type Type
	node
}

func NewGenericArgumentTerminal(ty Type, span common.Span) *GenericArgumentTerminal {
	return &GenericArgumentTerminal{Type: ty, node: node{span}}
}

func (g *GenericArgumentTerminal) isGenericArgument() {}

type GenericArgumentTuple struct {
	Arguments []GenericArgument
	node
}

func NewGenericArgumentTuple(args []GenericArgument, span common.Span) *GenericArgumentTuple {
	return &GenericArgumentTuple{Arguments: args, node: node{span}}
}

func (g *GenericArgumentTuple) isGenericArgument() {}
