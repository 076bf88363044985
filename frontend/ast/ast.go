// Package ast defines the typed syntax tree produced by lowering.
//
// Every category (statements, expressions, types, patterns...) is a closed
// interface: the unexported marker method keeps implementations inside this
// package. Nodes form a strict tree; no node is reachable from two parents.
package ast

import (
	"github.com/ziust-lang/ziust/common"
)

type Node interface {
	Span() common.Span
}

type node struct {
	span common.Span
}

func (n node) Span() common.Span { return n.span }

type Statement interface {
	Node
	isStatement()
}

// Deferrable is a statement shape eligible to run at scope exit.
type Deferrable interface {
	Node
	isDeferrable()
}

type Expression interface {
	Node
	isExpression()
}

// SimpleExpression is the operand subset used by for, while and match heads.
type SimpleExpression interface {
	Expression
	isSimpleExpression()
}

type Type interface {
	Node
	isType()
}

type Pattern interface {
	Node
	isPattern()
}

type FnParameter interface {
	Node
	isFnParameter()
	ParameterName() string
}

type TraitMember interface {
	Node
	isTraitMember()
}

type ImplMember interface {
	Node
	isImplMember()
}

type GenericArgument interface {
	Node
	isGenericArgument()
}

/* Module */

type Module struct {
	Statements []Statement
	node
}

func NewModule(stmts []Statement, span common.Span) *Module {
	return &Module{Statements: stmts, node: node{span}}
}

/* Ident */

type Ident struct {
	Raw string
	node
}

func NewIdent(raw string, span common.Span) Ident {
	return Ident{Raw: raw, node: node{span}}
}

func (i Ident) String() string { return i.Raw }

/* ConstReference */

// ConstReference is a `::`-separated path such as `Color::Red`.
type ConstReference struct {
	Segments []Ident
	node
}

func NewConstReference(segments []Ident, span common.Span) *ConstReference {
	return &ConstReference{Segments: segments, node: node{span}}
}

func (c *ConstReference) String() string {
	s := ""
	for i, seg := range c.Segments {
		if i > 0 {
			s += "::"
		}
		s += seg.Raw
	}
	return s
}

func (c *ConstReference) isExpression()       {}
func (c *ConstReference) isSimpleExpression() {}
