package ast

import "github.com/ziust-lang/ziust/common"

// TerminalPattern binds or compares a single value. Exactly one of Name
// and Literal is set, unless the pattern is the wildcard `_`.
type TerminalPattern struct {
	IsMut   bool
	Name    *ConstReference
	Literal *Literal
	node
}

func NewTerminalPattern(isMut bool, name *ConstReference, lit *Literal, span common.Span) *TerminalPattern {
	return &TerminalPattern{IsMut: isMut, Name: name, Literal: lit, node: node{span}}
}

func (t *TerminalPattern) IsWildcard() bool { return t.Name == nil && t.Literal == nil }

func (t *TerminalPattern) isPattern() {}

// EnumPattern destructures a tuple-like variant: `Some(x)`.
type EnumPattern struct {
	Name     *ConstReference
	Elements []Pattern
	node
}

func NewEnumPattern(name *ConstReference, elems []Pattern, span common.Span) *EnumPattern {
	return &EnumPattern{Name: name, Elements: elems, node: node{span}}
}

func (e *EnumPattern) isPattern() {}

// StructPattern destructures by field name: `Point { x, y: 0 }`.
type StructPattern struct {
	Name   *ConstReference
	Fields []*StructPatternField
	node
}

func NewStructPattern(name *ConstReference, fields []*StructPatternField, span common.Span) *StructPattern {
	return &StructPattern{Name: name, Fields: fields, node: node{span}}
}

func (s *StructPattern) isPattern() {}

type StructPatternField struct {
	Name    Ident
	Pattern Pattern // nil for the `x` shorthand
	node
}

func NewStructPatternField(name Ident, pattern Pattern, span common.Span) *StructPatternField {
	return &StructPatternField{Name: name, Pattern: pattern, node: node{span}}
}
