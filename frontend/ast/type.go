package ast

import "github.com/ziust-lang/ziust/common"

// NeverType is `!`.
type NeverType struct {
	node
}

func NewNeverType(span common.Span) *NeverType {
	return &NeverType{node: node{span}}
}

func (n *NeverType) isType() {}

type TupleType struct {
	Members []Type
	node
}

func NewTupleType(members []Type, span common.Span) *TupleType {
	return &TupleType{Members: members, node: node{span}}
}

func (t *TupleType) isType() {}

// ReferenceType is `&T`, `&mut T` or the optional forms `?&T`.
type ReferenceType struct {
	IsOptional bool
	IsMut      bool
	Type       Type
	node
}

func NewReferenceType(isOptional, isMut bool, ty Type, span common.Span) *ReferenceType {
	return &ReferenceType{IsOptional: isOptional, IsMut: isMut, Type: ty, node: node{span}}
}

func (r *ReferenceType) isType() {}

// PointerType is `*T`, `*mut T` or the optional forms `?*T`.
type PointerType struct {
	IsOptional bool
	IsMut      bool
	Type       Type
	node
}

func NewPointerType(isOptional, isMut bool, ty Type, span common.Span) *PointerType {
	return &PointerType{IsOptional: isOptional, IsMut: isMut, Type: ty, node: node{span}}
}

func (p *PointerType) isType() {}

// ArrayType is `[T; N]`; Length is nil for `[T; _]`.
type ArrayType struct {
	IsMut  bool
	Type   Type
	Length Expression
	node
}

func NewArrayType(isMut bool, ty Type, length Expression, span common.Span) *ArrayType {
	return &ArrayType{IsMut: isMut, Type: ty, Length: length, node: node{span}}
}

func (a *ArrayType) isType() {}

type SliceType struct {
	IsMut bool
	Type  Type
	node
}

func NewSliceType(isMut bool, ty Type, span common.Span) *SliceType {
	return &SliceType{IsMut: isMut, Type: ty, node: node{span}}
}

func (s *SliceType) isType() {}

// TerminalType is a named type with optional `[..]` template and `<..>`
// generic arguments.
type TerminalType struct {
	Name              *ConstReference
	TemplateArguments []Expression
	GenericArguments  []GenericArgument
	node
}

func NewTerminalType(name *ConstReference, targs []Expression, gargs []GenericArgument, span common.Span) *TerminalType {
	return &TerminalType{Name: name, TemplateArguments: targs, GenericArguments: gargs, node: node{span}}
}

func (t *TerminalType) isType() {}
