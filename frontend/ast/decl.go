package ast

import "github.com/ziust-lang/ziust/common"

/* Struct */

type StructDeclaration struct {
	Attributes         []*Attribute
	IsPublic           bool
	Name               Ident
	TemplateParameters []*TemplateParameter
	GenericParameters  []*GenericParameter
	Members            []*StructMember
	node
}

func NewStructDeclaration(
	attrs []*Attribute,
	isPublic bool,
	name Ident,
	tparams []*TemplateParameter,
	gparams []*GenericParameter,
	members []*StructMember,
	span common.Span,
) *StructDeclaration {
	return &StructDeclaration{
		Attributes:         attrs,
		IsPublic:           isPublic,
		Name:               name,
		TemplateParameters: tparams,
		GenericParameters:  gparams,
		Members:            members,
		node:               node{span},
	}
}

func (s *StructDeclaration) isStatement() {}

type StructMember struct {
	Attributes []*Attribute
	IsPublic   bool
	Name       Ident
	Type       Type
	node
}

func NewStructMember(attrs []*Attribute, isPublic bool, name Ident, ty Type, span common.Span) *StructMember {
	return &StructMember{Attributes: attrs, IsPublic: isPublic, Name: name, Type: ty, node: node{span}}
}

/* Enum */

type EnumDeclaration struct {
	Attributes         []*Attribute
	IsPublic           bool
	Name               Ident
	TemplateParameters []*TemplateParameter
	GenericParameters  []*GenericParameter
	TagType            Type // nil if absent
	Members            []*EnumMember
	node
}

func NewEnumDeclaration(
	attrs []*Attribute,
	isPublic bool,
	name Ident,
	tparams []*TemplateParameter,
	gparams []*GenericParameter,
	tagType Type,
	members []*EnumMember,
	span common.Span,
) *EnumDeclaration {
	return &EnumDeclaration{
		Attributes:         attrs,
		IsPublic:           isPublic,
		Name:               name,
		TemplateParameters: tparams,
		GenericParameters:  gparams,
		TagType:            tagType,
		Members:            members,
		node:               node{span},
	}
}

func (e *EnumDeclaration) isStatement() {}

type EnumMember struct {
	Attributes []*Attribute
	Name       Ident
	Types      []Type
	TagValue   Expression // nil if absent
	// Discriminant is the effective tag, nil when it depends on a
	// non-literal tag value.
	Discriminant *IntValue
	node
}

func NewEnumMember(attrs []*Attribute, name Ident, types []Type, tagValue Expression, span common.Span) *EnumMember {
	return &EnumMember{Attributes: attrs, Name: name, Types: types, TagValue: tagValue, node: node{span}}
}

/* Type alias */

type TypeDeclaration struct {
	Attributes         []*Attribute
	IsPublic           bool
	Name               Ident
	TemplateParameters []*TemplateParameter
	GenericParameters  []*GenericParameter
	Type               Type
	node
}

func NewTypeDeclaration(
	attrs []*Attribute,
	isPublic bool,
	name Ident,
	tparams []*TemplateParameter,
	gparams []*GenericParameter,
	ty Type,
	span common.Span,
) *TypeDeclaration {
	return &TypeDeclaration{
		Attributes:         attrs,
		IsPublic:           isPublic,
		Name:               name,
		TemplateParameters: tparams,
		GenericParameters:  gparams,
		Type:               ty,
		node:               node{span},
	}
}

func (t *TypeDeclaration) isStatement() {}

/* Trait */

type TraitDeclaration struct {
	Attributes         []*Attribute
	IsPublic           bool
	Name               Ident
	TemplateParameters []*TemplateParameter
	Members            []TraitMember
	node
}

func NewTraitDeclaration(
	attrs []*Attribute,
	isPublic bool,
	name Ident,
	tparams []*TemplateParameter,
	members []TraitMember,
	span common.Span,
) *TraitDeclaration {
	return &TraitDeclaration{
		Attributes:         attrs,
		IsPublic:           isPublic,
		Name:               name,
		TemplateParameters: tparams,
		Members:            members,
		node:               node{span},
	}
}

func (t *TraitDeclaration) isStatement() {}

type TraitConstMember struct {
	Attributes []*Attribute
	Name       Ident
	Type       Type
	node
}

func NewTraitConstMember(attrs []*Attribute, name Ident, ty Type, span common.Span) *TraitConstMember {
	return &TraitConstMember{Attributes: attrs, Name: name, Type: ty, node: node{span}}
}

func (t *TraitConstMember) isTraitMember() {}

type TraitFnMember struct {
	Attributes         []*Attribute
	Name               Ident
	TemplateParameters []*TemplateParameter
	GenericParameters  []*GenericParameter
	Parameters         []FnParameter
	ReturnType         Type // nil if absent
	node
}

func NewTraitFnMember(
	attrs []*Attribute,
	name Ident,
	tparams []*TemplateParameter,
	gparams []*GenericParameter,
	params []FnParameter,
	ret Type,
	span common.Span,
) *TraitFnMember {
	return &TraitFnMember{
		Attributes:         attrs,
		Name:               name,
		TemplateParameters: tparams,
		GenericParameters:  gparams,
		Parameters:         params,
		ReturnType:         ret,
		node:               node{span},
	}
}

func (t *TraitFnMember) isTraitMember() {}

/* Impl */

type ImplDeclaration struct {
	Attributes         []*Attribute
	TemplateParameters []*TemplateParameter
	GenericParameters  []*GenericParameter
	Trait              Type // nil for inherent impls
	Target             Type
	Members            []ImplMember
	node
}

func NewImplDeclaration(
	attrs []*Attribute,
	tparams []*TemplateParameter,
	gparams []*GenericParameter,
	trait Type,
	target Type,
	members []ImplMember,
	span common.Span,
) *ImplDeclaration {
	return &ImplDeclaration{
		Attributes:         attrs,
		TemplateParameters: tparams,
		GenericParameters:  gparams,
		Trait:              trait,
		Target:             target,
		Members:            members,
		node:               node{span},
	}
}

func (i *ImplDeclaration) isStatement() {}

/* Const */

type ConstDeclaration struct {
	Attributes []*Attribute
	IsPublic   bool
	Name       Ident
	Type       Type
	Value      Expression
	node
}

func NewConstDeclaration(attrs []*Attribute, isPublic bool, name Ident, ty Type, value Expression, span common.Span) *ConstDeclaration {
	return &ConstDeclaration{
		Attributes: attrs,
		IsPublic:   isPublic,
		Name:       name,
		Type:       ty,
		Value:      value,
		node:       node{span},
	}
}

func (c *ConstDeclaration) isStatement()  {}
func (c *ConstDeclaration) isImplMember() {}

/* Fn */

type FnDeclaration struct {
	Attributes         []*Attribute
	IsPublic           bool
	Name               Ident
	TemplateParameters []*TemplateParameter
	GenericParameters  []*GenericParameter
	Parameters         []FnParameter
	ReturnType         Type // nil if absent
	Body               *BlockExpression
	node
}

func NewFnDeclaration(
	attrs []*Attribute,
	isPublic bool,
	name Ident,
	tparams []*TemplateParameter,
	gparams []*GenericParameter,
	params []FnParameter,
	ret Type,
	body *BlockExpression,
	span common.Span,
) *FnDeclaration {
	return &FnDeclaration{
		Attributes:         attrs,
		IsPublic:           isPublic,
		Name:               name,
		TemplateParameters: tparams,
		GenericParameters:  gparams,
		Parameters:         params,
		ReturnType:         ret,
		Body:               body,
		node:               node{span},
	}
}

func (f *FnDeclaration) isStatement()  {}
func (f *FnDeclaration) isImplMember() {}

/* Parameters */

// SelfParameterName is the name a receiver parameter is known by.
const SelfParameterName = "self"

// SelfParameter is the receiver: `self`, `&self` or `&mut self`.
type SelfParameter struct {
	IsRef bool
	IsMut bool
	node
}

func NewSelfParameter(isRef, isMut bool, span common.Span) *SelfParameter {
	return &SelfParameter{IsRef: isRef, IsMut: isMut, node: node{span}}
}

func (s *SelfParameter) isFnParameter()        {}
func (s *SelfParameter) ParameterName() string { return SelfParameterName }

type NormalParameter struct {
	IsMut bool
	Name  Ident
	Type  Type
	node
}

func NewNormalParameter(isMut bool, name Ident, ty Type, span common.Span) *NormalParameter {
	return &NormalParameter{IsMut: isMut, Name: name, Type: ty, node: node{span}}
}

func (n *NormalParameter) isFnParameter()        {}
func (n *NormalParameter) ParameterName() string { return n.Name.Raw }
