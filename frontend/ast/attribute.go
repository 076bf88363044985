package ast

import "github.com/ziust-lang/ziust/common"

// Attribute is one `#[...]` group; each comma-separated entry is a member.
//
//	#[inline, cfg(debug)] -> Members = [inline, cfg(debug)]
type Attribute struct {
	Members []*AttributeMember
	node
}

func NewAttribute(members []*AttributeMember, span common.Span) *Attribute {
	return &Attribute{Members: members, node: node{span}}
}

type AttributeMember struct {
	Name     *ConstReference
	Argument *ArgumentGroup // nil if absent
	node
}

func NewAttributeMember(name *ConstReference, arg *ArgumentGroup, span common.Span) *AttributeMember {
	return &AttributeMember{Name: name, Argument: arg, node: node{span}}
}

// ArgumentGroup is a parenthesised, comma-separated argument list.
type ArgumentGroup struct {
	Arguments []Expression
	node
}

func NewArgumentGroup(args []Expression, span common.Span) *ArgumentGroup {
	return &ArgumentGroup{Arguments: args, node: node{span}}
}
