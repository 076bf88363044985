package ast

import "github.com/ziust-lang/ziust/common"

/* Parenthesised */

// ParenthesisedExpression is `(a)` for grouping, or a tuple when it holds
// zero or several elements.
type ParenthesisedExpression struct {
	Expressions []Expression
	node
}

func NewParenthesisedExpression(exprs []Expression, span common.Span) *ParenthesisedExpression {
	return &ParenthesisedExpression{Expressions: exprs, node: node{span}}
}

func (p *ParenthesisedExpression) IsTuple() bool { return len(p.Expressions) != 1 }

func (p *ParenthesisedExpression) isExpression()       {}
func (p *ParenthesisedExpression) isSimpleExpression() {}

/* Builtin call */

// BuiltinCallExpression is `@name(args)`.
type BuiltinCallExpression struct {
	Name      Ident
	Arguments *ArgumentGroup
	node
}

func NewBuiltinCallExpression(name Ident, args *ArgumentGroup, span common.Span) *BuiltinCallExpression {
	return &BuiltinCallExpression{Name: name, Arguments: args, node: node{span}}
}

func (b *BuiltinCallExpression) isExpression()       {}
func (b *BuiltinCallExpression) isSimpleExpression() {}

/* Macro call */

// MacroCallExpression is `path!(args)`.
type MacroCallExpression struct {
	Name      *ConstReference
	Arguments *ArgumentGroup
	node
}

func NewMacroCallExpression(name *ConstReference, args *ArgumentGroup, span common.Span) *MacroCallExpression {
	return &MacroCallExpression{Name: name, Arguments: args, node: node{span}}
}

func (m *MacroCallExpression) isExpression()       {}
func (m *MacroCallExpression) isSimpleExpression() {}

/* Member */

type MemberExpression struct {
	Expression Expression
	Member     Ident
	node
}

func NewMemberExpression(expr Expression, member Ident, span common.Span) *MemberExpression {
	return &MemberExpression{Expression: expr, Member: member, node: node{span}}
}

func (m *MemberExpression) isExpression()       {}
func (m *MemberExpression) isSimpleExpression() {}

/* Block */

type BlockExpression struct {
	Label      *Ident
	Statements []Statement
	Value      Expression // tail expression, nil if absent
	node
}

func NewBlockExpression(label *Ident, stmts []Statement, value Expression, span common.Span) *BlockExpression {
	return &BlockExpression{Label: label, Statements: stmts, Value: value, node: node{span}}
}

func (b *BlockExpression) isExpression() {}

/* If */

type IfExpression struct {
	IsConst   bool
	Condition *IfCondition
	Then      *BlockExpression
	ElseIfs   []*ElseIf
	Else      *BlockExpression // nil if absent
	node
}

func NewIfExpression(
	isConst bool,
	cond *IfCondition,
	then *BlockExpression,
	elseIfs []*ElseIf,
	els *BlockExpression,
	span common.Span,
) *IfExpression {
	return &IfExpression{IsConst: isConst, Condition: cond, Then: then, ElseIfs: elseIfs, Else: els, node: node{span}}
}

func (i *IfExpression) isExpression() {}
func (i *IfExpression) isDeferrable() {}

// IfCondition is either a plain condition or an `if let` pattern match.
type IfCondition struct {
	Pattern    Pattern // nil for a plain condition
	Expression Expression
	node
}

func NewIfCondition(pattern Pattern, expr Expression, span common.Span) *IfCondition {
	return &IfCondition{Pattern: pattern, Expression: expr, node: node{span}}
}

type ElseIf struct {
	Condition *IfCondition
	Then      *BlockExpression
	node
}

func NewElseIf(cond *IfCondition, then *BlockExpression, span common.Span) *ElseIf {
	return &ElseIf{Condition: cond, Then: then, node: node{span}}
}

/* Loop */

type LoopExpression struct {
	Label      *Ident
	Statements []Statement
	node
}

func NewLoopExpression(label *Ident, stmts []Statement, span common.Span) *LoopExpression {
	return &LoopExpression{Label: label, Statements: stmts, node: node{span}}
}

func (l *LoopExpression) isExpression() {}
func (l *LoopExpression) isDeferrable() {}

/* Match */

type MatchExpression struct {
	Label      *Ident
	Expression SimpleExpression
	Arms       []*MatchArm
	node
}

func NewMatchExpression(label *Ident, expr SimpleExpression, arms []*MatchArm, span common.Span) *MatchExpression {
	return &MatchExpression{Label: label, Expression: expr, Arms: arms, node: node{span}}
}

func (m *MatchExpression) isExpression() {}
func (m *MatchExpression) isDeferrable() {}

type MatchArm struct {
	Pattern Pattern
	Guard   Expression // nil if absent
	Value   Expression
	node
}

func NewMatchArm(pattern Pattern, guard, value Expression, span common.Span) *MatchArm {
	return &MatchArm{Pattern: pattern, Guard: guard, Value: value, node: node{span}}
}

/* Control flow */

type ReturnExpression struct {
	Label  *Ident
	Value  Expression // nil if absent
	Target *LabelTarget
	node
}

func NewReturnExpression(label *Ident, value Expression, span common.Span) *ReturnExpression {
	return &ReturnExpression{Label: label, Value: value, node: node{span}}
}

func (r *ReturnExpression) isExpression() {}

type BreakExpression struct {
	Label  *Ident
	Value  Expression // nil if absent
	Target *LabelTarget
	node
}

func NewBreakExpression(label *Ident, value Expression, span common.Span) *BreakExpression {
	return &BreakExpression{Label: label, Value: value, node: node{span}}
}

func (b *BreakExpression) isExpression() {}

type ContinueExpression struct {
	Label  *Ident
	Target *LabelTarget
	node
}

func NewContinueExpression(label *Ident, span common.Span) *ContinueExpression {
	return &ContinueExpression{Label: label, node: node{span}}
}

func (c *ContinueExpression) isExpression() {}

/* Logical */

type AndExpression struct {
	Lhs Expression
	Rhs Expression
	node
}

func NewAndExpression(lhs, rhs Expression, span common.Span) *AndExpression {
	return &AndExpression{Lhs: lhs, Rhs: rhs, node: node{span}}
}

func (a *AndExpression) isExpression() {}

type OrExpression struct {
	Lhs Expression
	Rhs Expression
	node
}

func NewOrExpression(lhs, rhs Expression, span common.Span) *OrExpression {
	return &OrExpression{Lhs: lhs, Rhs: rhs, node: node{span}}
}

func (o *OrExpression) isExpression() {}

/* Cast */

type AsExpression struct {
	Expression Expression
	Type       Type
	node
}

func NewAsExpression(expr Expression, ty Type, span common.Span) *AsExpression {
	return &AsExpression{Expression: expr, Type: ty, node: node{span}}
}

func (a *AsExpression) isExpression() {}
