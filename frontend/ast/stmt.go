package ast

import "github.com/ziust-lang/ziust/common"

/* Let */

type LetDeclaration struct {
	Attributes []*Attribute
	IsMut      bool
	Name       Ident
	Type       Type // nil if absent
	Value      Expression
	node
}

func NewLetDeclaration(attrs []*Attribute, isMut bool, name Ident, ty Type, value Expression, span common.Span) *LetDeclaration {
	return &LetDeclaration{Attributes: attrs, IsMut: isMut, Name: name, Type: ty, Value: value, node: node{span}}
}

func (l *LetDeclaration) isStatement() {}

/* Let-else */

type LetElseDeclaration struct {
	Attributes []*Attribute
	Pattern    Pattern
	Value      Expression
	Else       *BlockExpression
	node
}

func NewLetElseDeclaration(attrs []*Attribute, pattern Pattern, value Expression, els *BlockExpression, span common.Span) *LetElseDeclaration {
	return &LetElseDeclaration{Attributes: attrs, Pattern: pattern, Value: value, Else: els, node: node{span}}
}

func (l *LetElseDeclaration) isStatement() {}

/* Null */

// NullStatement is a lone `;`.
type NullStatement struct {
	Attributes []*Attribute
	node
}

func NewNullStatement(attrs []*Attribute, span common.Span) *NullStatement {
	return &NullStatement{Attributes: attrs, node: node{span}}
}

func (n *NullStatement) isStatement() {}

/* Deferrable */

// DeferrableStatement wraps the statement shapes that may also appear as
// the payload of a defer.
type DeferrableStatement struct {
	Statement Deferrable
}

func NewDeferrableStatement(stmt Deferrable) *DeferrableStatement {
	return &DeferrableStatement{Statement: stmt}
}

func (d *DeferrableStatement) Span() common.Span { return d.Statement.Span() }
func (d *DeferrableStatement) isStatement()      {}

/* Defer */

type DeferStatement struct {
	Attributes []*Attribute
	Labels     []Ident
	When       *Ident // nil if absent
	// Statement must be a *DeferrableStatement; the validator enforces it.
	Statement Statement
	node
}

func NewDeferStatement(attrs []*Attribute, labels []Ident, when *Ident, stmt Statement, span common.Span) *DeferStatement {
	return &DeferStatement{Attributes: attrs, Labels: labels, When: when, Statement: stmt, node: node{span}}
}

func (d *DeferStatement) isStatement() {}

/* Test */

type TestStatement struct {
	Attributes []*Attribute
	Name       string
	Statements []Statement
	node
}

func NewTestStatement(attrs []*Attribute, name string, stmts []Statement, span common.Span) *TestStatement {
	return &TestStatement{Attributes: attrs, Name: name, Statements: stmts, node: node{span}}
}

func (t *TestStatement) isStatement() {}

/* Error */

// ErrorStatement stands in for a statement that failed to lower.
type ErrorStatement struct {
	Message string
	node
}

func NewErrorStatement(msg string, span common.Span) *ErrorStatement {
	return &ErrorStatement{Message: msg, node: node{span}}
}

func (e *ErrorStatement) isStatement() {}

/* Deferrable shapes */

type BlockStatement struct {
	Label      *Ident
	Statements []Statement
	node
}

func NewBlockStatement(label *Ident, stmts []Statement, span common.Span) *BlockStatement {
	return &BlockStatement{Label: label, Statements: stmts, node: node{span}}
}

func (b *BlockStatement) isDeferrable() {}

type ExpressionStatement struct {
	Attributes []*Attribute
	Expression Expression
	node
}

func NewExpressionStatement(attrs []*Attribute, expr Expression, span common.Span) *ExpressionStatement {
	return &ExpressionStatement{Attributes: attrs, Expression: expr, node: node{span}}
}

func (e *ExpressionStatement) isDeferrable() {}

type AssignmentStatement struct {
	Lhs Expression
	Rhs Expression
	node
}

func NewAssignmentStatement(lhs, rhs Expression, span common.Span) *AssignmentStatement {
	return &AssignmentStatement{Lhs: lhs, Rhs: rhs, node: node{span}}
}

func (a *AssignmentStatement) isDeferrable() {}

type ForStatement struct {
	Label   *Ident
	Pattern Pattern
	In      SimpleExpression
	Body    *BlockStatement
	node
}

func NewForStatement(label *Ident, pattern Pattern, in SimpleExpression, body *BlockStatement, span common.Span) *ForStatement {
	return &ForStatement{Label: label, Pattern: pattern, In: in, Body: body, node: node{span}}
}

func (f *ForStatement) isDeferrable() {}

type WhileStatement struct {
	Label     *Ident
	Condition SimpleExpression
	Body      *BlockStatement
	node
}

func NewWhileStatement(label *Ident, cond SimpleExpression, body *BlockStatement, span common.Span) *WhileStatement {
	return &WhileStatement{Label: label, Condition: cond, Body: body, node: node{span}}
}

func (w *WhileStatement) isDeferrable() {}
