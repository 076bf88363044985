package ast

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ziust-lang/ziust/common"
)

type recorder struct {
	events []string
	skip   func(Node) bool
}

func (r *recorder) Enter(n Node) bool {
	r.events = append(r.events, fmt.Sprintf("+%T", n))
	return r.skip == nil || !r.skip(n)
}

func (r *recorder) Exit(n Node) {
	r.events = append(r.events, fmt.Sprintf("-%T", n))
}

// sample builds `fn f(self) { let x = 1; x }`.
func sample() *Module {
	span := common.SpanDefault()
	ident := func(s string) Ident { return NewIdent(s, span) }
	ref := func(s string) *ConstReference { return NewConstReference([]Ident{ident(s)}, span) }

	let := NewLetDeclaration(nil, false, ident("x"), nil, NewIntegerLiteral("1", "", IntFromInt(1), span), span)
	body := NewBlockExpression(nil, []Statement{let}, ref("x"), span)
	fn := NewFnDeclaration(nil, false, ident("f"), nil, nil, []FnParameter{NewSelfParameter(false, false, span)}, nil, body, span)
	return NewModule([]Statement{fn}, span)
}

func TestWalkOrder(t *testing.T) {
	r := &recorder{}
	Walk(r, sample())

	assert.Equal(t, []string{
		"+*ast.Module",
		"+*ast.FnDeclaration",
		"+*ast.SelfParameter",
		"-*ast.SelfParameter",
		"+*ast.BlockExpression",
		"+*ast.LetDeclaration",
		"+*ast.Literal",
		"-*ast.Literal",
		"-*ast.LetDeclaration",
		"+*ast.ConstReference",
		"-*ast.ConstReference",
		"-*ast.BlockExpression",
		"-*ast.FnDeclaration",
		"-*ast.Module",
	}, r.events)
}

func TestWalkPrune(t *testing.T) {
	r := &recorder{skip: func(n Node) bool {
		_, ok := n.(*BlockExpression)
		return ok
	}}
	Walk(r, sample())

	assert.Contains(t, r.events, "+*ast.BlockExpression")
	assert.NotContains(t, r.events, "-*ast.BlockExpression")
	assert.NotContains(t, r.events, "+*ast.LetDeclaration")
}

func TestInspectSkipsTypedNil(t *testing.T) {
	span := common.SpanDefault()
	var empty *BlockExpression
	ifExpr := NewIfExpression(false, NewIfCondition(nil, NewBoolLiteral(true, span), span),
		NewBlockExpression(nil, nil, nil, span), nil, empty, span)

	count := 0
	Inspect(ifExpr, func(Node) bool {
		count++
		return true
	})
	// if, condition, literal, then block
	assert.Equal(t, 4, count)
}
