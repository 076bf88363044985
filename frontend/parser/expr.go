package parser

import (
	"github.com/ziust-lang/ziust/frontend/lexer"
	"github.com/ziust-lang/ziust/frontend/syntax"
)

func (p *parser) parseExpr() *Node {
	return p.parseOr()
}

func (p *parser) parseOr() *Node {
	lhs := p.parseAnd()
	for p.tryConsume("||") {
		rhs := p.parseAnd()
		lhs = syntax.New(syntax.KindOrExpr, SpanFrom(lhs.Span(), rhs.Span()), lhs, rhs)
	}
	return lhs
}

func (p *parser) parseAnd() *Node {
	lhs := p.parseCast()
	for p.tryConsume("&&") {
		rhs := p.parseCast()
		lhs = syntax.New(syntax.KindAndExpr, SpanFrom(lhs.Span(), rhs.Span()), lhs, rhs)
	}
	return lhs
}

func (p *parser) parseCast() *Node {
	expr := p.parsePostfix()
	for p.tryConsume("as") {
		ty := p.parseType()
		expr = syntax.New(syntax.KindAsExpr, SpanFrom(expr.Span(), ty.Span()), expr, ty)
	}
	return expr
}

// parsePostfix parses a primary expression followed by `.member` accesses.
func (p *parser) parsePostfix() *Node {
	expr := p.parsePrimary()
	for p.tryConsume(".") {
		member := p.expectIdent()
		expr = syntax.New(syntax.KindMemberExpr, SpanFrom(expr.Span(), member.Span()), expr, member)
	}
	return expr
}

// parseSimpleExpr parses the head of a for, while or match, which may not
// be a block-like or control-flow expression.
func (p *parser) parseSimpleExpr() *Node {
	expr := p.parsePostfix()
	switch expr.Kind {
	case syntax.KindBlockExpr, syntax.KindIfExpr, syntax.KindLoopExpr, syntax.KindMatchExpr,
		syntax.KindReturnExpr, syntax.KindBreakExpr, syntax.KindContinueExpr:
		p.errorf(expr.Span(), "expected simple expression, got %s", expr.Kind)
	}
	return expr
}

func (p *parser) parsePrimary() *Node {
	start := p.span()

	if lit := p.parseOptLiteral(); lit != nil {
		return lit
	}

	switch {
	case p.Token.Is("("):
		p.advance()
		exprs := p.commaSeparated(")", p.parseExpr)
		return p.finish(syntax.KindParenthesisedExpr, start, exprs...)

	case p.Token.Is("@"):
		p.advance()
		name := p.expectIdent()
		args := p.parseArgumentGroup()
		return p.finish(syntax.KindBuiltinCall, start, name, args)

	case p.startsPath():
		ref := p.parseConstReference()
		if p.Token.Is("!") && p.peek().Is("(") {
			p.advance()
			args := p.parseArgumentGroup()
			return p.finish(syntax.KindMacroCall, start, ref, args)
		}
		return ref

	case p.startsBlockLike():
		return p.parseBlockLike()

	case p.tryConsume("return"):
		label := p.optLabel()
		value := p.parseOptValue()
		return p.finish(syntax.KindReturnExpr, start, label, value)

	case p.tryConsume("break"):
		label := p.optLabel()
		value := p.parseOptValue()
		return p.finish(syntax.KindBreakExpr, start, label, value)

	case p.tryConsume("continue"):
		label := p.optLabel()
		return p.finish(syntax.KindContinueExpr, start, label)
	}

	p.errorf(p.span(), "expected expression, got `%s`", p.Token)
	return nil
}

// parseOptValue parses the operand of return/break if one follows.
func (p *parser) parseOptValue() *Node {
	switch {
	case p.Token.Is(";"), p.Token.Is("}"), p.Token.Is(")"), p.Token.Is("]"),
		p.Token.Is(","), p.Token.Is("else"), p.Token.Is("=>"), lexer.IsEOF(p.Token):
		return nil
	}
	return p.parseExpr()
}

// parseOptLiteral parses a literal, folding a leading `-` into numbers.
func (p *parser) parseOptLiteral() *Node {
	start := p.span()
	switch tok := p.Token.(type) {
	case lexer.TokNumber:
		p.advance()
		return syntax.Leaf(numberKind(tok), tok.Raw, tok.Span())
	case lexer.TokString:
		p.advance()
		return syntax.Leaf(syntax.KindStringLiteral, tok.Raw, tok.Span())
	case lexer.TokChar:
		p.advance()
		return syntax.Leaf(syntax.KindCharLiteral, tok.Raw, tok.Span())
	case lexer.TokKeyword:
		if tok.Is("true") || tok.Is("false") {
			p.advance()
			return syntax.Leaf(syntax.KindBoolLiteral, tok.String(), tok.Span())
		}
	case lexer.TokPunct:
		if tok.Is("-") {
			num, ok := p.peek().(lexer.TokNumber)
			if !ok {
				p.errorf(p.peek().Span(), "expected number after `-`, got `%s`", p.peek())
			}
			p.advance()
			p.advance()
			return syntax.Leaf(numberKind(num), "-"+num.Raw, SpanFrom(start, num.Span()))
		}
	}
	return nil
}

func numberKind(tok lexer.TokNumber) syntax.Kind {
	if tok.IsFloat {
		return syntax.KindFloatLiteral
	}
	return syntax.KindIntegerLiteral
}

// startsBlockLike reports whether the current token starts a block, if,
// loop or match, labeled or not.
func (p *parser) startsBlockLike() bool {
	tok := p.Token
	if p.isLabel() && p.peek().Is(":") {
		tok = p.peekOffset(2)
	}
	switch {
	case tok.Is("{"), tok.Is("if"), tok.Is("loop"), tok.Is("match"):
		return true
	case tok.Is("const"):
		return p.peekOffset(1).Is("if") && !p.isLabel()
	}
	return false
}

func (p *parser) parseBlockLike() *Node {
	start := p.span()
	label := p.optLabel()
	if label != nil {
		p.expect(":")
	}

	switch {
	case p.Token.Is("{"):
		return p.parseBlockExpr(label, start)
	case p.Token.Is("loop"):
		p.advance()
		p.expect("{")
		body := p.parseStatementList()
		p.expect("}")
		return p.finish(syntax.KindLoopExpr, start, label, body)
	case p.Token.Is("match"):
		return p.parseMatch(label, start)
	case label == nil && (p.Token.Is("if") || p.Token.Is("const")):
		return p.parseIf()
	}
	p.errorf(p.span(), "expected block, `loop` or `match` after label, got `%s`", p.Token)
	return nil
}

func (p *parser) parseBlockExpr(label *Node, start Span) *Node {
	stmts, tail := p.parseBlockBody()
	return p.finish(syntax.KindBlockExpr, start, label, stmts, tail)
}

// parseIf parses `const? if cond { } (else if cond { })* (else { })?`.
func (p *parser) parseIf() *Node {
	start := p.span()
	constMod := p.optLeaf("const", syntax.KindConstModifier)
	p.expect("if")
	cond := p.parseIfCondition()
	then := p.parseBlockExpr(nil, p.span())

	elseIfsStart := p.span()
	var (
		elseIfs []*Node
		els     *Node
	)
	for p.Token.Is("else") {
		elseStart := p.span()
		p.advance()
		if p.tryConsume("if") {
			cond := p.parseIfCondition()
			body := p.parseBlockExpr(nil, p.span())
			elseIfs = append(elseIfs, p.finish(syntax.KindElseIf, elseStart, cond, body))
			continue
		}
		els = p.parseBlockExpr(nil, p.span())
		break
	}
	elseIfList := p.list(syntax.KindElseIfList, elseIfsStart, elseIfs)

	return p.finish(syntax.KindIfExpr, start, constMod, cond, then, elseIfList, els)
}

func (p *parser) parseIfCondition() *Node {
	start := p.span()
	var pattern *Node
	if p.tryConsume("let") {
		pattern = p.parsePattern()
		p.expect("=")
	}
	expr := p.parseExpr()
	return p.finish(syntax.KindIfCondition, start, pattern, expr)
}

func (p *parser) parseMatch(label *Node, start Span) *Node {
	p.expect("match")
	subject := p.parseSimpleExpr()

	armsStart := p.span()
	p.expect("{")
	var arms []*Node
	for !p.Token.Is("}") {
		armStart := p.span()
		pattern := p.parsePattern()
		var guard *Node
		if p.tryConsume("if") {
			guard = p.parseExpr()
		}
		p.expect("=>")
		blockLike := p.startsBlockLike()
		value := p.parseExpr()
		arms = append(arms, p.finish(syntax.KindMatchArm, armStart, pattern, guard, value))
		if !p.tryConsume(",") && !blockLike && !p.Token.Is("}") {
			p.errorf(p.span(), "expected `,` after match arm, got `%s`", p.Token)
		}
	}
	p.expect("}")
	armList := p.finish(syntax.KindMatchArmList, armsStart, arms...)

	return p.finish(syntax.KindMatchExpr, start, label, subject, armList)
}
