package parser

import (
	"github.com/ziust-lang/ziust/frontend/lexer"
	"github.com/ziust-lang/ziust/frontend/syntax"
)

// parseStatement parses one statement. With FlagAllowTail, a final
// expression directly followed by `}` is returned as tail instead.
func (p *parser) parseStatement(flags Flags) (stmt, tail *Node) {
	start := p.span()
	attrs := p.parseAttributes()
	hasAttrs := len(attrs.Children) > 0

	switch {
	case p.Token.Is("pub"), p.Token.Is("struct"), p.Token.Is("enum"), p.Token.Is("type"),
		p.Token.Is("trait"), p.Token.Is("impl"), p.Token.Is("fn"),
		p.Token.Is("const") && !p.peek().Is("if"):
		return p.parseItem(start, attrs), nil
	case p.Token.Is("let"):
		return p.parseLet(start, attrs), nil
	case p.Token.Is(";"):
		p.advance()
		return p.finish(syntax.KindNullStmt, start, attrs), nil
	case p.Token.Is("defer"):
		return p.parseDefer(start, attrs), nil
	case p.Token.Is("test"):
		return p.parseTest(start, attrs), nil
	case p.Token.Is("while"), p.Token.Is("for"),
		p.isLabel() && p.peek().Is(":") && (p.peekOffset(2).Is("while") || p.peekOffset(2).Is("for")):
		if hasAttrs {
			p.errorf(attrs.Span(), "attributes are not allowed on loops")
		}
		stmt := p.parseLoopStatement()
		p.tryConsume(";")
		return stmt, nil
	}

	if p.startsBlockLike() {
		expr := p.parseBlockLike()
		if flags.Has(FlagAllowTail) && !hasAttrs && p.Token.Is("}") {
			return nil, expr
		}
		p.tryConsume(";")
		if hasAttrs {
			return p.finish(syntax.KindExpressionStmt, start, attrs, expr), nil
		}
		return p.blockLikeStatement(expr), nil
	}

	expr := p.parseExpr()
	if p.tryConsume("=") {
		if hasAttrs {
			p.errorf(attrs.Span(), "attributes are not allowed on assignments")
		}
		rhs := p.parseExpr()
		p.expect(";")
		return p.finish(syntax.KindAssignmentStmt, start, expr, rhs), nil
	}
	if p.Token.Is("}") && !flags.Has(FlagDeferPayload) {
		if flags.Has(FlagAllowTail) && !hasAttrs {
			return nil, expr
		}
		return p.finish(syntax.KindExpressionStmt, start, attrs, expr), nil
	}
	p.expect(";")
	return p.finish(syntax.KindExpressionStmt, start, attrs, expr), nil
}

// blockLikeStatement turns a block-like expression into its statement form.
func (p *parser) blockLikeStatement(expr *Node) *Node {
	if expr.Kind == syntax.KindBlockExpr && expr.Child(2) == nil {
		return syntax.New(syntax.KindBlockStmt, expr.Span(), expr.Child(0), expr.Child(1))
	}
	if expr.Kind == syntax.KindBlockExpr {
		return syntax.New(syntax.KindExpressionStmt, expr.Span(), syntax.New(syntax.KindAttributeList, emptyAt(expr.Span())), expr)
	}
	return expr
}

// parseStatementList parses statements up to (not including) `}`.
func (p *parser) parseStatementList() *Node {
	start := p.span()
	var stmts []*Node
	for !p.Token.Is("}") {
		if lexer.IsEOF(p.Token) {
			p.errorf(p.span(), "expected `}`, got end of file")
		}
		stmt, _ := p.parseStatement(0)
		stmts = append(stmts, stmt)
	}
	return p.list(syntax.KindStatementList, start, stmts)
}

// parseBlockBody parses `{ statements tail? }`, returning the statement
// list and the optional tail.
func (p *parser) parseBlockBody() (*Node, *Node) {
	p.expect("{")
	start := p.span()
	var (
		stmts []*Node
		tail  *Node
	)
	for !p.Token.Is("}") {
		if lexer.IsEOF(p.Token) {
			p.errorf(p.span(), "expected `}`, got end of file")
		}
		stmt, t := p.parseStatement(FlagAllowTail)
		if t != nil {
			tail = t
			break
		}
		stmts = append(stmts, stmt)
	}
	list := p.list(syntax.KindStatementList, start, stmts)
	p.expect("}")
	return list, tail
}

func (p *parser) parseLet(start Span, attrs *Node) *Node {
	p.expect("let")

	simple := p.Token.Is("mut") ||
		(lexer.IsIdent(p.Token) && (p.peek().Is(":") || p.peek().Is("=")))
	if !simple {
		pattern := p.parsePattern()
		p.expect("=")
		value := p.parseExpr()
		p.expect("else")
		els := p.parseBlockExpr(nil, p.span())
		p.tryConsume(";")
		return p.finish(syntax.KindLetElseDecl, start, attrs, pattern, value, els)
	}

	patStart := p.span()
	mut := p.optLeaf("mut", syntax.KindMutability)
	name := p.expectIdent()
	var ty *Node
	if p.tryConsume(":") {
		ty = p.parseType()
	}
	p.expect("=")
	value := p.parseExpr()

	if ty == nil && p.Token.Is("else") {
		ref := syntax.New(syntax.KindConstReference, name.Span(), name)
		pattern := p.finish(syntax.KindTerminalPattern, patStart, mut, ref)
		p.advance()
		els := p.parseBlockExpr(nil, p.span())
		p.tryConsume(";")
		return p.finish(syntax.KindLetElseDecl, start, attrs, pattern, value, els)
	}

	p.expect(";")
	return p.finish(syntax.KindLetDecl, start, attrs, mut, name, ty, value)
}

// parseDefer parses `defer ('a, 'b)? (when 'c)? statement`.
func (p *parser) parseDefer(start Span, attrs *Node) *Node {
	p.expect("defer")

	labelsStart := p.span()
	var labels []*Node
	for p.isLabel() && !p.peek().Is(":") {
		labels = append(labels, p.optLabel())
		if !p.tryConsume(",") {
			break
		}
	}
	labelList := p.list(syntax.KindLabelList, labelsStart, labels)

	var when *Node
	if p.tryConsume("when") {
		when = p.optLabel()
		if when == nil {
			p.errorf(p.span(), "expected label after `when`, got `%s`", p.Token)
		}
	}

	payload, _ := p.parseStatement(FlagDeferPayload)
	return p.finish(syntax.KindDeferStmt, start, attrs, labelList, when, payload)
}

func (p *parser) parseTest(start Span, attrs *Node) *Node {
	p.expect("test")
	tok, ok := p.Token.(lexer.TokString)
	if !ok {
		p.errorf(p.span(), "expected test name string, got `%s`", p.Token)
	}
	name := syntax.Leaf(syntax.KindStringLiteral, tok.Raw, tok.Span())
	p.advance()
	p.expect("{")
	body := p.parseStatementList()
	p.expect("}")
	return p.finish(syntax.KindTestStmt, start, attrs, name, body)
}

// parseLoopStatement parses a possibly labeled while or for loop.
func (p *parser) parseLoopStatement() *Node {
	start := p.span()
	label := p.optLabel()
	if label != nil {
		p.expect(":")
	}

	if p.tryConsume("while") {
		cond := p.parseSimpleExpr()
		body := p.parseBlockStatement()
		return p.finish(syntax.KindWhileStmt, start, label, cond, body)
	}

	p.expect("for")
	pattern := p.parsePattern()
	p.expect("in")
	iter := p.parseSimpleExpr()
	body := p.parseBlockStatement()
	return p.finish(syntax.KindForStmt, start, label, pattern, iter, body)
}

// parseBlockStatement parses an unlabeled `{ statements }` loop body.
func (p *parser) parseBlockStatement() *Node {
	start := p.span()
	p.expect("{")
	body := p.parseStatementList()
	p.expect("}")
	return p.finish(syntax.KindBlockStmt, start, nil, body)
}
