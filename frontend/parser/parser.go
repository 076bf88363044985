// Package parser is the reference grammar for ziust source text. It builds
// the concrete syntax tree consumed by lowering and reports at most one
// syntax error per file.
package parser

import (
	"fmt"

	"github.com/ziust-lang/ziust/common"
	"github.com/ziust-lang/ziust/frontend/lexer"
	"github.com/ziust-lang/ziust/frontend/syntax"
)

type (
	Span = common.Span
	Node = syntax.Node
)

var SpanFrom = common.SpanFrom

type parser struct {
	TokenStream []lexer.Token
	Token       lexer.Token
	Pos         int
}

// Parse lexes and parses one source file.
func Parse(src, code string) (*Node, *common.Diagnostic) {
	tokens, err := lexer.Lex(src, code)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// ParseTokens parses a token stream ending in lexer.TokEOF.
func ParseTokens(tkS []lexer.Token) (tree *Node, err *common.Diagnostic) {
	if len(tkS) == 0 {
		return syntax.New(syntax.KindModule, common.SpanDefault()), nil
	}
	p := &parser{
		TokenStream: tkS,
		Token:       tkS[0],
	}

	defer func() {
		if r := recover(); r != nil {
			d, ok := r.(*common.Diagnostic)
			if !ok {
				panic(r)
			}
			tree, err = nil, d
		}
	}()

	start := p.span()
	var stmts []*Node
	for !lexer.IsEOF(p.Token) {
		stmt, _ := p.parseStatement(0)
		stmts = append(stmts, stmt)
	}
	span := start
	if len(stmts) > 0 {
		span = SpanFrom(stmts[0].Span(), p.prevSpan())
	}
	return syntax.New(syntax.KindModule, span, stmts...), nil
}

func (p *parser) advance() {
	p.Pos = min(p.Pos+1, len(p.TokenStream)-1)
	p.Token = p.TokenStream[p.Pos]
}

func (p *parser) peek() lexer.Token {
	return p.peekOffset(+1)
}

// peekOffset returns the token at p.Pos + n, clamped to the stream.
func (p *parser) peekOffset(n int) lexer.Token {
	idx := max(0, min(p.Pos+n, len(p.TokenStream)-1))
	return p.TokenStream[idx]
}

func (p *parser) tryConsume(s string) bool {
	if p.Token.Is(s) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expect(s string) {
	if !p.tryConsume(s) {
		p.errorf(p.span(), "expected `%s`, got `%s`", s, p.Token)
	}
}

func (p *parser) errorf(span Span, format string, args ...any) {
	common.PanicDiag(common.KindSyntax, fmt.Sprintf(format, args...), span)
}

func (p *parser) span() Span {
	return p.peekOffset(0).Span()
}

func (p *parser) prevSpan() Span {
	return p.peekOffset(-1).Span()
}

// emptyAt is a zero-width span at the start of s, used for lists that
// matched no tokens.
func emptyAt(s Span) Span {
	s.End = s.Start
	s.LineEnd = s.LineStart
	s.ColumnEnd = s.ColumnStart
	return s
}

// finish builds a node spanning from start to the last consumed token.
func (p *parser) finish(kind syntax.Kind, start Span, children ...*Node) *Node {
	return syntax.New(kind, SpanFrom(start, p.prevSpan()), children...)
}

// list builds an undelimited list node spanning its children.
func (p *parser) list(kind syntax.Kind, start Span, children []*Node) *Node {
	if len(children) == 0 {
		return syntax.New(kind, emptyAt(start))
	}
	return syntax.New(kind, SpanFrom(children[0].Span(), children[len(children)-1].Span()), children...)
}

func (p *parser) leaf(kind syntax.Kind) *Node {
	n := syntax.Leaf(kind, p.Token.String(), p.span())
	p.advance()
	return n
}

// optLeaf consumes s as a leaf of the given kind if present.
func (p *parser) optLeaf(s string, kind syntax.Kind) *Node {
	if p.Token.Is(s) {
		return p.leaf(kind)
	}
	return nil
}

func (p *parser) expectIdent() *Node {
	if ident, ok := p.Token.(lexer.TokIdent); ok {
		p.advance()
		return syntax.Leaf(syntax.KindIdentifier, ident.Raw, ident.Span())
	}
	p.errorf(p.span(), "expected identifier, got `%s`", p.Token)
	return nil
}

func (p *parser) isLabel() bool {
	_, ok := p.Token.(lexer.TokLabel)
	return ok
}

func (p *parser) optLabel() *Node {
	if lbl, ok := p.Token.(lexer.TokLabel); ok {
		p.advance()
		return syntax.Leaf(syntax.KindLabel, lbl.String(), lbl.Span())
	}
	return nil
}

// commaSeparated parses items until closing, allowing a trailing comma,
// and consumes closing.
func (p *parser) commaSeparated(closing string, parse func() *Node) []*Node {
	var items []*Node
	for !p.Token.Is(closing) {
		items = append(items, parse())
		if !p.tryConsume(",") {
			break
		}
	}
	p.expect(closing)
	return items
}

// matchingClose returns the position of the token closing the bracket at
// the current position, or -1.
func (p *parser) matchingClose(open, closing string) int {
	depth := 0
	for i := p.Pos; i < len(p.TokenStream); i++ {
		tok := p.TokenStream[i]
		switch {
		case tok.Is(open):
			depth++
		case tok.Is(closing):
			depth--
			if depth == 0 {
				return i
			}
		case lexer.IsEOF(tok):
			return -1
		}
	}
	return -1
}
