package parser

import (
	"github.com/ziust-lang/ziust/frontend/lexer"
	"github.com/ziust-lang/ziust/frontend/syntax"
)

// parseConstReference parses `a::b::c`. A leading `self` is accepted as a
// segment so receivers can be referenced.
func (p *parser) parseConstReference() *Node {
	start := p.span()
	segments := []*Node{p.parsePathSegment()}
	for p.Token.Is("::") && lexer.IsIdent(p.peek()) {
		p.advance()
		segments = append(segments, p.expectIdent())
	}
	return p.finish(syntax.KindConstReference, start, segments...)
}

func (p *parser) parsePathSegment() *Node {
	if p.Token.Is("self") {
		return p.leaf(syntax.KindIdentifier)
	}
	return p.expectIdent()
}

func (p *parser) startsPath() bool {
	return lexer.IsIdent(p.Token) || p.Token.Is("self")
}
