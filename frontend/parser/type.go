package parser

import (
	"github.com/ziust-lang/ziust/frontend/syntax"
)

func (p *parser) parseType() *Node {
	start := p.span()

	switch {
	case p.Token.Is("!"):
		return p.leaf(syntax.KindNeverType)

	case p.Token.Is("("):
		p.advance()
		members := p.commaSeparated(")", p.parseType)
		return p.finish(syntax.KindTupleType, start, members...)

	case p.Token.Is("?"), p.Token.Is("&"), p.Token.Is("*"):
		optional := p.optLeaf("?", syntax.KindOptionalMarker)
		kind := syntax.KindReferenceType
		switch {
		case p.tryConsume("&"):
		case p.tryConsume("*"):
			kind = syntax.KindPointerType
		default:
			p.errorf(p.span(), "expected `&` or `*` after `?`, got `%s`", p.Token)
		}
		mut := p.optLeaf("mut", syntax.KindMutability)
		inner := p.parseType()
		return p.finish(kind, start, optional, mut, inner)

	case p.Token.Is("["):
		p.advance()
		mut := p.optLeaf("mut", syntax.KindMutability)
		elem := p.parseType()
		if !p.tryConsume(";") {
			p.expect("]")
			return p.finish(syntax.KindSliceType, start, mut, elem)
		}
		var length *Node
		if !p.tryConsume("_") {
			length = p.parseExpr()
		}
		p.expect("]")
		return p.finish(syntax.KindArrayType, start, mut, elem, length)

	case p.startsPath():
		name := p.parseConstReference()
		var targs, gargs *Node
		if p.Token.Is("[") {
			targsStart := p.span()
			p.advance()
			args := p.commaSeparated("]", p.parseExpr)
			targs = p.finish(syntax.KindTemplateArgumentList, targsStart, args...)
		}
		if p.Token.Is("<") {
			gargsStart := p.span()
			p.advance()
			args := p.commaSeparated(">", p.parseGenericArgument)
			gargs = p.finish(syntax.KindGenericArgumentList, gargsStart, args...)
		}
		return p.finish(syntax.KindTerminalType, start, name, targs, gargs)
	}

	p.errorf(p.span(), "expected type, got `%s`", p.Token)
	return nil
}
