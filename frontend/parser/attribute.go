package parser

import "github.com/ziust-lang/ziust/frontend/syntax"

// parseAttributes parses zero or more attribute groups:
//
//	#[inline]
//	#[cfg(debug), doc("x")]
func (p *parser) parseAttributes() *Node {
	start := p.span()
	var attrs []*Node
	for p.Token.Is("#") {
		attrs = append(attrs, p.parseAttribute())
	}
	return p.list(syntax.KindAttributeList, start, attrs)
}

func (p *parser) parseAttribute() *Node {
	start := p.span()
	p.expect("#")
	p.expect("[")
	members := p.commaSeparated("]", p.parseAttributeMember)
	if len(members) == 0 {
		p.errorf(SpanFrom(start, p.prevSpan()), "empty attribute")
	}
	return p.finish(syntax.KindAttribute, start, members...)
}

func (p *parser) parseAttributeMember() *Node {
	start := p.span()
	name := p.parseConstReference()
	var arg *Node
	if p.Token.Is("(") {
		arg = p.parseArgumentGroup()
	}
	return p.finish(syntax.KindAttributeMember, start, name, arg)
}

func (p *parser) parseArgumentGroup() *Node {
	start := p.span()
	p.expect("(")
	args := p.commaSeparated(")", p.parseExpr)
	return p.finish(syntax.KindArgumentGroup, start, args...)
}
