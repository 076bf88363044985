package parser

import (
	"github.com/ziust-lang/ziust/frontend/syntax"
)

// parsePattern parses one pattern:
//
//	_            x            mut x        42
//	Some(x)      Point { x, y: 0 }
func (p *parser) parsePattern() *Node {
	start := p.span()

	if p.Token.Is("_") {
		wildcard := p.leaf(syntax.KindWildcard)
		return p.finish(syntax.KindTerminalPattern, start, nil, wildcard)
	}

	if lit := p.parseOptLiteral(); lit != nil {
		return p.finish(syntax.KindTerminalPattern, start, nil, lit)
	}

	mut := p.optLeaf("mut", syntax.KindMutability)
	name := p.parseConstReference()
	if mut != nil {
		return p.finish(syntax.KindTerminalPattern, start, mut, name)
	}

	switch {
	case p.Token.Is("("):
		p.advance()
		elems := p.commaSeparated(")", p.parsePattern)
		return p.finish(syntax.KindEnumPattern, start, append([]*Node{name}, elems...)...)
	case p.Token.Is("{"):
		p.advance()
		fields := p.commaSeparated("}", func() *Node {
			start := p.span()
			field := p.expectIdent()
			var sub *Node
			if p.tryConsume(":") {
				sub = p.parsePattern()
			}
			return p.finish(syntax.KindStructPatternField, start, field, sub)
		})
		return p.finish(syntax.KindStructPattern, start, append([]*Node{name}, fields...)...)
	}
	return p.finish(syntax.KindTerminalPattern, start, nil, name)
}
