package parser

import "github.com/ziust-lang/ziust/frontend/syntax"

// parseOptTemplateParams parses `[N, M: 1 | 2]` if present.
func (p *parser) parseOptTemplateParams() *Node {
	if !p.Token.Is("[") {
		return nil
	}
	start := p.span()
	p.advance()
	params := p.commaSeparated("]", func() *Node {
		start := p.span()
		name := p.expectIdent()
		children := []*Node{name}
		if p.tryConsume(":") {
			children = append(children, p.parsePostfix())
			for p.tryConsume("|") {
				children = append(children, p.parsePostfix())
			}
		}
		return p.finish(syntax.KindTemplateParam, start, children...)
	})
	return p.finish(syntax.KindTemplateParamList, start, params...)
}

// parseOptGenericParams parses `<T, U: Bound>` if present.
func (p *parser) parseOptGenericParams() *Node {
	if !p.Token.Is("<") {
		return nil
	}
	start := p.span()
	p.advance()
	params := p.commaSeparated(">", func() *Node {
		start := p.span()
		name := p.expectIdent()
		var bound *Node
		if p.tryConsume(":") {
			bound = p.parseGenericArgument()
		}
		return p.finish(syntax.KindGenericParam, start, name, bound)
	})
	return p.finish(syntax.KindGenericParamList, start, params...)
}

// parseGenericArgument parses a type or a parenthesised tuple of generic
// arguments.
func (p *parser) parseGenericArgument() *Node {
	if !p.Token.Is("(") {
		return p.parseType()
	}
	start := p.span()
	p.advance()
	args := p.commaSeparated(")", p.parseGenericArgument)
	return p.finish(syntax.KindGenericTuple, start, args...)
}
