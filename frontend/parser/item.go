package parser

import (
	"github.com/ziust-lang/ziust/frontend/lexer"
	"github.com/ziust-lang/ziust/frontend/syntax"
)

func (p *parser) parseItem(start Span, attrs *Node) *Node {
	vis := p.optLeaf("pub", syntax.KindVisibility)

	switch {
	case p.Token.Is("struct"):
		return p.parseStruct(start, attrs, vis)
	case p.Token.Is("enum"):
		return p.parseEnum(start, attrs, vis)
	case p.Token.Is("type"):
		return p.parseTypeDecl(start, attrs, vis)
	case p.Token.Is("trait"):
		return p.parseTrait(start, attrs, vis)
	case p.Token.Is("const"):
		return p.parseConst(start, attrs, vis)
	case p.Token.Is("fn"):
		return p.parseFn(start, attrs, vis)
	case p.Token.Is("impl"):
		if vis != nil {
			p.errorf(vis.Span(), "`pub` is not allowed on impl blocks")
		}
		return p.parseImpl(start, attrs)
	}
	p.errorf(p.span(), "expected item after `pub`, got `%s`", p.Token)
	return nil
}

func (p *parser) parseStruct(start Span, attrs, vis *Node) *Node {
	p.expect("struct")
	name := p.expectIdent()
	tparams := p.parseOptTemplateParams()
	gparams := p.parseOptGenericParams()

	listStart := p.span()
	p.expect("{")
	members := p.commaSeparated("}", func() *Node {
		start := p.span()
		attrs := p.parseAttributes()
		vis := p.optLeaf("pub", syntax.KindVisibility)
		name := p.expectIdent()
		p.expect(":")
		ty := p.parseType()
		return p.finish(syntax.KindStructMember, start, attrs, vis, name, ty)
	})
	list := p.finish(syntax.KindStructMemberList, listStart, members...)

	return p.finish(syntax.KindStructDecl, start, attrs, vis, name, tparams, gparams, list)
}

func (p *parser) parseEnum(start Span, attrs, vis *Node) *Node {
	p.expect("enum")
	name := p.expectIdent()
	tparams := p.parseOptTemplateParams()
	gparams := p.parseOptGenericParams()

	var tagType *Node
	if p.tryConsume(":") {
		tagType = p.parseType()
	}

	listStart := p.span()
	p.expect("{")
	members := p.commaSeparated("}", func() *Node {
		start := p.span()
		attrs := p.parseAttributes()
		name := p.expectIdent()
		var types, tag *Node
		if p.Token.Is("(") {
			typesStart := p.span()
			p.advance()
			list := p.commaSeparated(")", p.parseType)
			types = p.finish(syntax.KindTypeList, typesStart, list...)
		}
		if p.tryConsume("=") {
			tag = p.parseExpr()
		}
		return p.finish(syntax.KindEnumMember, start, attrs, name, types, tag)
	})
	list := p.finish(syntax.KindEnumMemberList, listStart, members...)

	return p.finish(syntax.KindEnumDecl, start, attrs, vis, name, tparams, gparams, tagType, list)
}

func (p *parser) parseTypeDecl(start Span, attrs, vis *Node) *Node {
	p.expect("type")
	name := p.expectIdent()
	tparams := p.parseOptTemplateParams()
	gparams := p.parseOptGenericParams()
	p.expect("=")
	ty := p.parseType()
	p.expect(";")
	return p.finish(syntax.KindTypeDecl, start, attrs, vis, name, tparams, gparams, ty)
}

func (p *parser) parseTrait(start Span, attrs, vis *Node) *Node {
	p.expect("trait")
	name := p.expectIdent()
	tparams := p.parseOptTemplateParams()

	listStart := p.span()
	p.expect("{")
	var members []*Node
	for !p.Token.Is("}") {
		memberStart := p.span()
		memberAttrs := p.parseAttributes()
		switch {
		case p.tryConsume("const"):
			name := p.expectIdent()
			p.expect(":")
			ty := p.parseType()
			p.expect(";")
			members = append(members, p.finish(syntax.KindTraitConst, memberStart, memberAttrs, name, ty))
		case p.tryConsume("fn"):
			name := p.expectIdent()
			tparams := p.parseOptTemplateParams()
			gparams := p.parseOptGenericParams()
			params := p.parseParams()
			ret := p.parseOptReturnType()
			p.expect(";")
			members = append(members, p.finish(syntax.KindTraitFn, memberStart, memberAttrs, name, tparams, gparams, params, ret))
		default:
			p.errorf(p.span(), "expected `const` or `fn` in trait body, got `%s`", p.Token)
		}
	}
	p.expect("}")
	list := p.finish(syntax.KindTraitMemberList, listStart, members...)

	return p.finish(syntax.KindTraitDecl, start, attrs, vis, name, tparams, list)
}

// parseImpl parses `impl [..]? <..>? Type (for Type)? { members }`.
func (p *parser) parseImpl(start Span, attrs *Node) *Node {
	p.expect("impl")

	var tparams *Node
	if p.Token.Is("[") {
		// `impl [T] {` is an impl on a slice type, not template parameters.
		after := p.peekOffset(p.matchingClose("[", "]") - p.Pos + 1)
		if !after.Is("{") && !after.Is("for") {
			tparams = p.parseOptTemplateParams()
		}
	}
	gparams := p.parseOptGenericParams()

	var trait, target *Node
	first := p.parseType()
	if p.tryConsume("for") {
		trait, target = first, p.parseType()
	} else {
		target = first
	}

	listStart := p.span()
	p.expect("{")
	var members []*Node
	for !p.Token.Is("}") {
		if lexer.IsEOF(p.Token) {
			p.errorf(p.span(), "expected `}`, got end of file")
		}
		memberStart := p.span()
		memberAttrs := p.parseAttributes()
		vis := p.optLeaf("pub", syntax.KindVisibility)
		switch {
		case p.Token.Is("const"):
			members = append(members, p.parseConst(memberStart, memberAttrs, vis))
		case p.Token.Is("fn"):
			members = append(members, p.parseFn(memberStart, memberAttrs, vis))
		default:
			p.errorf(p.span(), "expected `const` or `fn` in impl body, got `%s`", p.Token)
		}
	}
	p.expect("}")
	list := p.finish(syntax.KindImplMemberList, listStart, members...)

	return p.finish(syntax.KindImplDecl, start, attrs, tparams, gparams, trait, target, list)
}

func (p *parser) parseConst(start Span, attrs, vis *Node) *Node {
	p.expect("const")
	name := p.expectIdent()
	p.expect(":")
	ty := p.parseType()
	p.expect("=")
	value := p.parseExpr()
	p.expect(";")
	return p.finish(syntax.KindConstDecl, start, attrs, vis, name, ty, value)
}

func (p *parser) parseFn(start Span, attrs, vis *Node) *Node {
	p.expect("fn")
	name := p.expectIdent()
	tparams := p.parseOptTemplateParams()
	gparams := p.parseOptGenericParams()
	params := p.parseParams()
	ret := p.parseOptReturnType()
	body := p.parseBlockExpr(nil, p.span())
	return p.finish(syntax.KindFnDecl, start, attrs, vis, name, tparams, gparams, params, ret, body)
}

func (p *parser) parseOptReturnType() *Node {
	if p.tryConsume("->") {
		return p.parseType()
	}
	return nil
}

// parseParams parses a parameter list:
//
//	(self, mut count: u32)
//	(&mut self)
func (p *parser) parseParams() *Node {
	start := p.span()
	p.expect("(")
	params := p.commaSeparated(")", func() *Node {
		start := p.span()
		borrow := p.optLeaf("&", syntax.KindBorrow)
		mut := p.optLeaf("mut", syntax.KindMutability)
		if p.tryConsume("self") {
			return p.finish(syntax.KindSelfParam, start, borrow, mut)
		}
		if borrow != nil {
			p.errorf(p.span(), "expected `self` after `&`, got `%s`", p.Token)
		}
		name := p.expectIdent()
		p.expect(":")
		ty := p.parseType()
		return p.finish(syntax.KindParam, start, mut, name, ty)
	})
	return p.finish(syntax.KindParamList, start, params...)
}
