package lower

import (
	"github.com/ziust-lang/ziust/common"
	"github.com/ziust-lang/ziust/frontend/ast"
	"github.com/ziust-lang/ziust/frontend/syntax"
)

// StructDecl: attrs pub? name tparams? gparams? members
func lowerStruct(l *lowerer, n *syntax.Node) any {
	return ast.NewStructDeclaration(
		l.attributes(n),
		l.flag(n, 1, syntax.KindVisibility),
		slot[ast.Ident](l, n, 2, "name"),
		optSlot[[]*ast.TemplateParameter](l, n, 3, "template parameters"),
		optSlot[[]*ast.GenericParameter](l, n, 4, "generic parameters"),
		slot[[]*ast.StructMember](l, n, 5, "member list"),
		n.Span(),
	)
}

func lowerStructMemberList(l *lowerer, n *syntax.Node) any {
	return items[*ast.StructMember](l, n, 0, "struct member")
}

func lowerStructMember(l *lowerer, n *syntax.Node) any {
	return ast.NewStructMember(
		l.attributes(n),
		l.flag(n, 1, syntax.KindVisibility),
		slot[ast.Ident](l, n, 2, "name"),
		slot[ast.Type](l, n, 3, "type"),
		n.Span(),
	)
}

// EnumDecl: attrs pub? name tparams? gparams? tag-type? members
func lowerEnum(l *lowerer, n *syntax.Node) any {
	decl := ast.NewEnumDeclaration(
		l.attributes(n),
		l.flag(n, 1, syntax.KindVisibility),
		slot[ast.Ident](l, n, 2, "name"),
		optSlot[[]*ast.TemplateParameter](l, n, 3, "template parameters"),
		optSlot[[]*ast.GenericParameter](l, n, 4, "generic parameters"),
		optSlot[ast.Type](l, n, 5, "tag type"),
		slot[[]*ast.EnumMember](l, n, 6, "member list"),
		n.Span(),
	)
	l.assignDiscriminants(decl)
	return decl
}

func lowerEnumMemberList(l *lowerer, n *syntax.Node) any {
	return items[*ast.EnumMember](l, n, 0, "enum member")
}

func lowerEnumMember(l *lowerer, n *syntax.Node) any {
	return ast.NewEnumMember(
		l.attributes(n),
		slot[ast.Ident](l, n, 1, "name"),
		optSlot[[]ast.Type](l, n, 2, "payload types"),
		optSlot[ast.Expression](l, n, 3, "tag value"),
		n.Span(),
	)
}

// assignDiscriminants computes the effective tag of every member. The
// first member without a tag takes the minimum of the tag type (0 without
// an integer tag type), each later one the previous value plus one. An
// integer literal tag resets the sequence; any other tag leaves the
// following implicit members unknown until the next literal.
func (l *lowerer) assignDiscriminants(decl *ast.EnumDeclaration) {
	tagType, typed := ast.IntTypeOf(decl.TagType)
	next := ast.IntValue{}
	if typed {
		next = tagType.Min()
	}
	known, exhausted := true, false

	for _, m := range decl.Members {
		span := m.Span()
		switch tag := m.TagValue.(type) {
		case nil:
			if known && exhausted {
				l.fail(common.KindIntegerOverflow, span, "discriminant of `%s` overflows", m.Name.Raw)
			}
		case *ast.Literal:
			if tag.Kind != ast.LiteralInteger {
				known = false
				break
			}
			next, known, exhausted = tag.Int, true, false
			span = tag.Span()
		default:
			known = false
		}
		if !known {
			continue
		}

		if typed && !tagType.Contains(next) {
			l.fail(common.KindIntegerOverflow, span, "discriminant %s of `%s` is out of range for `%s` (%s..=%s)",
				next, m.Name.Raw, tagType.Name, tagType.Min(), tagType.Max())
		}
		v := next
		m.Discriminant = &v

		var ok bool
		next, ok = next.Inc()
		exhausted = !ok
	}
}

func lowerTypeList(l *lowerer, n *syntax.Node) any {
	return items[ast.Type](l, n, 0, "type")
}

// TypeDecl: attrs pub? name tparams? gparams? type
func lowerTypeDecl(l *lowerer, n *syntax.Node) any {
	return ast.NewTypeDeclaration(
		l.attributes(n),
		l.flag(n, 1, syntax.KindVisibility),
		slot[ast.Ident](l, n, 2, "name"),
		optSlot[[]*ast.TemplateParameter](l, n, 3, "template parameters"),
		optSlot[[]*ast.GenericParameter](l, n, 4, "generic parameters"),
		slot[ast.Type](l, n, 5, "type"),
		n.Span(),
	)
}

// TraitDecl: attrs pub? name tparams? members
func lowerTrait(l *lowerer, n *syntax.Node) any {
	return ast.NewTraitDeclaration(
		l.attributes(n),
		l.flag(n, 1, syntax.KindVisibility),
		slot[ast.Ident](l, n, 2, "name"),
		optSlot[[]*ast.TemplateParameter](l, n, 3, "template parameters"),
		slot[[]ast.TraitMember](l, n, 4, "member list"),
		n.Span(),
	)
}

func lowerTraitMemberList(l *lowerer, n *syntax.Node) any {
	return items[ast.TraitMember](l, n, 0, "trait member")
}

func lowerTraitConst(l *lowerer, n *syntax.Node) any {
	return ast.NewTraitConstMember(
		l.attributes(n),
		slot[ast.Ident](l, n, 1, "name"),
		slot[ast.Type](l, n, 2, "type"),
		n.Span(),
	)
}

// TraitFn: attrs name tparams? gparams? params return-type?
func lowerTraitFn(l *lowerer, n *syntax.Node) any {
	return ast.NewTraitFnMember(
		l.attributes(n),
		slot[ast.Ident](l, n, 1, "name"),
		optSlot[[]*ast.TemplateParameter](l, n, 2, "template parameters"),
		optSlot[[]*ast.GenericParameter](l, n, 3, "generic parameters"),
		slot[[]ast.FnParameter](l, n, 4, "parameter list"),
		optSlot[ast.Type](l, n, 5, "return type"),
		n.Span(),
	)
}

// ImplDecl: attrs tparams? gparams? trait? target members
func lowerImpl(l *lowerer, n *syntax.Node) any {
	return ast.NewImplDeclaration(
		l.attributes(n),
		optSlot[[]*ast.TemplateParameter](l, n, 1, "template parameters"),
		optSlot[[]*ast.GenericParameter](l, n, 2, "generic parameters"),
		optSlot[ast.Type](l, n, 3, "trait"),
		slot[ast.Type](l, n, 4, "target type"),
		slot[[]ast.ImplMember](l, n, 5, "member list"),
		n.Span(),
	)
}

func lowerImplMemberList(l *lowerer, n *syntax.Node) any {
	return items[ast.ImplMember](l, n, 0, "impl member")
}

// ConstDecl: attrs pub? name type value
func lowerConst(l *lowerer, n *syntax.Node) any {
	decl := ast.NewConstDeclaration(
		l.attributes(n),
		l.flag(n, 1, syntax.KindVisibility),
		slot[ast.Ident](l, n, 2, "name"),
		slot[ast.Type](l, n, 3, "type"),
		slot[ast.Expression](l, n, 4, "value"),
		n.Span(),
	)
	l.checkLiteralFits(decl.Type, decl.Value)
	return decl
}

// FnDecl: attrs pub? name tparams? gparams? params return-type? body
func lowerFn(l *lowerer, n *syntax.Node) any {
	attrs := l.attributes(n)
	isPublic := l.flag(n, 1, syntax.KindVisibility)
	name := slot[ast.Ident](l, n, 2, "name")
	tparams := optSlot[[]*ast.TemplateParameter](l, n, 3, "template parameters")
	gparams := optSlot[[]*ast.GenericParameter](l, n, 4, "generic parameters")
	params := slot[[]ast.FnParameter](l, n, 5, "parameter list")
	ret := optSlot[ast.Type](l, n, 6, "return type")

	l.enter(nil, ast.ConstructFunction, n.Span())
	defer l.labels.Pop()
	body := slot[*ast.BlockExpression](l, n, 7, "body")

	return ast.NewFnDeclaration(attrs, isPublic, name, tparams, gparams, params, ret, body, n.Span())
}

func lowerParamList(l *lowerer, n *syntax.Node) any {
	return items[ast.FnParameter](l, n, 0, "parameter")
}

// SelfParam: borrow? mut?
func lowerSelfParam(l *lowerer, n *syntax.Node) any {
	return ast.NewSelfParameter(
		l.flag(n, 0, syntax.KindBorrow),
		l.flag(n, 1, syntax.KindMutability),
		n.Span(),
	)
}

// Param: mut? name type
func lowerParam(l *lowerer, n *syntax.Node) any {
	return ast.NewNormalParameter(
		l.flag(n, 0, syntax.KindMutability),
		slot[ast.Ident](l, n, 1, "name"),
		slot[ast.Type](l, n, 2, "type"),
		n.Span(),
	)
}
