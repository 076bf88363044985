package lower

import (
	"github.com/ziust-lang/ziust/frontend/ast"
	"github.com/ziust-lang/ziust/frontend/syntax"
)

func lowerNeverType(_ *lowerer, n *syntax.Node) any {
	return ast.NewNeverType(n.Span())
}

func lowerTupleType(l *lowerer, n *syntax.Node) any {
	return ast.NewTupleType(items[ast.Type](l, n, 0, "type"), n.Span())
}

// ReferenceType: `?`? mut? type
func lowerReferenceType(l *lowerer, n *syntax.Node) any {
	return ast.NewReferenceType(
		l.flag(n, 0, syntax.KindOptionalMarker),
		l.flag(n, 1, syntax.KindMutability),
		slot[ast.Type](l, n, 2, "type"),
		n.Span(),
	)
}

// PointerType: `?`? mut? type
func lowerPointerType(l *lowerer, n *syntax.Node) any {
	return ast.NewPointerType(
		l.flag(n, 0, syntax.KindOptionalMarker),
		l.flag(n, 1, syntax.KindMutability),
		slot[ast.Type](l, n, 2, "type"),
		n.Span(),
	)
}

// ArrayType: mut? type length?
func lowerArrayType(l *lowerer, n *syntax.Node) any {
	return ast.NewArrayType(
		l.flag(n, 0, syntax.KindMutability),
		slot[ast.Type](l, n, 1, "element type"),
		optSlot[ast.Expression](l, n, 2, "length"),
		n.Span(),
	)
}

func lowerSliceType(l *lowerer, n *syntax.Node) any {
	return ast.NewSliceType(
		l.flag(n, 0, syntax.KindMutability),
		slot[ast.Type](l, n, 1, "element type"),
		n.Span(),
	)
}

// TerminalType: name template-args? generic-args?
func lowerTerminalType(l *lowerer, n *syntax.Node) any {
	return ast.NewTerminalType(
		slot[*ast.ConstReference](l, n, 0, "name"),
		optSlot[[]ast.Expression](l, n, 1, "template arguments"),
		optSlot[[]ast.GenericArgument](l, n, 2, "generic arguments"),
		n.Span(),
	)
}

/* Generics */

func lowerTemplateParamList(l *lowerer, n *syntax.Node) any {
	return items[*ast.TemplateParameter](l, n, 0, "template parameter")
}

// TemplateParam: name candidate...
func lowerTemplateParam(l *lowerer, n *syntax.Node) any {
	return ast.NewTemplateParameter(
		slot[ast.Ident](l, n, 0, "name"),
		items[ast.Expression](l, n, 1, "candidate"),
		n.Span(),
	)
}

func lowerGenericParamList(l *lowerer, n *syntax.Node) any {
	return items[*ast.GenericParameter](l, n, 0, "generic parameter")
}

// GenericParam: name bound?
func lowerGenericParam(l *lowerer, n *syntax.Node) any {
	name := slot[ast.Ident](l, n, 0, "name")
	var bound ast.GenericArgument
	if c := n.Child(1); c != nil {
		bound = l.genericArgument(c)
	}
	return ast.NewGenericParameter(name, bound, n.Span())
}

func lowerGenericTuple(l *lowerer, n *syntax.Node) any {
	return ast.NewGenericArgumentTuple(l.genericArguments(n), n.Span())
}

func lowerGenericArgumentList(l *lowerer, n *syntax.Node) any {
	return l.genericArguments(n)
}

func (l *lowerer) genericArguments(n *syntax.Node) []ast.GenericArgument {
	if len(n.Children) == 0 {
		return nil
	}
	args := make([]ast.GenericArgument, 0, len(n.Children))
	for _, c := range n.Children {
		if c == nil {
			l.malformed(n.Span(), "%s has an absent generic argument", n.Kind)
		}
		args = append(args, l.genericArgument(c))
	}
	return args
}

// genericArgument lowers a generic tuple or wraps a plain type.
func (l *lowerer) genericArgument(n *syntax.Node) ast.GenericArgument {
	switch v := l.node(n).(type) {
	case ast.GenericArgument:
		return v
	case ast.Type:
		return ast.NewGenericArgumentTerminal(v, v.Span())
	}
	l.malformed(n.Span(), "expected generic argument, found %s", n.Kind)
	return nil
}

func lowerTemplateArgumentList(l *lowerer, n *syntax.Node) any {
	return items[ast.Expression](l, n, 0, "template argument")
}

/* Patterns */

// TerminalPattern: mut? (path | literal | `_`)
func lowerTerminalPattern(l *lowerer, n *syntax.Node) any {
	isMut := l.flag(n, 0, syntax.KindMutability)
	c := n.Child(1)
	if c == nil {
		l.malformed(n.Span(), "%s is missing its binding", n.Kind)
	}

	var (
		name *ast.ConstReference
		lit  *ast.Literal
	)
	switch c.Kind {
	case syntax.KindWildcard:
		expect[bool](l, c, "wildcard")
	case syntax.KindConstReference:
		name = expect[*ast.ConstReference](l, c, "name")
	default:
		lit = expect[*ast.Literal](l, c, "literal")
	}
	return ast.NewTerminalPattern(isMut, name, lit, n.Span())
}

// EnumPattern: name element...
func lowerEnumPattern(l *lowerer, n *syntax.Node) any {
	return ast.NewEnumPattern(
		slot[*ast.ConstReference](l, n, 0, "name"),
		items[ast.Pattern](l, n, 1, "pattern"),
		n.Span(),
	)
}

// StructPattern: name field...
func lowerStructPattern(l *lowerer, n *syntax.Node) any {
	return ast.NewStructPattern(
		slot[*ast.ConstReference](l, n, 0, "name"),
		items[*ast.StructPatternField](l, n, 1, "field"),
		n.Span(),
	)
}

func lowerStructPatternField(l *lowerer, n *syntax.Node) any {
	return ast.NewStructPatternField(
		slot[ast.Ident](l, n, 0, "name"),
		optSlot[ast.Pattern](l, n, 1, "pattern"),
		n.Span(),
	)
}
