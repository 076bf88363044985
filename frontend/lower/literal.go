package lower

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ziust-lang/ziust/common"
	"github.com/ziust-lang/ziust/frontend/ast"
	"github.com/ziust-lang/ziust/frontend/lexer"
	"github.com/ziust-lang/ziust/frontend/syntax"
)

func lowerInteger(l *lowerer, n *syntax.Node) any {
	raw := n.Text
	body, suffix := splitSuffix(raw, lexer.IntegerSuffixes)

	v, err := parseInt(body)
	switch {
	case errors.Is(err, strconv.ErrRange):
		l.fail(common.KindIntegerOverflow, n.Span(), "integer literal `%s` does not fit in 64 bits", raw)
	case err != nil:
		l.fail(common.KindInvalidLiteral, n.Span(), "invalid integer literal `%s`", raw)
	}

	if suffix != "" {
		ty, _ := ast.LookupIntType(suffix)
		l.checkRange(v, ty, raw, n.Span())
	}
	return ast.NewIntegerLiteral(raw, suffix, v, n.Span())
}

// parseInt parses an optionally negative integer with an optional
// 0x/0o/0b prefix and `_` separators.
func parseInt(s string) (ast.IntValue, error) {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	base := 10
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 10 {
			s = s[2:]
		}
	}

	s = strings.ReplaceAll(s, "_", "")
	mag, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return ast.IntValue{}, err
	}
	v := ast.IntFromUint(mag)
	if neg {
		v = v.Neg()
	}
	return v, nil
}

func splitSuffix(raw string, suffixes []string) (body, suffix string) {
	for _, s := range suffixes {
		if len(raw) > len(s) && strings.HasSuffix(raw, s) {
			return raw[:len(raw)-len(s)], s
		}
	}
	return raw, ""
}

func (l *lowerer) checkRange(v ast.IntValue, ty ast.IntType, raw string, span common.Span) {
	if !ty.Contains(v) {
		l.fail(common.KindIntegerOverflow, span, "integer literal `%s` is out of range for `%s` (%s..=%s)",
			raw, ty.Name, ty.Min(), ty.Max())
	}
}

// checkLiteralFits range-checks an unsuffixed integer literal assigned to a
// declared integer type.
func (l *lowerer) checkLiteralFits(ty ast.Type, value ast.Expression) {
	lit, ok := value.(*ast.Literal)
	if !ok || lit.Kind != ast.LiteralInteger || lit.Suffix != "" {
		return
	}
	if it, ok := ast.IntTypeOf(ty); ok {
		l.checkRange(lit.Int, it, lit.Raw, lit.Span())
	}
}

func lowerFloat(l *lowerer, n *syntax.Node) any {
	raw := n.Text
	body, suffix := splitSuffix(raw, lexer.FloatSuffixes)
	v, err := strconv.ParseFloat(strings.ReplaceAll(body, "_", ""), 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		l.fail(common.KindInvalidLiteral, n.Span(), "float literal `%s` is out of range", raw)
	case err != nil:
		l.fail(common.KindInvalidLiteral, n.Span(), "invalid float literal `%s`", raw)
	}
	return ast.NewFloatLiteral(raw, suffix, v, n.Span())
}

func lowerString(l *lowerer, n *syntax.Node) any {
	v, err := lexer.Unquote(n.Text)
	if err != nil {
		l.fail(common.KindInvalidLiteral, n.Span(), "invalid string literal: %s", err)
	}
	return ast.NewStringLiteral(n.Text, v, n.Span())
}

func lowerChar(l *lowerer, n *syntax.Node) any {
	v, err := lexer.UnquoteChar(n.Text)
	if err != nil {
		l.fail(common.KindInvalidLiteral, n.Span(), "invalid character literal: %s", err)
	}
	return ast.NewCharLiteral(n.Text, v, n.Span())
}

func lowerBool(l *lowerer, n *syntax.Node) any {
	switch n.Text {
	case "true":
		return ast.NewBoolLiteral(true, n.Span())
	case "false":
		return ast.NewBoolLiteral(false, n.Span())
	}
	l.fail(common.KindInvalidLiteral, n.Span(), "invalid boolean literal `%s`", n.Text)
	return nil
}
