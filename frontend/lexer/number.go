package lexer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ziust-lang/ziust/common"
)

// IntegerSuffixes lists the type suffixes an integer literal may carry.
var IntegerSuffixes = []string{"i8", "i16", "i32", "i64", "isize", "u8", "u16", "u32", "u64", "usize"}

// FloatSuffixes lists the type suffixes a float literal may carry.
var FloatSuffixes = []string{"f32", "f64"}

type TokNumber struct {
	// Raw is the literal as written, suffix included.
	Raw     string
	Suffix  string
	IsFloat bool
	span    common.Span
}

func (t TokNumber) isToken()          {}
func (t TokNumber) Span() common.Span { return t.span }
func (t TokNumber) String() string    { return t.Raw }
func (t TokNumber) Is(_ string) bool  { return false }
func (t TokNumber) AsString() string  { return "" }

func (lx *lexer) number() (Token, *common.Diagnostic) {
	var sb strings.Builder
	isFloat := false

	if isChr(lx.curChr, '0') && lx.peek() != nil && strings.ContainsRune("xXoObB", *lx.peek()) {
		sb.WriteRune(*lx.curChr)
		lx.advance()
		radix := *lx.curChr
		sb.WriteRune(radix)
		lx.advance()
		digits := 0
		for c := lx.curChr; c != nil && (isRadixDigit(*c, radix) || *c == '_'); c = lx.curChr {
			if *c != '_' {
				digits++
			}
			sb.WriteRune(*c)
			lx.advance()
		}
		if digits == 0 {
			return nil, lx.error("missing digits after integer base prefix")
		}
	} else {
		lx.decimalDigits(&sb)
		if isChr(lx.curChr, '.') && isAsciiDigit(lx.peek()) {
			isFloat = true
			sb.WriteRune('.')
			lx.advance()
			lx.decimalDigits(&sb)
		}
		if isChr(lx.curChr, 'e') || isChr(lx.curChr, 'E') {
			isFloat = true
			sb.WriteRune(*lx.curChr)
			lx.advance()
			if isChr(lx.curChr, '+') || isChr(lx.curChr, '-') {
				sb.WriteRune(*lx.curChr)
				lx.advance()
			}
			if !isAsciiDigit(lx.curChr) {
				return nil, lx.error("missing exponent digits in float literal")
			}
			lx.decimalDigits(&sb)
		}
	}

	var suffix strings.Builder
	if c := lx.curChr; c != nil && isIdentStart(*c) {
		lx.identRest(&suffix)
	}
	s := suffix.String()
	switch {
	case s == "":
	case slices.Contains(FloatSuffixes, s):
		isFloat = true
	case slices.Contains(IntegerSuffixes, s) && !isFloat:
	default:
		return nil, lx.error(fmt.Sprintf("invalid suffix `%s` for number literal", s))
	}
	sb.WriteString(s)

	return TokNumber{Raw: sb.String(), Suffix: s, IsFloat: isFloat, span: lx.currentSpan()}, nil
}

func (lx *lexer) decimalDigits(sb *strings.Builder) {
	for c := lx.curChr; c != nil && (isAsciiDigit(c) || *c == '_'); c = lx.curChr {
		sb.WriteRune(*c)
		lx.advance()
	}
}

func isRadixDigit(r, radix rune) bool {
	switch radix {
	case 'x', 'X':
		return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
	case 'o', 'O':
		return '0' <= r && r <= '7'
	case 'b', 'B':
		return r == '0' || r == '1'
	}
	return false
}
