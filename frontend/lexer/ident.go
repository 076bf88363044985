package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ziust-lang/ziust/common"
)

type TokIdent struct {
	Raw  string
	span common.Span
}

func (t TokIdent) isToken()          {}
func (t TokIdent) Span() common.Span { return t.span }
func (t TokIdent) String() string    { return t.Raw }
func (t TokIdent) Is(_ string) bool  { return false }
func (t TokIdent) AsString() string  { return "" }

func NewTokIdent(s string, span common.Span) TokIdent {
	return TokIdent{Raw: s, span: span}
}

func (lx *lexer) identifier() (TokIdent, *common.Diagnostic) {
	var sb strings.Builder

	if !isIdentStart(*lx.curChr) {
		r := *lx.curChr
		lx.advance()
		return TokIdent{}, lx.error(fmt.Sprintf("unexpected character: %q", r))
	}

	sb.WriteRune(*lx.curChr)
	lx.advance()
	lx.identRest(&sb)

	return NewTokIdent(sb.String(), lx.currentSpan()), nil
}

func (lx *lexer) identRest(sb *strings.Builder) {
	for c := lx.curChr; c != nil && isIdentContinue(*c); c = lx.curChr {
		sb.WriteRune(*c)
		lx.advance()
	}
}

func isIdentStart(r rune) bool {
	if ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z') || r == '_' {
		return true
	}
	return r >= 0x80 && unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	if '0' <= r && r <= '9' {
		return true
	}
	return isIdentStart(r) || (r >= 0x80 && unicode.IsDigit(r))
}

func IsValidIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isIdentStart(r) {
				return false
			}
		} else if !isIdentContinue(r) {
			return false
		}
	}
	_, kw := lookupKeyword(s)
	return !kw
}
