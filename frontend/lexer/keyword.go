package lexer

import "github.com/ziust-lang/ziust/common"

// Keyword represents a reserved keyword.
type Keyword int

const (
	_ Keyword = iota
	KwStruct
	KwEnum
	KwType
	KwTrait
	KwImpl
	KwConst
	KwFn
	KwLet
	KwMut
	KwElse
	KwDefer
	KwWhen
	KwTest
	KwIf
	KwFor
	KwIn
	KwWhile
	KwLoop
	KwMatch
	KwReturn
	KwBreak
	KwContinue
	KwAs
	KwPub
	KwSelf
	KwTrue
	KwFalse
	KwUnderscore
)

var keywordTable = map[string]Keyword{
	"struct":   KwStruct,
	"enum":     KwEnum,
	"type":     KwType,
	"trait":    KwTrait,
	"impl":     KwImpl,
	"const":    KwConst,
	"fn":       KwFn,
	"let":      KwLet,
	"mut":      KwMut,
	"else":     KwElse,
	"defer":    KwDefer,
	"when":     KwWhen,
	"test":     KwTest,
	"if":       KwIf,
	"for":      KwFor,
	"in":       KwIn,
	"while":    KwWhile,
	"loop":     KwLoop,
	"match":    KwMatch,
	"return":   KwReturn,
	"break":    KwBreak,
	"continue": KwContinue,
	"as":       KwAs,
	"pub":      KwPub,
	"self":     KwSelf,
	"true":     KwTrue,
	"false":    KwFalse,
	"_":        KwUnderscore,
}

var keywordNames = func() []string {
	var top Keyword
	for _, kw := range keywordTable {
		top = max(top, kw)
	}
	names := make([]string, top+1)
	for lit, kw := range keywordTable {
		names[kw] = lit
	}
	return names
}()

func lookupKeyword(lit string) (Keyword, bool) {
	kw, ok := keywordTable[lit]
	return kw, ok
}

type TokKeyword struct {
	Keyword Keyword
	span    common.Span
}

func (t TokKeyword) isToken()          {}
func (t TokKeyword) Span() common.Span { return t.span }
func (t TokKeyword) String() string    { return keywordNames[t.Keyword] }
func (t TokKeyword) AsString() string  { return t.String() }

func (t TokKeyword) Is(other string) bool {
	kw, ok := keywordTable[other]
	return ok && kw == t.Keyword
}

func newTokKeyword(k Keyword, span common.Span) TokKeyword {
	return TokKeyword{Keyword: k, span: span}
}
