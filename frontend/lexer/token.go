package lexer

import (
	"github.com/ziust-lang/ziust/common"
)

type Token interface {
	isToken()
	Span() common.Span
	String() string
	Is(string) bool
	// AsString is the literal spelling of keywords and punctuation, "" otherwise.
	AsString() string
}

type TokEOF struct {
	span common.Span
}

func (t TokEOF) isToken()          {}
func (t TokEOF) Span() common.Span { return t.span }
func (t TokEOF) String() string    { return "<EOF>" }
func (t TokEOF) Is(_ string) bool  { return false }
func (t TokEOF) AsString() string  { return "" }

func IsEOF(t Token) bool {
	_, ok := t.(TokEOF)
	return ok
}

func IsIdent(t Token) bool {
	_, ok := t.(TokIdent)
	return ok
}
