package lexer

import "github.com/ziust-lang/ziust/common"

// Punct represents a punctuation token.
type Punct int

const (
	_ Punct = iota

	PunctHash         // #
	PunctAt           // @
	PunctBang         // !
	PunctQuestion     // ?
	PunctAmpersand    // &
	PunctAndAnd       // &&
	PunctPipe         // |
	PunctOrOr         // ||
	PunctAsterisk     // *
	PunctMinus        // -
	PunctArrow        // ->
	PunctEqual        // =
	PunctFatArrow     // =>
	PunctLessThan     // <
	PunctGreaterThan  // >
	PunctDot          // .
	PunctComma        // ,
	PunctSemicolon    // ;
	PunctColon        // :
	PunctDoubleColon  // ::
	PunctOpenParen    // (
	PunctCloseParen   // )
	PunctOpenBrace    // {
	PunctCloseBrace   // }
	PunctOpenBracket  // [
	PunctCloseBracket // ]
)

var puncts = map[string]Punct{
	"#":  PunctHash,
	"@":  PunctAt,
	"!":  PunctBang,
	"?":  PunctQuestion,
	"&":  PunctAmpersand,
	"&&": PunctAndAnd,
	"|":  PunctPipe,
	"||": PunctOrOr,
	"*":  PunctAsterisk,
	"-":  PunctMinus,
	"->": PunctArrow,
	"=":  PunctEqual,
	"=>": PunctFatArrow,
	"<":  PunctLessThan,
	">":  PunctGreaterThan,
	".":  PunctDot,
	",":  PunctComma,
	";":  PunctSemicolon,
	":":  PunctColon,
	"::": PunctDoubleColon,
	"(":  PunctOpenParen,
	")":  PunctCloseParen,
	"{":  PunctOpenBrace,
	"}":  PunctCloseBrace,
	"[":  PunctOpenBracket,
	"]":  PunctCloseBracket,
}

var punctNames = func() []string {
	var top Punct
	for _, p := range puncts {
		top = max(top, p)
	}
	names := make([]string, top+1)
	for lit, p := range puncts {
		names[p] = lit
	}
	return names
}()

type TokPunct struct {
	Punct Punct
	span  common.Span
}

func (t TokPunct) isToken()          {}
func (t TokPunct) Span() common.Span { return t.span }
func (t TokPunct) String() string    { return punctNames[t.Punct] }
func (t TokPunct) AsString() string  { return t.String() }

func (t TokPunct) Is(other string) bool {
	p, ok := puncts[other]
	return ok && p == t.Punct
}

// punct lexes the longest punctuation starting at c, or returns nil.
func (lx *lexer) punct(c *rune) Token {
	if next := lx.peek(); next != nil {
		if p, ok := puncts[string([]rune{*c, *next})]; ok {
			lx.advance()
			lx.advance()
			return TokPunct{Punct: p, span: lx.currentSpan()}
		}
	}
	if p, ok := puncts[string(*c)]; ok {
		lx.advance()
		return TokPunct{Punct: p, span: lx.currentSpan()}
	}
	return nil
}
