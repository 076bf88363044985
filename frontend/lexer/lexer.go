package lexer

import (
	"github.com/ziust-lang/ziust/common"
	"github.com/ziust-lang/ziust/frontend/lexer/peekable"
)

// lexer is a hand-rolled, rune-based scanner.
type lexer struct {
	src                    string // source is the file being scanned
	chars                  *peekable.Chars
	curChr                 *rune
	offset, savedOffset    int
	line, column           uint32
	savedLine, savedColumn uint32
}

// Lex splits code into tokens. The last token is always TokEOF.
func Lex(src, code string) ([]Token, *common.Diagnostic) {
	var tokens []Token
	lx := newLexer(src, code)
	for {
		tok, err := lx.nextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if _, ok := tok.(TokEOF); ok {
			break
		}
	}
	return tokens, nil
}

func newLexer(src, code string) *lexer {
	chars := peekable.NewPeekableChars(code)
	lx := &lexer{
		src:   src,
		chars: chars,
		line:  1, column: 1,
		savedLine: 1, savedColumn: 1,
	}
	lx.offset = chars.Pos()
	lx.curChr = chars.Next()
	return lx
}

func (lx *lexer) currentSpan() common.Span {
	return common.Span{
		Start:       lx.savedOffset,
		End:         lx.offset,
		LineStart:   lx.savedLine,
		LineEnd:     lx.line,
		ColumnStart: lx.savedColumn,
		ColumnEnd:   max(lx.column-1, 1),
		Source:      lx.src,
	}
}

func (lx *lexer) advance() {
	if c := lx.curChr; c != nil {
		if *c == '\n' {
			lx.line++
			lx.column = 1
		} else {
			lx.column++
		}
	}
	lx.offset = lx.chars.Pos()
	lx.curChr = lx.chars.Next()
}

func (lx *lexer) peek() *rune {
	return lx.chars.Peek()
}

func (lx *lexer) error(msg string) *common.Diagnostic {
	d := common.NewDiagnostic(common.KindSyntax, msg, lx.currentSpan())
	return &d
}

// skipWs skips whitespace and comments up to the next token.
func (lx *lexer) skipWs() *common.Diagnostic {
	for {
		c := lx.curChr
		switch {
		case isWsChr(c):
			lx.advance()
			continue
		case isChr(c, '/') && isChr(lx.peek(), '/'):
			lx.comment()
			continue
		case isChr(c, '/') && isChr(lx.peek(), '*'):
			lx.mark()
			if err := lx.multilineComment(); err != nil {
				return err
			}
			continue
		}
		break
	}
	lx.mark()
	return nil
}

// mark records the current position as the start of the next token.
func (lx *lexer) mark() {
	lx.savedOffset = lx.offset
	lx.savedLine = lx.line
	lx.savedColumn = lx.column
}

func (lx *lexer) nextToken() (Token, *common.Diagnostic) {
	lastLine, lastColumn := lx.line, lx.column
	if err := lx.skipWs(); err != nil {
		return nil, err
	}

	c := lx.curChr
	if c == nil {
		span := common.SpanNew(lastLine, lastLine, lastColumn, lastColumn)
		span.Start, span.End = lx.offset, lx.offset
		span.Source = lx.src
		return TokEOF{span: span}, nil
	}

	if *c == '\'' {
		return lx.quote()
	}

	if *c == '"' {
		return lx.string()
	}

	if isAsciiDigit(c) {
		return lx.number()
	}

	if token := lx.punct(c); token != nil {
		return token, nil
	}

	identTok, err := lx.identifier()
	if err != nil {
		return nil, err
	}

	if keyword, ok := lookupKeyword(identTok.Raw); ok {
		return newTokKeyword(keyword, identTok.Span()), nil
	}

	return identTok, nil
}

func isChr(c *rune, e rune) bool {
	return c != nil && *c == e
}

func isAsciiDigit(c *rune) bool {
	return c != nil && '0' <= *c && *c <= '9'
}

func isWsChr(c *rune) bool {
	if c == nil {
		return false
	}
	switch *c {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}
