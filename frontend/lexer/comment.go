package lexer

import "github.com/ziust-lang/ziust/common"

// comment skips a `//` comment up to (not including) the newline.
func (lx *lexer) comment() {
	for c := lx.curChr; c != nil && *c != '\n'; c = lx.curChr {
		lx.advance()
	}
}

// multilineComment skips a `/* */` comment. Comments nest.
func (lx *lexer) multilineComment() *common.Diagnostic {
	lx.advance() // '/'
	lx.advance() // '*'
	depth := 1
	for c := lx.curChr; c != nil; c = lx.curChr {
		switch {
		case *c == '*' && isChr(lx.peek(), '/'):
			lx.advance()
			lx.advance()
			depth--
			if depth == 0 {
				return nil
			}
		case *c == '/' && isChr(lx.peek(), '*'):
			lx.advance()
			lx.advance()
			depth++
		default:
			lx.advance()
		}
	}
	return lx.error("unterminated multiline comment")
}
