package lexer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ziust-lang/ziust/common"
)

// TokString represents a string literal. Raw keeps the quotes and escapes.
type TokString struct {
	Raw   string
	Value string
	span  common.Span
}

func (t TokString) isToken()          {}
func (t TokString) Span() common.Span { return t.span }
func (t TokString) String() string    { return t.Raw }
func (t TokString) Is(_ string) bool  { return false }
func (t TokString) AsString() string  { return "" }

// TokChar represents a character literal such as 'a' or '\n'.
type TokChar struct {
	Raw   string
	Value rune
	span  common.Span
}

func (t TokChar) isToken()          {}
func (t TokChar) Span() common.Span { return t.span }
func (t TokChar) String() string    { return t.Raw }
func (t TokChar) Is(_ string) bool  { return false }
func (t TokChar) AsString() string  { return "" }

// TokLabel represents a label such as 'outer. Name has no leading quote.
type TokLabel struct {
	Name string
	span common.Span
}

func (t TokLabel) isToken()          {}
func (t TokLabel) Span() common.Span { return t.span }
func (t TokLabel) String() string    { return "'" + t.Name }
func (t TokLabel) Is(_ string) bool  { return false }
func (t TokLabel) AsString() string  { return "" }

func (lx *lexer) string() (Token, *common.Diagnostic) {
	var sb strings.Builder
	sb.WriteRune('"')
	lx.advance()
	for {
		c := lx.curChr
		if c == nil {
			return nil, lx.error("unterminated string literal")
		}
		sb.WriteRune(*c)
		lx.advance()
		if *c == '"' {
			break
		}
		if *c == '\\' && lx.curChr != nil {
			sb.WriteRune(*lx.curChr)
			lx.advance()
		}
	}
	raw := sb.String()
	value, err := Unquote(raw)
	if err != nil {
		return nil, lx.error(err.Error())
	}
	return TokString{Raw: raw, Value: value, span: lx.currentSpan()}, nil
}

// quote lexes either a character literal or a label.
func (lx *lexer) quote() (Token, *common.Diagnostic) {
	next, second := lx.peek(), lx.chars.PeekSecond()
	switch {
	case next == nil:
		lx.advance()
		return nil, lx.error("unterminated character literal")
	case *next == '\\' || isChr(second, '\''):
		return lx.char()
	case isIdentStart(*next):
		lx.advance()
		var sb strings.Builder
		lx.identRest(&sb)
		return TokLabel{Name: sb.String(), span: lx.currentSpan()}, nil
	}
	lx.advance()
	return nil, lx.error("malformed character literal")
}

func (lx *lexer) char() (Token, *common.Diagnostic) {
	var sb strings.Builder
	sb.WriteRune('\'')
	lx.advance()
	for {
		c := lx.curChr
		if c == nil || *c == '\n' {
			return nil, lx.error("unterminated character literal")
		}
		sb.WriteRune(*c)
		lx.advance()
		if *c == '\'' {
			break
		}
		if *c == '\\' && lx.curChr != nil {
			sb.WriteRune(*lx.curChr)
			lx.advance()
		}
	}
	raw := sb.String()
	value, err := UnquoteChar(raw)
	if err != nil {
		return nil, lx.error(err.Error())
	}
	return TokChar{Raw: raw, Value: value, span: lx.currentSpan()}, nil
}

// Unquote decodes a double-quoted string literal.
func Unquote(raw string) (string, error) {
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return "", errors.New("malformed string literal")
	}
	body := raw[1 : len(raw)-1]
	var sb strings.Builder
	for body != "" {
		r, rest, err := decodeRune(body)
		if err != nil {
			return "", err
		}
		sb.WriteRune(r)
		body = rest
	}
	return sb.String(), nil
}

// UnquoteChar decodes a single-quoted character literal.
func UnquoteChar(raw string) (rune, error) {
	if len(raw) < 3 || raw[0] != '\'' || raw[len(raw)-1] != '\'' {
		return 0, errors.New("malformed character literal")
	}
	r, rest, err := decodeRune(raw[1 : len(raw)-1])
	if err != nil {
		return 0, err
	}
	if rest != "" {
		return 0, errors.New("character literal may only contain one codepoint")
	}
	return r, nil
}

func decodeRune(s string) (rune, string, error) {
	r, w := utf8.DecodeRuneInString(s)
	if r != '\\' {
		return r, s[w:], nil
	}
	if len(s) < 2 {
		return 0, "", errors.New("unterminated escape sequence")
	}
	s = s[1:]
	switch s[0] {
	case 'n':
		return '\n', s[1:], nil
	case 'r':
		return '\r', s[1:], nil
	case 't':
		return '\t', s[1:], nil
	case '0':
		return 0, s[1:], nil
	case '\\', '"', '\'':
		return rune(s[0]), s[1:], nil
	case 'x':
		if len(s) < 3 || !isHexByte(s[1]) || !isHexByte(s[2]) {
			return 0, "", errors.New("malformed hexadecimal escape sequence")
		}
		val := hexValue(rune(s[1]))<<4 | hexValue(rune(s[2]))
		if val > 0x7F {
			return 0, "", errors.New("hexadecimal escape must be in range [\\x00-\\x7F]")
		}
		return rune(val), s[3:], nil
	case 'u':
		s = s[1:]
		if s == "" || s[0] != '{' {
			return 0, "", errors.New("malformed Unicode escape sequence, missing '{'")
		}
		end := strings.IndexByte(s, '}')
		if end < 0 {
			return 0, "", errors.New("malformed Unicode escape sequence, missing '}'")
		}
		digits := s[1:end]
		if digits == "" || len(digits) > 6 {
			return 0, "", errors.New("malformed Unicode escape sequence")
		}
		var val uint32
		for i := 0; i < len(digits); i++ {
			if !isHexByte(digits[i]) {
				return 0, "", errors.New("malformed Unicode escape sequence, invalid hex digit")
			}
			val = val<<4 | hexValue(rune(digits[i]))
		}
		if val >= 0x110000 || (val >= 0xD800 && val < 0xE000) {
			return 0, "", errors.New("invalid Unicode escape sequence, value out of range")
		}
		return rune(val), s[end+1:], nil
	}
	r, _ = utf8.DecodeRuneInString(s)
	return 0, "", fmt.Errorf("invalid escape sequence: \\%c", r)
}

func isHexByte(b byte) bool {
	return isRadixDigit(rune(b), 'x')
}

func hexValue(r rune) uint32 {
	switch {
	case '0' <= r && r <= '9':
		return uint32(r - '0')
	case 'a' <= r && r <= 'f':
		return uint32(r - 'a' + 10)
	case 'A' <= r && r <= 'F':
		return uint32(r - 'A' + 10)
	}
	return 0
}
