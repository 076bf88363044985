package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, code string) []Token {
	t.Helper()
	toks, err := Lex("test.zt", code)
	require.Nil(t, err, "unexpected lex error: %v", err)
	return toks
}

func TestLexLetStatement(t *testing.T) {
	toks := lexAll(t, "let x = 42;")
	require.Len(t, toks, 6)

	assert.True(t, toks[0].Is("let"))
	assert.Equal(t, TokIdent{Raw: "x", span: toks[1].Span()}, toks[1])
	assert.True(t, toks[2].Is("="))
	num, ok := toks[3].(TokNumber)
	require.True(t, ok)
	assert.Equal(t, "42", num.Raw)
	assert.Equal(t, 8, num.Span().Start)
	assert.Equal(t, 10, num.Span().End)
	assert.True(t, toks[4].Is(";"))
	assert.True(t, IsEOF(toks[5]))
}

func TestLexSpans(t *testing.T) {
	toks := lexAll(t, "fn\n  main")
	span := toks[1].Span()
	assert.Equal(t, uint32(2), span.LineStart)
	assert.Equal(t, uint32(3), span.ColumnStart)
	assert.Equal(t, uint32(6), span.ColumnEnd)
	assert.Equal(t, "main", span.Text("fn\n  main"))
}

func TestLexNumbers(t *testing.T) {
	tests := []struct {
		code    string
		raw     string
		suffix  string
		isFloat bool
	}{
		{"0", "0", "", false},
		{"1_000", "1_000", "", false},
		{"0xFF_u8", "0xFF_u8", "u8", false},
		{"0xffu8", "0xffu8", "u8", false},
		{"0o777", "0o777", "", false},
		{"0b1010i32", "0b1010i32", "i32", false},
		{"300u8", "300u8", "u8", false},
		{"1.5", "1.5", "", true},
		{"2e10", "2e10", "", true},
		{"3.0f32", "3.0f32", "f32", true},
		{"7f64", "7f64", "f64", true},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			toks := lexAll(t, tt.code)
			num, ok := toks[0].(TokNumber)
			require.True(t, ok, "got %T", toks[0])
			assert.Equal(t, tt.raw, num.Raw)
			assert.Equal(t, tt.suffix, num.Suffix)
			assert.Equal(t, tt.isFloat, num.IsFloat)
		})
	}
}

func TestLexMemberAfterInteger(t *testing.T) {
	toks := lexAll(t, "1.len")
	_, ok := toks[0].(TokNumber)
	assert.True(t, ok)
	assert.True(t, toks[1].Is("."))
	assert.True(t, IsIdent(toks[2]))
}

func TestLexLabelsAndChars(t *testing.T) {
	toks := lexAll(t, `'outer: loop { break 'outer; } 'a' '\n' '\''`)
	lbl, ok := toks[0].(TokLabel)
	require.True(t, ok)
	assert.Equal(t, "outer", lbl.Name)
	assert.Equal(t, "'outer", lbl.String())

	var chars []rune
	for _, tok := range toks {
		if c, ok := tok.(TokChar); ok {
			chars = append(chars, c.Value)
		}
	}
	assert.Equal(t, []rune{'a', '\n', '\''}, chars)

	brk, ok := toks[5].(TokLabel)
	require.True(t, ok)
	assert.Equal(t, "outer", brk.Name)
}

func TestLexStrings(t *testing.T) {
	toks := lexAll(t, `"a\tb\"c\u{1F600}\x41"`)
	s, ok := toks[0].(TokString)
	require.True(t, ok)
	assert.Equal(t, "a\tb\"c\U0001F600A", s.Value)
	assert.Equal(t, `"a\tb\"c\u{1F600}\x41"`, s.Raw)
}

func TestLexComments(t *testing.T) {
	toks := lexAll(t, "// line\nlet /* block /* nested */ */ x")
	require.Len(t, toks, 3)
	assert.True(t, toks[0].Is("let"))
	assert.True(t, IsIdent(toks[1]))
}

func TestLexPunctuation(t *testing.T) {
	toks := lexAll(t, "-> => :: && || # @ ? &")
	want := []string{"->", "=>", "::", "&&", "||", "#", "@", "?", "&"}
	for i, w := range want {
		assert.Equal(t, w, toks[i].AsString())
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		code string
		msg  string
	}{
		{`"abc`, "unterminated string literal"},
		{`"\q"`, "invalid escape sequence"},
		{"/* open", "unterminated multiline comment"},
		{"12abc", "invalid suffix"},
		{"0x", "missing digits"},
		{"$", "unexpected character"},
		{"'ab'", ""},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			_, err := Lex("test.zt", tt.code)
			if tt.msg == "" {
				return
			}
			require.NotNil(t, err)
			assert.Contains(t, err.Message, tt.msg)
		})
	}
}

func TestIsValidIdent(t *testing.T) {
	assert.True(t, IsValidIdent("snake_case"))
	assert.True(t, IsValidIdent("_x1"))
	assert.False(t, IsValidIdent("1x"))
	assert.False(t, IsValidIdent("fn"))
	assert.False(t, IsValidIdent(""))
}
