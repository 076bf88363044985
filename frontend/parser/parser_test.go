package parser

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziust-lang/ziust/frontend/syntax"
)

func mustParse(t *testing.T, code string) *syntax.Node {
	t.Helper()
	tree, err := Parse("test.zt", code)
	require.Nil(t, err, "unexpected syntax error: %v", err)
	require.NotNil(t, tree)
	return tree
}

func TestParseSexp(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{
			name: "let",
			code: "let x = 42;",
			want: "(module (let_declaration (attribute_list) (identifier) (integer_literal)))",
		},
		{
			name: "labeled loop",
			code: "'outer: loop { break 'outer; }",
			want: "(module (loop_expression (label) (statement_list (expression_statement (attribute_list) (break_expression (label))))))",
		},
		{
			name: "receivers",
			code: "fn f(self, &mut self) {}",
			want: "(module (fn_declaration (attribute_list) (identifier) (parameter_list (self_parameter) (self_parameter (borrow) (mutability))) (block_expression (statement_list))))",
		},
		{
			name: "tail value",
			code: "fn f() -> i32 { let a = 1; a }",
			want: "(module (fn_declaration (attribute_list) (identifier) (parameter_list) (terminal_type (const_reference (identifier))) " +
				"(block_expression (statement_list (let_declaration (attribute_list) (identifier) (integer_literal))) (const_reference (identifier)))))",
		},
		{
			name: "defer",
			code: "defer 'a, 'b when 'c { x; }",
			want: "(module (defer_statement (attribute_list) (label_list (label) (label)) (label) " +
				"(block_statement (statement_list (expression_statement (attribute_list) (const_reference (identifier)))))))",
		},
		{
			name: "let else with binding",
			code: "let mut x = y else { return; };",
			want: "(module (let_else_declaration (attribute_list) (terminal_pattern (mutability) (const_reference (identifier))) " +
				"(const_reference (identifier)) (block_expression (statement_list (expression_statement (attribute_list) (return_expression))))))",
		},
		{
			name: "struct",
			code: "pub struct P { x: u8, pub y: &mut T }",
			want: "(module (struct_declaration (attribute_list) (visibility) (identifier) (struct_member_list " +
				"(struct_member (attribute_list) (identifier) (terminal_type (const_reference (identifier)))) " +
				"(struct_member (attribute_list) (visibility) (identifier) (reference_type (mutability) (terminal_type (const_reference (identifier))))))))",
		},
		{
			name: "enum with tags",
			code: "enum E: u8 { A = 1, B(u8) }",
			want: "(module (enum_declaration (attribute_list) (identifier) (terminal_type (const_reference (identifier))) (enum_member_list " +
				"(enum_member (attribute_list) (identifier) (integer_literal)) " +
				"(enum_member (attribute_list) (identifier) (type_list (terminal_type (const_reference (identifier))))))))",
		},
		{
			name: "impl slice type",
			code: "impl [T] {}",
			want: "(module (impl_declaration (attribute_list) (slice_type (terminal_type (const_reference (identifier)))) (impl_member_list)))",
		},
		{
			name: "negative literal and cast",
			code: "x = -5 as i8;",
			want: "(module (assignment_statement (const_reference (identifier)) (as_expression (integer_literal) (terminal_type (const_reference (identifier))))))",
		},
		{
			name: "statement level block",
			code: "{ ; }",
			want: "(module (block_statement (statement_list (null_statement (attribute_list)))))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustParse(t, tt.code).Sexp())
		})
	}
}

func TestParseSpans(t *testing.T) {
	code := "let x = 42;"
	tree := mustParse(t, code)
	let := tree.Child(0)
	assert.Equal(t, code, let.Span().Text(code))
	assert.Equal(t, "x", let.Child(2).Span().Text(code))
	assert.Equal(t, "42", let.Child(4).Span().Text(code))
	assert.Nil(t, let.Child(1), "absent `mut` must be a nil slot")
	assert.Nil(t, let.Child(3), "absent type must be a nil slot")
}

func TestParseNegativeLiteralText(t *testing.T) {
	tree := mustParse(t, "let x = -0x10;")
	lit := tree.Child(0).Child(4)
	assert.Equal(t, syntax.KindIntegerLiteral, lit.Kind)
	assert.Equal(t, "-0x10", lit.Text)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		code string
		msg  string
	}{
		{"let = 5;", "expected identifier"},
		{"let x = 5", "expected `;`"},
		{"fn f( {}", "expected identifier"},
		{"struct S { x u8 }", "expected `:`"},
		{"#[] fn f() {}", "empty attribute"},
		{"'l: if x {}", "expected block, `loop` or `match` after label"},
		{"loop {", "expected `}`"},
		{"x = -y;", "expected number after `-`"},
		{"pub impl T {}", "`pub` is not allowed"},
		{"\"unterminated", "unterminated string literal"},
		{"while loop {} {}", "expected simple expression"},
		{"#[cfg(test)] fn f() {}", "expected expression, got `test`"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			tree, err := Parse("test.zt", tt.code)
			assert.Nil(t, tree)
			require.NotNil(t, err)
			assert.Contains(t, err.Message, tt.msg)
		})
	}
}

func TestParseCorpusCoversEveryKind(t *testing.T) {
	code, err := os.ReadFile("../testdata/kinds.zt")
	require.NoError(t, err)
	tree := mustParse(t, string(code))

	seen := make(map[syntax.Kind]bool)
	syntax.Inspect(tree, func(n *syntax.Node) bool {
		seen[n.Kind] = true
		return true
	})
	for _, k := range syntax.Kinds() {
		assert.True(t, seen[k], "corpus never produces %s", k)
	}
}

func TestFlags(t *testing.T) {
	f := Flags(0).Set(FlagAllowTail)
	assert.True(t, f.Has(FlagAllowTail))
	assert.False(t, f.Has(FlagDeferPayload))
	assert.Equal(t, "AllowTail", f.String())
	assert.Equal(t, "0", f.Clear(FlagAllowTail).String())
}
