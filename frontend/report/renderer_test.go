package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziust-lang/ziust/common"
)

func span(line, start, end uint32) common.Span {
	s := common.SpanNew(line, line, start, end)
	s.Source = "main.zt"
	return s
}

func renderer(src string) Renderer {
	return Renderer{
		Source: func(string) (string, bool) { return src, true },
	}
}

func TestDiagnosticSnippet(t *testing.T) {
	src := "fn f() {\n    break 'missing;\n}\n"
	d := common.NewDiagnostic(common.KindUnresolvedLabel, "unresolved label `'missing`", span(2, 5, 18))

	got := renderer(src).Diagnostic(d)
	want := strings.Join([]string{
		"error[UnresolvedLabel]: unresolved label `'missing`",
		" --> main.zt:2:5",
		"  |",
		"2 |     break 'missing;",
		"  |     ^^^^^^^^^^^^^^",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestDiagnosticWideRunes(t *testing.T) {
	src := "let 名前 = 1;"
	d := common.NewDiagnostic(common.KindSyntax, "bad name", span(1, 5, 6))

	got := renderer(src).Diagnostic(d)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "  |     ^^^^", lines[4])
}

func TestDiagnosticTabs(t *testing.T) {
	src := "\tx;"
	d := common.NewDiagnostic(common.KindSyntax, "bad", span(1, 2, 2))

	lines := strings.Split(renderer(src).Diagnostic(d), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "1 |     x;", lines[3])
	assert.Equal(t, "  |     ^", lines[4])
}

func TestDiagnosticRelated(t *testing.T) {
	src := "struct P {\n    x: u8,\n    x: u8,\n}\n"
	d := common.NewDiagnostic(common.KindDuplicateName, "duplicate struct member `x`", span(3, 5, 5), span(2, 5, 5))

	got := renderer(src).Diagnostic(d)
	assert.Contains(t, got, " --> main.zt:3:5\n")
	assert.Contains(t, got, " --> main.zt:2:5 (related)\n")
}

func TestRenderCompact(t *testing.T) {
	diags := []common.Diagnostic{
		common.NewDiagnostic(common.KindSyntax, "one", span(1, 1, 1)),
		common.NewDiagnostic(common.KindInvalidLiteral, "two", span(4, 2, 3)),
	}
	r := Renderer{Compact: true, Name: func(s string) string { return "src/" + s }}

	var out strings.Builder
	n, err := r.Render(diags, &out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "src/main.zt:1:1: error[SyntaxError]: one\nsrc/main.zt:4:2: error[InvalidLiteral]: two\n", out.String())
}

func TestRenderSummary(t *testing.T) {
	var out strings.Builder
	n, err := renderer("x").Render([]common.Diagnostic{common.NewDiagnostic(common.KindSyntax, "bad", span(1, 1, 1))}, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, strings.HasSuffix(out.String(), "\nencountered 1 error\n"))
}

func TestRenderNothing(t *testing.T) {
	var out strings.Builder
	n, err := Renderer{}.Render(nil, &out)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, out.String())
}
