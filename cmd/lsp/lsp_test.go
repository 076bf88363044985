package lsp

import (
	"context"
	"testing"

	protocol "github.com/gluax-lang/lsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziust-lang/ziust/common"
	"github.com/ziust-lang/ziust/frontend/ast"
	"github.com/ziust-lang/ziust/frontend/compile"
)

const source = `fn f() {
    'outer: loop {
        match x {
            _ => break 'outer,
        }
        continue;
    }
}
enum E: u8 { A, B = 7, C }
`

func module(t *testing.T) *ast.Module {
	t.Helper()
	u, err := compile.Source(context.Background(), "/ws/src/main.zt", source, compile.Options{})
	require.NoError(t, err)
	require.Empty(t, u.Diags)
	return u.Module
}

func TestTargetAt(t *testing.T) {
	m := module(t)

	span, ok := targetAt(m, 4, 25)
	require.True(t, ok)
	assert.Equal(t, uint32(2), span.LineStart)
	assert.Equal(t, uint32(5), span.ColumnStart)

	span, ok = targetAt(m, 6, 10)
	require.True(t, ok)
	assert.Equal(t, uint32(2), span.LineStart)

	_, ok = targetAt(m, 9, 1)
	assert.False(t, ok)
}

func TestTargetAtDeferLabel(t *testing.T) {
	u, err := compile.Source(context.Background(), "a.zt", "fn f() {\n    'a: {\n        defer 'a { x = 1; }\n    }\n}\n", compile.Options{})
	require.NoError(t, err)
	require.Empty(t, u.Diags)

	span, ok := targetAt(u.Module, 3, 16)
	require.True(t, ok)
	assert.Equal(t, uint32(2), span.LineStart)
}

func TestLabelJumps(t *testing.T) {
	m := module(t)
	label, ok := labelDeclarationAt(m, 2, 7)
	require.True(t, ok)
	assert.Equal(t, "outer", label.Raw)

	jumps := jumpsTo(m, label.Span())
	require.Len(t, jumps, 2)
	assert.IsType(t, &ast.BreakExpression{}, jumps[0])
	assert.IsType(t, &ast.ContinueExpression{}, jumps[1])

	_, ok = labelDeclarationAt(m, 3, 9)
	assert.False(t, ok)
}

func TestHoverAt(t *testing.T) {
	m := module(t)

	jump := hoverAt(m, 4, 20)
	assert.Contains(t, jump, "break 'outer")
	assert.Contains(t, jump, "targets the loop at line 2, 1 enclosing constructs out")

	assert.Contains(t, hoverAt(m, 9, 14), "A = 0")
	assert.Contains(t, hoverAt(m, 9, 24), "C = 8")
	assert.Contains(t, hoverAt(m, 9, 6), "enum E {\n    A = 0,\n    B = 7,\n    C = 8,\n}")
	assert.Contains(t, hoverAt(m, 1, 4), "fn f()")
	assert.Empty(t, hoverAt(m, 3, 15))
}

func TestHoverLabels(t *testing.T) {
	m := module(t)
	assert.Contains(t, hoverAt(m, 2, 7), "targeted by 2 jump(s): line 4, line 6")

	u, err := compile.Source(context.Background(), "a.zt", "fn f() {\n    'a: {\n        defer 'a when 'b { x = 1; }\n    }\n    'c: {}\n}\n", compile.Options{})
	require.NoError(t, err)
	assert.Contains(t, hoverAt(u.Module, 3, 16), "labels the construct at line 2")
	assert.Contains(t, hoverAt(u.Module, 3, 24), "does not resolve")
	assert.Contains(t, hoverAt(u.Module, 5, 6), "no jumps target this label")
}

func TestDiscriminantHints(t *testing.T) {
	m := module(t)
	hints := discriminantHints(m, newLineIndex(source))
	require.Len(t, hints, 2)
	assert.Equal(t, protocol.Position{Line: 8, Character: 14}, hints[0].Position)
	assert.Equal(t, " = 0", hints[0].Label[0].Value)
	assert.Equal(t, " = 8", hints[1].Label[0].Value)
}

func TestLabelsInScope(t *testing.T) {
	m := module(t)
	labels := labelsInScope(nodesAt(m, 4, 20))
	require.Len(t, labels, 1)
	assert.Equal(t, "outer", labels[0].name)
	assert.Equal(t, ast.ConstructLoop, labels[0].kind)

	assert.Empty(t, labelsInScope(nodesAt(m, 9, 14)))
}

func TestLabelsInScopeSkipHeads(t *testing.T) {
	u, err := compile.Source(context.Background(), "a.zt", "fn f() {\n    'a: while (x) {\n        'b: for y in (z) {}\n    }\n}\n", compile.Options{})
	require.NoError(t, err)
	require.Empty(t, u.Diags)

	labels := labelsInScope(nodesAt(u.Module, 3, 23))
	require.Len(t, labels, 1)
	assert.Equal(t, "a", labels[0].name)
}

func TestLineIndex(t *testing.T) {
	idx := newLineIndex("a😀b\nxy")

	line, column := idx.toSpan(protocol.Position{Line: 0, Character: 3})
	assert.Equal(t, uint32(1), line)
	assert.Equal(t, uint32(3), column)

	assert.Equal(t, uint32(3), idx.character(1, 3))
	assert.Equal(t, uint32(2), idx.character(2, 3))
	assert.Equal(t, uint32(4), idx.character(2, 5))

	rng := idx.toRange(common.SpanNew(1, 1, 2, 2))
	assert.Equal(t, protocol.Position{Line: 0, Character: 1}, rng.Start)
	assert.Equal(t, protocol.Position{Line: 0, Character: 3}, rng.End)
}

func TestToProtocol(t *testing.T) {
	u, err := compile.Source(context.Background(), "a.zt", "fn f() {\n    'é: { break; }\n}\n", compile.Options{})
	require.NoError(t, err)
	require.NotEmpty(t, u.Diags)

	out := toProtocol(u)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Severity)
	assert.Equal(t, protocol.DiagnosticSeverityError, *out[0].Severity)
	assert.Equal(t, protocol.Position{Line: 1, Character: 10}, out[0].Range.Start)
	assert.Equal(t, uint32(1), out[0].Range.End.Line)
	assert.Greater(t, out[0].Range.End.Character, out[0].Range.Start.Character)
}
