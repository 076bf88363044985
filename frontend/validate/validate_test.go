package validate

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ziust-lang/ziust/common"
	"github.com/ziust-lang/ziust/frontend/ast"
	"github.com/ziust-lang/ziust/frontend/lower"
	"github.com/ziust-lang/ziust/frontend/parser"
)

func lowerSource(t testing.TB, code string) *ast.Module {
	t.Helper()
	tree, perr := parser.Parse("test.zt", code)
	require.Nil(t, perr, "syntax error: %v", perr)
	m, diags, err := lower.Lower(context.Background(), tree, lower.Options{})
	require.NoError(t, err)
	require.Empty(t, diags, "lowering diagnostics")
	return m
}

type expected struct {
	Kind    string `yaml:"kind"`
	Line    uint32 `yaml:"line"`
	Message string `yaml:"message,omitempty"`
}

type golden struct {
	Name        string     `yaml:"name"`
	Source      string     `yaml:"source"`
	Diagnostics []expected `yaml:"diagnostics"`
}

func TestGolden(t *testing.T) {
	data, err := os.ReadFile("testdata/cases.yaml")
	require.NoError(t, err)
	var cases []golden
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			diags := Validate(lowerSource(t, tc.Source))

			var got, want []expected
			for _, d := range diags {
				assert.Equal(t, common.PhaseValidation, d.Phase)
				got = append(got, expected{Kind: d.Kind.String(), Line: d.Span.LineStart})
			}
			for _, e := range tc.Diagnostics {
				want = append(want, expected{Kind: e.Kind, Line: e.Line})
			}
			require.Equal(t, want, got, "diagnostics: %v", diags)

			for i, e := range tc.Diagnostics {
				if e.Message != "" {
					assert.Contains(t, diags[i].Message, e.Message)
				}
			}
		})
	}
}

func TestDuplicateCarriesFirstSpan(t *testing.T) {
	m := lowerSource(t, "struct P {\n    x: u8,\n    x: u8,\n}\n")
	diags := Validate(m)
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, common.KindDuplicateName, d.Kind)
	assert.Equal(t, uint32(3), d.Span.LineStart)
	require.Len(t, d.Related, 1)
	assert.Equal(t, uint32(2), d.Related[0].LineStart)
}

func TestReceiverTwice(t *testing.T) {
	diags := Validate(lowerSource(t, "fn f(self, self) {}"))
	require.Len(t, diags, 2)
	assert.Equal(t, common.KindMisplacedReceiverParameter, diags[0].Kind)
	assert.Equal(t, common.KindDuplicateName, diags[1].Kind)
	assert.Equal(t, diags[0].Span, diags[1].Span)
}

func TestErrorStatementsAreSkipped(t *testing.T) {
	span := common.SpanDefault()
	m := ast.NewModule([]ast.Statement{
		ast.NewErrorStatement("broken", span),
		ast.NewDeferStatement(nil, nil, nil, ast.NewErrorStatement("broken payload", span), span),
	}, span)
	assert.Empty(t, Validate(m))
}

func TestHandBuiltDeferTarget(t *testing.T) {
	span := common.SpanDefault()
	let := ast.NewLetDeclaration(nil, false, ast.NewIdent("x", span), nil, ast.NewBoolLiteral(true, span), span)
	m := ast.NewModule([]ast.Statement{ast.NewDeferStatement(nil, nil, nil, let, span)}, span)

	diags := Validate(m)
	require.Len(t, diags, 1)
	assert.Equal(t, common.KindInvalidDeferTarget, diags[0].Kind)
	assert.True(t, strings.HasPrefix(diags[0].Message, "a let statement"))
}

func TestValidateDoesNotModify(t *testing.T) {
	src := "fn f(self, self) {\n    'a: loop { break 'b; }\n}\n"
	m := lowerSource(t, src)
	before := lowerSource(t, src)

	first := Validate(m)
	second := Validate(m)
	assert.Equal(t, first, second)
	assert.Equal(t, before, m)
}

func TestValidateNil(t *testing.T) {
	assert.Empty(t, Validate(nil))
}

// Jumps that lowering leaves without a target are exactly the ones the
// validator reports.
func TestUnresolvedJumpsMatchLowering(t *testing.T) {
	sources := []string{
		"fn f() {\n    while (break) {}\n}\n",
		"fn f() {\n    for x in (break) {}\n}\n",
		"fn f() {\n    match (break) {\n        _ => 1,\n    }\n}\n",
		"fn f() {\n    'a: while (continue 'a) {}\n}\n",
		"fn f() {\n    'm: match (continue) {\n        _ => break 'm,\n    }\n}\n",
		"fn f() {\n    'outer: loop {\n        while (break) {}\n        for x in (continue 'outer) {\n            break;\n        }\n    }\n}\n",
	}
	for _, src := range sources {
		m := lowerSource(t, src)

		var unresolved []common.Span
		ast.Inspect(m, func(n ast.Node) bool {
			var target *ast.LabelTarget
			switch n := n.(type) {
			case *ast.BreakExpression:
				target = n.Target
			case *ast.ContinueExpression:
				target = n.Target
			default:
				return true
			}
			if target == nil {
				unresolved = append(unresolved, n.Span())
			}
			return true
		})

		var reported []common.Span
		for _, d := range Validate(m) {
			require.Equal(t, common.KindUnresolvedLabel, d.Kind, src)
			reported = append(reported, d.Span)
		}
		assert.Equal(t, unresolved, reported, src)
	}
}
