package compile

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziust-lang/ziust/common"
	"github.com/ziust-lang/ziust/frontend/parser"
)

func TestSourceClean(t *testing.T) {
	u, err := Source(context.Background(), "a.zt", "let x = 42;", Options{})
	require.NoError(t, err)
	require.NotNil(t, u.Module)
	require.NotNil(t, u.Tree)
	assert.False(t, u.HasErrors())
	assert.Len(t, u.Module.Statements, 1)
}

func TestSourceSyntaxError(t *testing.T) {
	u, err := Source(context.Background(), "a.zt", "let = ;", Options{})
	require.NoError(t, err)
	assert.Nil(t, u.Module)
	assert.Nil(t, u.Tree)
	require.Len(t, u.Diags, 1)
	assert.Equal(t, common.PhaseSyntax, u.Diags[0].Phase)
	assert.Equal(t, "a.zt", u.Diags[0].Span.Source)
}

func TestLoweringBeforeValidation(t *testing.T) {
	src := "fn f(self, self) {\n    let x: u8 = 300;\n}\n"
	tree, perr := parser.Parse("a.zt", src)
	require.Nil(t, perr)

	_, diags, err := LowerAndValidate(context.Background(), tree, Options{})
	require.NoError(t, err)
	var phases []common.Phase
	for _, d := range diags {
		phases = append(phases, d.Phase)
	}
	assert.Equal(t, []common.Phase{common.PhaseLowering, common.PhaseValidation, common.PhaseValidation}, phases)
	assert.Equal(t, common.KindIntegerOverflow, diags[0].Kind)
}

func TestLowerAndValidateNilTree(t *testing.T) {
	_, _, err := LowerAndValidate(context.Background(), nil, Options{})
	assert.Error(t, err)
}

func TestUnitsOrderedByPath(t *testing.T) {
	var files []File
	for i := 9; i >= 0; i-- {
		files = append(files, File{
			Path:   fmt.Sprintf("src/%02d.zt", i),
			Source: fmt.Sprintf("const C%d: u8 = %d;", i, i),
		})
	}
	files = append(files, File{Path: "src/bad.zt", Source: "fn f() { break; }"})

	units, err := Units(context.Background(), files, Options{Workers: 3})
	require.NoError(t, err)
	require.Len(t, units, len(files))
	for i := 1; i < len(units); i++ {
		assert.Less(t, units[i-1].Path, units[i].Path)
	}

	diags := Diagnostics(units)
	require.Len(t, diags, 1)
	assert.Equal(t, common.KindUnresolvedLabel, diags[0].Kind)
	assert.Equal(t, "src/bad.zt", diags[0].Span.Source)
}

func TestUnitsDeterministic(t *testing.T) {
	files := []File{
		{Path: "b.zt", Source: "struct S { a: u8, a: u8 }"},
		{Path: "a.zt", Source: "enum E: u8 { A = 255, B }"},
	}
	first, err := Units(context.Background(), files, Options{})
	require.NoError(t, err)
	second, err := Units(context.Background(), files, Options{Workers: 1})
	require.NoError(t, err)
	assert.Equal(t, Diagnostics(first), Diagnostics(second))
}

func TestUnitsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Units(ctx, []File{{Path: "a.zt", Source: "let x = 1;"}}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
