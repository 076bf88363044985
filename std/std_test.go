package std_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziust-lang/ziust/frontend/compile"
	"github.com/ziust-lang/ziust/std"
)

func TestFiles(t *testing.T) {
	for _, name := range []string{"std/prelude/option.zt", "std/prelude/ordering.zt", "std/prelude/mem.zt"} {
		assert.Contains(t, std.Files, name)
	}
}

func TestPreludeCompilesClean(t *testing.T) {
	var files []compile.File
	for p, src := range std.Files {
		files = append(files, compile.File{Path: p, Source: src})
	}
	units, err := compile.Units(context.Background(), files, compile.Options{})
	require.NoError(t, err)
	for _, u := range units {
		assert.Empty(t, u.Diags, u.Path)
		assert.NotNil(t, u.Module, u.Path)
	}
}
