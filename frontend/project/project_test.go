package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziust-lang/ziust/common"
	"github.com/ziust-lang/ziust/std"
)

const config = `name = "demo"
version = "0.1.0"
`

func writeWorkspace(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

func TestAnalyzeProject(t *testing.T) {
	ws := writeWorkspace(t, map[string]string{
		"ziust.toml":      config,
		"src/main.zt":     "fn main() {\n    break;\n}\n",
		"src/util/num.zt": "const N: u8 = 1;\n",
		"src/notes.txt":   "not source",
	})

	pa, err := AnalyzeProject(context.Background(), CompileOptions{Workspace: ws})
	require.NoError(t, err)
	assert.Equal(t, "demo", pa.Config.Name)
	assert.Equal(t, []string{"src/main.zt", "src/util/num.zt"}, pa.Paths())

	diags := pa.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, common.KindUnresolvedLabel, diags[0].Kind)

	u := pa.Unit(filepath.Join(ws, "src", "util", "num.zt"))
	require.NotNil(t, u)
	assert.Same(t, pa.Files()["src/util/num.zt"], u)
}

func TestAnalyzeProjectOverrides(t *testing.T) {
	ws := writeWorkspace(t, map[string]string{
		"ziust.toml":  config,
		"src/main.zt": "fn main() {}\n",
	})
	overrides := map[string]string{
		filepath.Join(ws, "src", "main.zt"):    "fn main(a: u8, a: u8) {}\n",
		filepath.Join(ws, "src", "unsaved.zt"): "let x: u8 = 256;\n",
	}

	pa, err := AnalyzeProject(context.Background(), CompileOptions{Workspace: ws, Overrides: overrides})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/main.zt", "src/unsaved.zt"}, pa.Paths())

	var kinds []common.Kind
	for _, d := range pa.Diagnostics() {
		kinds = append(kinds, d.Kind)
	}
	assert.Equal(t, []common.Kind{common.KindDuplicateName, common.KindIntegerOverflow}, kinds)
}

func TestAnalyzeProjectConfig(t *testing.T) {
	ws := writeWorkspace(t, map[string]string{
		"ziust.toml":  config + "src = \"lib\"\nprelude = true\nexclude = [\"lib/skip.zt\"]\n",
		"lib/a.zt":    "const A: u8 = 1;\n",
		"lib/skip.zt": "let = ;\n",
	})

	pa, err := AnalyzeProject(context.Background(), CompileOptions{Workspace: ws})
	require.NoError(t, err)
	assert.Contains(t, pa.Paths(), "lib/a.zt")
	assert.NotContains(t, pa.Paths(), "lib/skip.zt")
	for name := range std.Files {
		assert.Contains(t, pa.Paths(), name)
	}
	assert.Empty(t, pa.Diagnostics())
}

func TestAnalyzeProjectMissingConfig(t *testing.T) {
	ws := writeWorkspace(t, map[string]string{"src/main.zt": ""})
	_, err := AnalyzeProject(context.Background(), CompileOptions{Workspace: ws})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ziust.toml")
}

func TestAnalyzeProjectMissingSrc(t *testing.T) {
	ws := writeWorkspace(t, map[string]string{"ziust.toml": config})
	pa, err := AnalyzeProject(context.Background(), CompileOptions{Workspace: ws})
	require.NoError(t, err)
	assert.Empty(t, pa.Paths())
}

func TestAnalyzeProjectReusesUnchangedUnits(t *testing.T) {
	ws := writeWorkspace(t, map[string]string{
		"ziust.toml": config,
		"src/a.zt":   "const A: u8 = 1;\n",
		"src/b.zt":   "const B: u8 = 2;\n",
	})
	first, err := AnalyzeProject(context.Background(), CompileOptions{Workspace: ws})
	require.NoError(t, err)

	overrides := map[string]string{filepath.Join(ws, "src", "b.zt"): "const B: u8 = 3;\n"}
	second, err := AnalyzeProject(context.Background(), CompileOptions{Workspace: ws, Overrides: overrides, Previous: first})
	require.NoError(t, err)

	assert.Same(t, first.Files()["src/a.zt"], second.Files()["src/a.zt"])
	assert.NotSame(t, first.Files()["src/b.zt"], second.Files()["src/b.zt"])
}
