package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv() (*runEnv, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &runEnv{ctx: context.Background(), stdout: &stdout, stderr: &stderr}, &stdout, &stderr
}

func TestCLIParses(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("ziust"), kong.Exit(func(int) {}))
	require.NoError(t, err)

	kctx, err := parser.Parse([]string{"--log-level", "debug", "check", "-p", "proj", "--compact"})
	require.NoError(t, err)
	assert.Equal(t, "check", kctx.Command())
	assert.Equal(t, "proj", cli.Check.Path)
	assert.True(t, cli.Check.Compact)
	assert.Equal(t, "debug", cli.LogLevel)

	_, err = parser.Parse([]string{"--log-level", "loud", "version"})
	assert.Error(t, err)
}

func TestNewThenCheck(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "demo")
	env, stdout, stderr := testEnv()

	require.NoError(t, (&NewCmd{Name: dir}).Run(env))
	assert.FileExists(t, filepath.Join(dir, "ziust.toml"))
	assert.FileExists(t, filepath.Join(dir, "src", "main.zt"))
	assert.Contains(t, stdout.String(), "created")

	require.NoError(t, (&CheckCmd{Path: dir}).Run(env))
	assert.Empty(t, stderr.String())

	assert.Error(t, (&NewCmd{Name: dir}).Run(env))
}

func TestCheckReportsDiagnostics(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "demo")
	env, _, stderr := testEnv()
	require.NoError(t, (&NewCmd{Name: dir}).Run(env))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.zt"), []byte("fn main() {\n    break;\n}\n"), 0o644))

	err := (&CheckCmd{Path: dir}).Run(env)
	assert.ErrorIs(t, err, errFailed)
	assert.Contains(t, stderr.String(), "error[UnresolvedLabel]")
	assert.Contains(t, stderr.String(), "--> src/main.zt:2:5")
	assert.Contains(t, stderr.String(), "encountered 1 error")
}

func TestDump(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a.zt")
	require.NoError(t, os.WriteFile(file, []byte("let x = 1;\n"), 0o644))

	env, stdout, _ := testEnv()
	require.NoError(t, (&DumpCmd{File: file}).Run(env))
	assert.Contains(t, stdout.String(), "node: LetDeclaration")

	env, stdout, _ = testEnv()
	require.NoError(t, (&DumpCmd{File: file, CST: true}).Run(env))
	assert.Contains(t, stdout.String(), "(module")
}

func TestDumpSyntaxError(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a.zt")
	require.NoError(t, os.WriteFile(file, []byte("let = ;\n"), 0o644))

	env, stdout, stderr := testEnv()
	assert.ErrorIs(t, (&DumpCmd{File: file}).Run(env), errFailed)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "error[SyntaxError]")
}

func TestVersion(t *testing.T) {
	env, stdout, _ := testEnv()
	require.NoError(t, (&VersionCmd{}).Run(env))
	assert.Equal(t, "ziust version: dev\n", stdout.String())
}
