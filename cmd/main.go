package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ziust-lang/ziust/common"
)

// errFailed reports that diagnostics were already printed.
var errFailed = errors.New("compilation failed")

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("ziust"),
		kong.Description("Ziust front end"),
		kong.UsageOnError(),
	)

	var level slog.Level
	kctx.FatalIfErrorf(level.UnmarshalText([]byte(cli.LogLevel)))
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	env := &runEnv{
		ctx:    common.WithLogger(context.Background(), logger),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	err := kctx.Run(env)
	if errors.Is(err, errFailed) {
		os.Exit(1)
	}
	kctx.FatalIfErrorf(err)
}

type CLI struct {
	LogLevel string `help:"Log level." enum:"debug,info,warn,error" default:"warn" name:"log-level"`

	Check   CheckCmd   `cmd:"" help:"Check the project." aliases:"build"`
	Dump    DumpCmd    `cmd:"" help:"Print the lowered AST of a file."`
	New     NewCmd     `cmd:"" help:"Create a new project."`
	Lsp     LspCmd     `cmd:"" help:"Run the LSP server."`
	Version VersionCmd `cmd:"" help:"Show version."`
}

// runEnv is bound into every command's Run.
type runEnv struct {
	ctx    context.Context
	stdout io.Writer
	stderr io.Writer
}
