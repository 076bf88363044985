package main

import "github.com/ziust-lang/ziust/cmd/lsp"

type LspCmd struct {
	Stdio bool `help:"(internal) LSP clients pass this flag. Safe to ignore." name:"stdio"`
}

func (l *LspCmd) Run(env *runEnv) error {
	return lsp.RunLSP(env.ctx)
}
