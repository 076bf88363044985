package main

import (
	"fmt"
	"os"

	"github.com/ziust-lang/ziust/frontend/compile"
	"github.com/ziust-lang/ziust/frontend/dump"
	"github.com/ziust-lang/ziust/frontend/report"
)

type DumpCmd struct {
	File string `arg:"" type:"existingfile" help:"Source file to dump."`
	CST  bool   `help:"Print the concrete syntax tree as an s-expression instead." name:"cst"`
}

func (d *DumpCmd) Run(env *runEnv) error {
	data, err := os.ReadFile(d.File)
	if err != nil {
		return err
	}
	source := string(data)

	u, err := compile.Source(env.ctx, d.File, source, compile.Options{})
	if err != nil {
		return err
	}

	switch {
	case d.CST && u.Tree != nil:
		fmt.Fprintln(env.stdout, u.Tree.Sexp())
	case u.Module != nil:
		out, err := dump.YAML(u.Module)
		if err != nil {
			return err
		}
		if _, err := env.stdout.Write(out); err != nil {
			return err
		}
	}

	r := report.Renderer{Source: func(string) (string, bool) { return source, true }}
	errorCount, err := r.Render(u.Diags, env.stderr)
	if err != nil {
		return err
	}
	if errorCount > 0 {
		return errFailed
	}
	return nil
}
