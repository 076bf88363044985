package main

import (
	"path/filepath"

	"github.com/ziust-lang/ziust/frontend/project"
	"github.com/ziust-lang/ziust/frontend/report"
)

type CheckCmd struct {
	Path    string `help:"Path to the project directory." short:"p" default:"."`
	Compact bool   `help:"Print one line per diagnostic."`
}

func (c *CheckCmd) Run(env *runEnv) error {
	absPath, err := filepath.Abs(c.Path)
	if err != nil {
		return err
	}

	pAnalysis, err := project.AnalyzeProject(env.ctx, project.CompileOptions{Workspace: absPath})
	if err != nil {
		return err
	}

	r := report.Renderer{
		Compact: c.Compact,
		Name:    pAnalysis.StripWorkspace,
		Source: func(source string) (string, bool) {
			u := pAnalysis.Unit(source)
			if u == nil {
				return "", false
			}
			return u.Source, true
		},
	}
	errorCount, err := r.Render(pAnalysis.Diagnostics(), env.stderr)
	if err != nil {
		return err
	}
	if errorCount > 0 {
		return errFailed
	}
	return nil
}
