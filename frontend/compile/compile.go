// Package compile runs the front end over source files: parse, lower and
// validate.
package compile

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/ziust-lang/ziust/common"
	"github.com/ziust-lang/ziust/frontend/ast"
	"github.com/ziust-lang/ziust/frontend/lower"
	"github.com/ziust-lang/ziust/frontend/parser"
	"github.com/ziust-lang/ziust/frontend/syntax"
	"github.com/ziust-lang/ziust/frontend/validate"
)

type Options struct {
	Logger *slog.Logger
	// Workers bounds parallel compilation in Units; 0 means GOMAXPROCS.
	Workers int
}

func (o Options) logger(ctx context.Context) *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return common.Logger(ctx)
}

// Unit is one compiled source file.
type Unit struct {
	Path   string
	Source string
	Tree   *syntax.Node // nil after a syntax error
	Module *ast.Module  // nil after a syntax error
	Diags  []common.Diagnostic
}

func (u *Unit) HasErrors() bool {
	return len(u.Diags) > 0
}

// LowerAndValidate lowers tree and validates the result. Lowering
// diagnostics come first, followed by validation diagnostics.
func LowerAndValidate(ctx context.Context, tree *syntax.Node, opts Options) (*ast.Module, []common.Diagnostic, error) {
	m, diags, err := lower.Lower(ctx, tree, lower.Options{Logger: opts.logger(ctx)})
	if err != nil {
		return nil, nil, err
	}
	diags = append(diags, validate.Validate(m)...)
	return m, diags, nil
}

// Source compiles one file. A syntax error is reported as the unit's only
// diagnostic; err is non-nil only when ctx is cancelled.
func Source(ctx context.Context, path, source string, opts Options) (*Unit, error) {
	log := opts.logger(ctx).With("path", path)
	unit := &Unit{Path: path, Source: source}

	tree, perr := parser.Parse(path, source)
	if perr != nil {
		log.Debug("syntax error", "error", perr.Message, "span", perr.Span.String())
		unit.Diags = []common.Diagnostic{*perr}
		return unit, nil
	}
	unit.Tree = tree

	m, diags, err := LowerAndValidate(ctx, tree, Options{Logger: log})
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	unit.Module, unit.Diags = m, diags
	log.Debug("compiled", "diagnostics", len(diags))
	return unit, nil
}

// File is a source file handed to Units.
type File struct {
	Path   string
	Source string
}

// Units compiles files in parallel. The result is ordered by path.
func Units(ctx context.Context, files []File, opts Options) ([]*Unit, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	units := make([]*Unit, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, f := range files {
		g.Go(func() error {
			u, err := Source(gctx, f.Path, f.Source, opts)
			if err != nil {
				return err
			}
			units[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(units, func(a, b *Unit) int {
		return cmp.Compare(a.Path, b.Path)
	})
	return units, nil
}

// Diagnostics flattens the diagnostics of units in order.
func Diagnostics(units []*Unit) []common.Diagnostic {
	var out []common.Diagnostic
	for _, u := range units {
		out = append(out, u.Diags...)
	}
	return out
}
