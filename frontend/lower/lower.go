// Package lower turns the concrete syntax tree into the typed AST.
//
// Every syntax.Kind has exactly one production in the dispatch table. A
// production receives the CST node and returns its lowered form: an AST
// node, a typed slice for list kinds, or true for marker leaves such as
// `mut`. Malformed input aborts the enclosing statement, which is replaced
// by an *ast.ErrorStatement while its siblings keep lowering.
package lower

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ziust-lang/ziust/common"
	"github.com/ziust-lang/ziust/frontend/ast"
	"github.com/ziust-lang/ziust/frontend/labels"
	"github.com/ziust-lang/ziust/frontend/syntax"
)

type Options struct {
	// Logger receives debug output; nil falls back to the context logger.
	Logger *slog.Logger
}

type lowerer struct {
	ctx    context.Context
	labels *labels.Tracker
	diags  []common.Diagnostic
	log    *slog.Logger
}

// cancelled unwinds a run whose context was cancelled between statements.
type cancelled struct{ err error }

// Lower lowers a module tree. The returned diagnostics are in source order.
// A non-nil error is returned only when ctx is cancelled or tree is not a
// module; per-statement problems are reported as diagnostics.
func Lower(ctx context.Context, tree *syntax.Node, opts Options) (m *ast.Module, diags []common.Diagnostic, err error) {
	if tree == nil {
		return nil, nil, fmt.Errorf("lower: nil tree")
	}
	if tree.Kind != syntax.KindModule {
		return nil, nil, fmt.Errorf("lower: expected %s root, got %s", syntax.KindModule, tree.Kind)
	}

	logger := opts.Logger
	if logger == nil {
		logger = common.Logger(ctx)
	}
	l := &lowerer{
		ctx:    ctx,
		labels: labels.New(),
		log:    logger,
	}

	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(cancelled)
			if !ok {
				panic(r)
			}
			m, diags, err = nil, nil, c.err
		}
	}()

	m = expect[*ast.Module](l, tree, "module")
	l.log.Debug("lowered module", "source", tree.Span().Source, "statements", len(m.Statements), "diagnostics", len(l.diags))
	return m, l.diags, nil
}

func (l *lowerer) fail(kind common.Kind, span common.Span, format string, args ...any) {
	common.PanicDiag(kind, fmt.Sprintf(format, args...), span)
}

func (l *lowerer) malformed(span common.Span, format string, args ...any) {
	l.fail(common.KindMalformedNode, span, format, args...)
}

// node lowers n through the dispatch table.
func (l *lowerer) node(n *syntax.Node) any {
	if int(n.Kind) >= len(productions) || productions[n.Kind] == nil {
		l.fail(common.KindUnhandledKind, n.Span(), "no lowering for %s", n.Kind)
	}
	return productions[n.Kind](l, n)
}

// expect lowers n and asserts the result is a T.
func expect[T any](l *lowerer, n *syntax.Node, what string) T {
	v, ok := l.node(n).(T)
	if !ok {
		l.malformed(n.Span(), "expected %s, found %s", what, n.Kind)
	}
	return v
}

// slot lowers the required child i of parent.
func slot[T any](l *lowerer, parent *syntax.Node, i int, what string) T {
	c := parent.Child(i)
	if c == nil {
		l.malformed(parent.Span(), "%s is missing its %s", parent.Kind, what)
	}
	return expect[T](l, c, what)
}

// optSlot lowers child i of parent, or returns the zero T when absent.
func optSlot[T any](l *lowerer, parent *syntax.Node, i int, what string) T {
	c := parent.Child(i)
	if c == nil {
		var zero T
		return zero
	}
	return expect[T](l, c, what)
}

// items lowers the repeated children of parent starting at slot from.
func items[T any](l *lowerer, parent *syntax.Node, from int, what string) []T {
	rest := parent.Rest(from)
	if len(rest) == 0 {
		return nil
	}
	out := make([]T, 0, len(rest))
	for _, c := range rest {
		if c == nil {
			l.malformed(parent.Span(), "%s has an absent %s", parent.Kind, what)
		}
		out = append(out, expect[T](l, c, what))
	}
	return out
}

// flag reports whether the optional marker leaf of the given kind is
// present in slot i.
func (l *lowerer) flag(parent *syntax.Node, i int, kind syntax.Kind) bool {
	c := parent.Child(i)
	if c == nil {
		return false
	}
	if c.Kind != kind {
		l.malformed(c.Span(), "expected %s, found %s", kind, c.Kind)
	}
	return expect[bool](l, c, kind.String())
}

func (l *lowerer) optLabel(parent *syntax.Node, i int) *ast.Ident {
	c := parent.Child(i)
	if c == nil {
		return nil
	}
	if c.Kind != syntax.KindLabel {
		l.malformed(c.Span(), "expected label, found %s", c.Kind)
	}
	label := expect[ast.Ident](l, c, "label")
	return &label
}

func (l *lowerer) attributes(parent *syntax.Node) []*ast.Attribute {
	return slot[[]*ast.Attribute](l, parent, 0, "attribute list")
}

// statements lowers a statement sequence, recovering each statement on its
// own. ctx is only consulted here, between statements.
func (l *lowerer) statements(parent *syntax.Node, list []*syntax.Node) []ast.Statement {
	out := make([]ast.Statement, 0, len(list))
	for _, n := range list {
		if err := l.ctx.Err(); err != nil {
			panic(cancelled{err})
		}
		out = append(out, l.recoverStatement(parent, n))
	}
	return out
}

func (l *lowerer) recoverStatement(parent, n *syntax.Node) (stmt ast.Statement) {
	span := parent.Span()
	if n != nil {
		span = n.Span()
	}
	mark, dmark := l.labels.Len(), len(l.diags)

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		d, ok := r.(*common.Diagnostic)
		if !ok {
			panic(r)
		}
		l.labels.Truncate(mark)
		// nested recoveries point into the discarded subtree
		l.diags = append(l.diags[:dmark], *d)
		l.log.Debug("replaced statement with error node", "span", span.String(), "kind", d.Kind.String(), "error", d.Message)
		stmt = ast.NewErrorStatement(d.Message, span)
	}()

	if n == nil {
		l.malformed(span, "%s has an absent statement", parent.Kind)
	}
	return l.statement(n)
}

// statement lowers n in statement position, wrapping deferrable shapes.
func (l *lowerer) statement(n *syntax.Node) ast.Statement {
	switch v := l.node(n).(type) {
	case ast.Statement:
		return v
	case ast.Deferrable:
		return ast.NewDeferrableStatement(v)
	}
	l.malformed(n.Span(), "expected statement, found %s", n.Kind)
	return nil
}

// enter pushes a construct onto the label tracker. Callers pop it with a
// deferred l.labels.Pop().
func (l *lowerer) enter(label *ast.Ident, kind ast.ConstructKind, span common.Span) {
	name := ""
	if label != nil {
		name, span = label.Raw, label.Span()
	}
	l.labels.Push(name, kind, span)
}
