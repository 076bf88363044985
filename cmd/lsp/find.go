package lsp

import (
	"github.com/ziust-lang/ziust/common"
	"github.com/ziust-lang/ziust/frontend/ast"
)

// pathFinder records the chain of nodes covering a position, outermost
// first.
type pathFinder struct {
	line, column uint32
	path         []ast.Node
}

func (f *pathFinder) Enter(n ast.Node) bool {
	if _, ok := n.(*ast.Module); !ok && !n.Span().Contains(f.line, f.column) {
		return false
	}
	f.path = append(f.path, n)
	return true
}

func (f *pathFinder) Exit(ast.Node) {}

func nodesAt(m *ast.Module, line, column uint32) []ast.Node {
	f := &pathFinder{line: line, column: column}
	ast.Walk(f, m)
	return f.path
}

type scopeLabel struct {
	name string
	kind ast.ConstructKind
	span common.Span
}

func constructLabel(n ast.Node) (*ast.Ident, ast.ConstructKind, bool) {
	switch n := n.(type) {
	case *ast.LoopExpression:
		return n.Label, ast.ConstructLoop, true
	case *ast.WhileStatement:
		return n.Label, ast.ConstructLoop, true
	case *ast.ForStatement:
		return n.Label, ast.ConstructLoop, true
	case *ast.MatchExpression:
		return n.Label, ast.ConstructMatch, true
	case *ast.BlockExpression:
		return n.Label, ast.ConstructBlock, true
	case *ast.BlockStatement:
		return n.Label, ast.ConstructBlock, true
	}
	return nil, 0, false
}

// labelsInScope lists the labels visible at the end of path, innermost
// first. Labels do not cross function boundaries.
func labelsInScope(path []ast.Node) []scopeLabel {
	var out []scopeLabel
	for i := len(path) - 1; i >= 0; i-- {
		if _, ok := path[i].(*ast.FnDeclaration); ok {
			break
		}
		var child ast.Node
		if i+1 < len(path) {
			child = path[i+1]
		}
		if !coversChild(path[i], child) {
			continue
		}
		if label, kind, ok := constructLabel(path[i]); ok && label != nil {
			out = append(out, scopeLabel{name: label.Raw, kind: kind, span: label.Span()})
		}
	}
	return out
}

// coversChild reports whether n's label is in scope inside child. Loop and
// match heads sit outside their construct.
func coversChild(n, child ast.Node) bool {
	switch n := n.(type) {
	case *ast.WhileStatement:
		return child != nil && child == ast.Node(n.Body)
	case *ast.ForStatement:
		return child != nil && child == ast.Node(n.Body)
	case *ast.MatchExpression:
		_, ok := child.(*ast.MatchArm)
		return ok
	}
	return true
}

func jumpTarget(n ast.Node) (*ast.Ident, *ast.LabelTarget, bool) {
	switch n := n.(type) {
	case *ast.BreakExpression:
		return n.Label, n.Target, true
	case *ast.ContinueExpression:
		return n.Label, n.Target, true
	case *ast.ReturnExpression:
		return n.Label, n.Target, true
	}
	return nil, nil, false
}

// targetAt resolves the jump or defer label under the position to the span
// of the construct it names.
func targetAt(m *ast.Module, line, column uint32) (common.Span, bool) {
	path := nodesAt(m, line, column)
	for i := len(path) - 1; i >= 0; i-- {
		if _, target, ok := jumpTarget(path[i]); ok {
			if target == nil {
				return common.Span{}, false
			}
			return target.Span, true
		}
		if d, ok := path[i].(*ast.DeferStatement); ok {
			labels := d.Labels
			if d.When != nil {
				labels = append(labels[:len(labels):len(labels)], *d.When)
			}
			for _, label := range labels {
				if !label.Span().Contains(line, column) {
					continue
				}
				for _, l := range labelsInScope(path[:i+1]) {
					if l.name == label.Raw {
						return l.span, true
					}
				}
			}
			return common.Span{}, false
		}
	}
	return common.Span{}, false
}

// labelDeclarationAt returns the label declared at the position, if any.
func labelDeclarationAt(m *ast.Module, line, column uint32) (*ast.Ident, bool) {
	path := nodesAt(m, line, column)
	for i := len(path) - 1; i >= 0; i-- {
		if label, _, ok := constructLabel(path[i]); ok && label != nil && label.Span().Contains(line, column) {
			return label, true
		}
	}
	return nil, false
}

// jumpsTo lists the jumps whose target is the label declared at span.
func jumpsTo(m *ast.Module, span common.Span) []ast.Node {
	var out []ast.Node
	ast.Inspect(m, func(n ast.Node) bool {
		if _, target, ok := jumpTarget(n); ok && target != nil && target.Span == span {
			out = append(out, n)
		}
		return true
	})
	return out
}
