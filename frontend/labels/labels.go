// Package labels tracks the labeled constructs enclosing the current
// position while a tree is lowered or validated.
package labels

import (
	"github.com/ziust-lang/ziust/common"
	"github.com/ziust-lang/ziust/frontend/ast"
)

type entry struct {
	label string // "" for unlabeled constructs
	kind  ast.ConstructKind
	span  common.Span
}

// Tracker is a LIFO stack of enclosing constructs. It is owned by a single
// lowering or validation run and must not be reused.
type Tracker struct {
	stack *common.Stack[entry]
}

func New() *Tracker {
	return &Tracker{stack: common.NewStack[entry]()}
}

// Push records entry into a construct. label is the bare name without the
// leading quote, or "" when the construct is unlabeled.
func (t *Tracker) Push(label string, kind ast.ConstructKind, span common.Span) {
	t.stack.Push(entry{label: label, kind: kind, span: span})
}

// Pop leaves the innermost construct. Popping an empty tracker is a no-op.
func (t *Tracker) Pop() {
	t.stack.Pop()
}

func (t *Tracker) Len() int { return t.stack.Len() }

// Truncate restores the tracker to a depth previously returned by Len.
func (t *Tracker) Truncate(n int) {
	t.stack.Truncate(n)
}

// Resolve finds the innermost construct declaring label. Labels do not
// cross function boundaries.
func (t *Tracker) Resolve(label string) (ast.LabelTarget, bool) {
	return t.findInFunction(func(e entry) bool { return e.label == label })
}

// ResolveBreak finds the target of an unlabeled break: the nearest loop or
// match. Function boundaries stop the search.
func (t *Tracker) ResolveBreak() (ast.LabelTarget, bool) {
	return t.findInFunction(func(e entry) bool { return e.kind.IsBreakable() })
}

// ResolveContinue finds the nearest enclosing loop.
func (t *Tracker) ResolveContinue() (ast.LabelTarget, bool) {
	return t.findInFunction(func(e entry) bool { return e.kind == ast.ConstructLoop })
}

// ResolveReturn finds the nearest enclosing function.
func (t *Tracker) ResolveReturn() (ast.LabelTarget, bool) {
	return t.find(func(e entry) bool { return e.kind == ast.ConstructFunction })
}

func (t *Tracker) find(match func(entry) bool) (ast.LabelTarget, bool) {
	for depth, e := range t.stack.Backward() {
		if match(e) {
			return ast.LabelTarget{Depth: depth, Kind: e.kind, Span: e.span}, true
		}
	}
	return ast.LabelTarget{}, false
}

func (t *Tracker) findInFunction(match func(entry) bool) (ast.LabelTarget, bool) {
	for depth, e := range t.stack.Backward() {
		if e.kind == ast.ConstructFunction {
			break
		}
		if match(e) {
			return ast.LabelTarget{Depth: depth, Kind: e.kind, Span: e.span}, true
		}
	}
	return ast.LabelTarget{}, false
}
