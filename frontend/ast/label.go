package ast

import (
	"fmt"

	"github.com/ziust-lang/ziust/common"
)

// ConstructKind is the kind of construct a label or jump can target.
type ConstructKind uint8

const (
	ConstructBlock ConstructKind = iota
	ConstructLoop
	ConstructMatch
	ConstructFunction
)

func (k ConstructKind) String() string {
	switch k {
	case ConstructBlock:
		return "block"
	case ConstructLoop:
		return "loop"
	case ConstructMatch:
		return "match"
	case ConstructFunction:
		return "fn"
	}
	return fmt.Sprintf("ConstructKind(%d)", uint8(k))
}

// IsBreakable reports whether an unlabeled break may target k.
func (k ConstructKind) IsBreakable() bool {
	return k == ConstructLoop || k == ConstructMatch
}

// LabelTarget records what a break, continue or return jumps to.
type LabelTarget struct {
	// Depth counts enclosing constructs between the jump and its target; 0 is innermost.
	Depth int
	Kind  ConstructKind
	// Span is the declaring label, or the construct itself when unlabeled.
	Span common.Span
}
