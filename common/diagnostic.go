package common

import (
	"fmt"
	"slices"

	protocol "github.com/gluax-lang/lsp"
)

// Phase identifies the front-end stage that produced a Diagnostic.
type Phase uint8

const (
	PhaseSyntax Phase = iota
	PhaseLowering
	PhaseValidation
)

func (p Phase) String() string {
	switch p {
	case PhaseSyntax:
		return "syntax"
	case PhaseLowering:
		return "lowering"
	case PhaseValidation:
		return "validation"
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// Kind is the machine-readable error kind of a Diagnostic.
type Kind uint8

const (
	KindSyntax Kind = iota

	// lowering
	KindMalformedNode
	KindUnhandledKind
	KindIntegerOverflow
	KindInvalidLiteral

	// validation
	KindDuplicateName
	KindMisplacedReceiverParameter
	KindUnresolvedLabel
	KindInvalidDeferTarget
	KindNonConstantTagValue

	kindCount
)

var kindNames = [kindCount]string{
	KindSyntax:                     "SyntaxError",
	KindMalformedNode:              "MalformedNode",
	KindUnhandledKind:              "UnhandledKind",
	KindIntegerOverflow:            "IntegerOverflow",
	KindInvalidLiteral:             "InvalidLiteral",
	KindDuplicateName:              "DuplicateName",
	KindMisplacedReceiverParameter: "MisplacedReceiverParameter",
	KindUnresolvedLabel:            "UnresolvedLabel",
	KindInvalidDeferTarget:         "InvalidDeferTarget",
	KindNonConstantTagValue:        "NonConstantTagValue",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Phase returns the phase a kind belongs to.
func (k Kind) Phase() Phase {
	switch {
	case k == KindSyntax:
		return PhaseSyntax
	case k < KindDuplicateName:
		return PhaseLowering
	default:
		return PhaseValidation
	}
}

// Diagnostic is a single error reported by the front end.
type Diagnostic struct {
	Phase   Phase
	Kind    Kind
	Message string
	Span    Span
	// Related holds secondary locations, e.g. the first declaration of a duplicate name.
	Related []Span
}

func NewDiagnostic(kind Kind, msg string, span Span, related ...Span) Diagnostic {
	return Diagnostic{
		Phase:   kind.Phase(),
		Kind:    kind,
		Message: msg,
		Span:    span,
		Related: related,
	}
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s: %s", d.Span, d.Kind, d.Message)
}

func (d Diagnostic) ToProtocol() protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	return protocol.Diagnostic{
		Severity: &severity,
		Source:   "ziust",
		Message:  fmt.Sprintf("%s: %s", d.Kind, d.Message),
		Range:    d.Span.ToRange(),
	}
}

// PanicDiag aborts the current construct; callers recover at a boundary.
func PanicDiag(kind Kind, msg string, span Span) {
	d := NewDiagnostic(kind, msg, span)
	panic(&d)
}

// SortDiagnostics orders diagnostics by source position, keeping the
// relative order of diagnostics that start at the same place.
func SortDiagnostics(diags []Diagnostic) {
	slices.SortStableFunc(diags, func(a, b Diagnostic) int {
		if a.Span.Source != b.Span.Source {
			if a.Span.Source < b.Span.Source {
				return -1
			}
			return 1
		}
		return a.Span.Start - b.Span.Start
	})
}

func ToProtocolDiagnostics(diags []Diagnostic) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.ToProtocol())
	}
	return out
}
