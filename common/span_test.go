package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanFrom(t *testing.T) {
	a := Span{Start: 4, End: 7, LineStart: 1, LineEnd: 1, ColumnStart: 5, ColumnEnd: 7, Source: "a.zt"}
	b := Span{Start: 20, End: 22, LineStart: 2, LineEnd: 2, ColumnStart: 3, ColumnEnd: 4, Source: "a.zt"}
	joined := SpanFrom(a, b)
	assert.Equal(t, 4, joined.Start)
	assert.Equal(t, 22, joined.End)
	assert.Equal(t, uint32(1), joined.LineStart)
	assert.Equal(t, uint32(2), joined.LineEnd)
	assert.Equal(t, "a.zt", joined.Source)
}

func TestSpanToRange(t *testing.T) {
	s := SpanNew(3, 3, 5, 9)
	rng := s.ToRange()
	assert.Equal(t, uint32(2), rng.Start.Line)
	assert.Equal(t, uint32(4), rng.Start.Character)
	assert.Equal(t, uint32(2), rng.End.Line)
	assert.Equal(t, uint32(9), rng.End.Character)
}

func TestSpanContains(t *testing.T) {
	s := SpanNew(2, 4, 5, 3)
	tests := []struct {
		line, col uint32
		want      bool
	}{
		{1, 10, false},
		{2, 4, false},
		{2, 5, true},
		{3, 1, true},
		{4, 3, true},
		{4, 4, false},
		{5, 1, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Contains(tt.line, tt.col), "%d:%d", tt.line, tt.col)
	}
}

func TestSpanText(t *testing.T) {
	src := "let x = 42;"
	assert.Equal(t, "42", Span{Start: 8, End: 10}.Text(src))
	assert.Equal(t, "", Span{Start: 8, End: 100}.Text(src))
}

func TestDiagnosticKinds(t *testing.T) {
	assert.Equal(t, PhaseSyntax, KindSyntax.Phase())
	assert.Equal(t, PhaseLowering, KindIntegerOverflow.Phase())
	assert.Equal(t, PhaseValidation, KindNonConstantTagValue.Phase())
	for k := KindSyntax; k < kindCount; k++ {
		assert.NotEmpty(t, kindNames[k], "kind %d has no name", k)
	}

	d := NewDiagnostic(KindDuplicateName, "duplicate name `x`", SpanNew(1, 1, 2, 2))
	assert.Contains(t, d.Error(), "DuplicateName")
	assert.Equal(t, PhaseValidation, d.Phase)
	p := d.ToProtocol()
	assert.Equal(t, "DuplicateName: duplicate name `x`", p.Message)
	assert.Equal(t, "ziust", p.Source)
}
