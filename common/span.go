package common

import (
	"fmt"

	protocol "github.com/gluax-lang/lsp"
)

// Span represents a range in a source file.
//
// Lines and columns are 1-based; ColumnEnd is the column of the last rune
// covered by the span. Start and End are byte offsets (End exclusive).
type Span struct {
	Start, End             int
	LineStart, LineEnd     uint32
	ColumnStart, ColumnEnd uint32
	Source                 string // "" == unknown
}

func adjustN(n uint32) uint32 {
	if n <= 1 {
		return 0
	}
	return n - 1
}

func (s Span) ToRange() protocol.Range {
	return protocol.Range{
		Start: protocol.Position{
			Line:      adjustN(s.LineStart),
			Character: adjustN(s.ColumnStart),
		},
		End: protocol.Position{
			Line:      adjustN(s.LineEnd),
			Character: s.ColumnEnd,
		},
	}
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d:%d (%s)", s.LineStart, s.ColumnStart, s.LineEnd, s.ColumnEnd, s.Source)
}

// IsZero reports whether s carries no position at all.
func (s Span) IsZero() bool {
	return s.LineStart == 0 && s.LineEnd == 0 && s.Start == 0 && s.End == 0
}

// Contains reports whether the 1-based line/column position lies inside s.
func (s Span) Contains(line, column uint32) bool {
	if line < s.LineStart || line > s.LineEnd {
		return false
	}
	if line == s.LineStart && column < s.ColumnStart {
		return false
	}
	if line == s.LineEnd && column > s.ColumnEnd {
		return false
	}
	return true
}

// Text returns the slice of src covered by s, or "" if s is out of range.
func (s Span) Text(src string) string {
	if s.Start < 0 || s.End > len(src) || s.Start > s.End {
		return ""
	}
	return src[s.Start:s.End]
}

// SpanDefault Default span (1:1).
func SpanDefault() Span {
	return Span{
		LineStart:   1,
		LineEnd:     1,
		ColumnStart: 1,
		ColumnEnd:   1,
	}
}

func SpanNew(lineStart, lineEnd, columnStart, columnEnd uint32) Span {
	return Span{
		LineStart:   lineStart,
		LineEnd:     lineEnd,
		ColumnStart: columnStart,
		ColumnEnd:   columnEnd,
	}
}

func SpanSrc(src string) Span {
	span := SpanDefault()
	span.Source = src
	return span
}

// SpanFrom joins the outer bounds of two spans.
func SpanFrom(start, end Span) Span {
	return Span{
		Start:       start.Start,
		End:         end.End,
		LineStart:   start.LineStart,
		LineEnd:     end.LineEnd,
		ColumnStart: start.ColumnStart,
		ColumnEnd:   end.ColumnEnd,
		Source:      start.Source,
	}
}
