package lsp

import (
	"strings"
	"unicode/utf16"

	"github.com/gluax-lang/lsp"

	"github.com/ziust-lang/ziust/common"
)

// lineIndex converts between LSP positions, which count UTF-16 code units
// from 0, and span positions, which count runes from 1.
type lineIndex struct {
	lines []string
}

func newLineIndex(text string) lineIndex {
	return lineIndex{lines: strings.Split(text, "\n")}
}

// toSpan returns the 1-based line and rune column of pos.
func (li lineIndex) toSpan(pos lsp.Position) (line, column uint32) {
	column = 1
	if int(pos.Line) < len(li.lines) {
		var units uint32
		for _, r := range li.lines[pos.Line] {
			if units >= pos.Character {
				break
			}
			units += uint32(utf16.RuneLen(r))
			column++
		}
	}
	return pos.Line + 1, column
}

// character returns the UTF-16 offset of the 1-based rune column on the
// 1-based line.
func (li lineIndex) character(line, column uint32) uint32 {
	if line == 0 || int(line) > len(li.lines) {
		return adjust(column)
	}
	var units, n uint32
	for _, r := range li.lines[line-1] {
		if n+1 >= column {
			break
		}
		units += uint32(utf16.RuneLen(r))
		n++
	}
	// columns past the end of the line count as one unit each
	return units + adjust(column) - n
}

func adjust(n uint32) uint32 {
	if n <= 1 {
		return 0
	}
	return n - 1
}

func (li lineIndex) position(line, column uint32) lsp.Position {
	return lsp.Position{Line: adjust(line), Character: li.character(line, column)}
}

// toRange converts s; the end is exclusive.
func (li lineIndex) toRange(s common.Span) lsp.Range {
	return lsp.Range{
		Start: li.position(s.LineStart, s.ColumnStart),
		End:   li.position(s.LineEnd, s.ColumnEnd+1),
	}
}
