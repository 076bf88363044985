// Package peekable provides a peekable iterator over a string
package peekable

import (
	"unicode/utf8"
)

// Chars is a peekable iterator over a string.
// It normalises Windows line endings ("\r\n") into a single '\n'.
type Chars struct {
	input   string
	pos     int
	width   int
	next    rune
	hasNext bool
}

func NewPeekableChars(s string) *Chars {
	p := &Chars{input: s}
	p.advance()
	return p
}

// advance decodes the rune at pos. "\r\n" is reported as one '\n' whose
// width covers both bytes.
func (p *Chars) advance() {
	if p.pos >= len(p.input) {
		p.hasNext = false
		p.next = 0
		p.width = 0
		return
	}

	r, w := utf8.DecodeRuneInString(p.input[p.pos:])
	if r == '\r' && p.pos+w < len(p.input) && p.input[p.pos+w] == '\n' {
		r = '\n'
		w++
	}

	p.next = r
	p.width = w
	p.hasNext = true
}

// Peek returns a copy of the next rune without consuming it.
// It returns nil if there is no next rune.
func (p *Chars) Peek() *rune {
	if !p.hasNext {
		return nil
	}
	r := p.next
	return &r
}

// PeekSecond returns the rune after the next one, or nil.
func (p *Chars) PeekSecond() *rune {
	if !p.hasNext {
		return nil
	}
	rest := p.pos + p.width
	if rest >= len(p.input) {
		return nil
	}
	r, _ := utf8.DecodeRuneInString(p.input[rest:])
	if r == '\r' && rest+1 < len(p.input) && p.input[rest+1] == '\n' {
		r = '\n'
	}
	return &r
}

// Next consumes and returns a copy of the next rune.
// It returns nil if there is no next rune.
func (p *Chars) Next() *rune {
	if !p.hasNext {
		return nil
	}
	r := p.next
	p.pos += p.width
	p.advance()
	return &r
}

// Pos is the byte offset of the rune Peek would return.
func (p *Chars) Pos() int {
	return p.pos
}
