package peekable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharsNormalisesCRLF(t *testing.T) {
	c := NewPeekableChars("a\r\nb")
	var got []rune
	var offsets []int
	for {
		offsets = append(offsets, c.Pos())
		r := c.Next()
		if r == nil {
			break
		}
		got = append(got, *r)
	}
	assert.Equal(t, []rune{'a', '\n', 'b'}, got)
	assert.Equal(t, []int{0, 1, 3, 4}, offsets)
}

func TestCharsPeekSecond(t *testing.T) {
	c := NewPeekableChars("'x'")
	require.NotNil(t, c.Peek())
	assert.Equal(t, '\'', *c.Peek())
	require.NotNil(t, c.PeekSecond())
	assert.Equal(t, 'x', *c.PeekSecond())

	c.Next()
	c.Next()
	assert.Equal(t, '\'', *c.Peek())
	assert.Nil(t, c.PeekSecond())
}

func TestCharsMultibyte(t *testing.T) {
	c := NewPeekableChars("é!")
	c.Next()
	assert.Equal(t, 2, c.Pos())
	assert.Equal(t, '!', *c.Next())
	assert.Nil(t, c.Next())
	assert.Nil(t, c.Peek())
}
