package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackPushPop(t *testing.T) {
	var s Stack[int]
	assert.True(t, s.Empty())
	_, ok := s.Pop()
	assert.False(t, ok)

	s.Push(1)
	s.Push(2)
	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 2, top)

	v, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, s.Len())
}

func TestStackTruncate(t *testing.T) {
	s := NewStack[string]()
	for _, v := range []string{"a", "b", "c", "d"} {
		s.Push(v)
	}
	s.Truncate(2)
	assert.Equal(t, 2, s.Len())
	top, _ := s.Peek()
	assert.Equal(t, "b", top)

	s.Truncate(5)
	assert.Equal(t, 2, s.Len())
	s.Truncate(-1)
	assert.True(t, s.Empty())
}

func TestStackBackward(t *testing.T) {
	var s Stack[string]
	s.Push("outer")
	s.Push("inner")

	var got []string
	var depths []int
	for depth, v := range s.Backward() {
		got = append(got, v)
		depths = append(depths, depth)
	}
	assert.Equal(t, []string{"inner", "outer"}, got)
	assert.Equal(t, []int{0, 1}, depths)
}
