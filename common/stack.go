package common

import "iter"

// Stack is a generic LIFO container.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

func NewStack[T any]() *Stack[T] { return &Stack[T]{} }

func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element.
// The bool result is false when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	idx := len(s.items) - 1
	v := s.items[idx]
	s.items[idx] = zero
	s.items = s.items[:idx]
	return v, true
}

func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) Len() int { return len(s.items) }

func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }

// Truncate drops elements until at most n remain.
func (s *Stack[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	var zero T
	for i := n; i < len(s.items); i++ {
		s.items[i] = zero
	}
	if n < len(s.items) {
		s.items = s.items[:n]
	}
}

// Backward yields elements from the top of the stack down, paired with
// their distance from the top (0 = innermost).
func (s *Stack[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(s.items) - 1; i >= 0; i-- {
			if !yield(len(s.items)-1-i, s.items[i]) {
				return
			}
		}
	}
}
