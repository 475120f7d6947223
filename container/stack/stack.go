package stack

import (
	"fmt"
	"strings"
)

// Stack is a LIFO container backed by a slice
type Stack[T any] struct {
	elements []T
}

// New creates a stack holding values, the last one
// being the top of the stack
func New[T any](values ...T) *Stack[T] {
	elements := make([]T, len(values))
	copy(elements, values)
	return &Stack[T]{elements: elements}
}

// Push puts v on top of the stack. O(1) amortized
func (s *Stack[T]) Push(v T) {
	s.elements = append(s.elements, v)
}

// Pop removes and returns the top of the stack. The
// boolean is false when the stack is empty
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s.Empty() {
		return zero, false
	}

	last := len(s.elements) - 1
	v := s.elements[last]
	s.elements[last] = zero
	s.elements = s.elements[:last]
	return v, true
}

// Peek returns the top of the stack without removing it
func (s *Stack[T]) Peek() (T, bool) {
	if s.Empty() {
		var zero T
		return zero, false
	}

	return s.elements[len(s.elements)-1], true
}

// Len returns the number of elements in the stack
func (s *Stack[T]) Len() int {
	return len(s.elements)
}

// Empty returns true if the stack has no elements
func (s *Stack[T]) Empty() bool {
	return len(s.elements) == 0
}

// RemoveAll drops every element
func (s *Stack[T]) RemoveAll() {
	s.elements = nil
}

// String renders the stack top first, one element per line
func (s *Stack[T]) String() string {
	var b strings.Builder
	b.WriteString("Stack:")
	for i := len(s.elements) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "\n|%v|", s.elements[i])
	}

	return b.String()
}
