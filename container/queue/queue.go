package queue

import (
	"github.com/eaugeas/arbor/container/list"
)

// Queue is a FIFO container backed by a singly linked list,
// so both Enqueue and Dequeue are O(1)
type Queue[T any] struct {
	elements *list.List[T]
}

// New creates an empty queue
func New[T any]() *Queue[T] {
	return &Queue[T]{elements: list.New[T]()}
}

// Enqueue adds v at the back of the queue
func (q *Queue[T]) Enqueue(v T) {
	q.elements.AppendValue(v)
}

// Dequeue removes and returns the front of the queue. The
// boolean is false when the queue is empty
func (q *Queue[T]) Dequeue() (T, bool) {
	n := q.elements.RemoveFirst()
	if n == nil {
		var zero T
		return zero, false
	}

	return n.Value, true
}

// Peek returns the front of the queue without removing it
func (q *Queue[T]) Peek() (T, bool) {
	n := q.elements.Peek(list.First)
	if n == nil {
		var zero T
		return zero, false
	}

	return n.Value, true
}

// Len returns the number of queued elements
func (q *Queue[T]) Len() int {
	return q.elements.Len()
}

// Empty returns true if nothing is queued
func (q *Queue[T]) Empty() bool {
	return q.elements.Empty()
}

// RemoveAll drops every queued element
func (q *Queue[T]) RemoveAll() {
	q.elements.RemoveAll()
}

func (q *Queue[T]) String() string {
	return "Queue impl. based on " + q.elements.String()
}
