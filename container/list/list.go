package list

import (
	"fmt"
	"strings"
)

// Location identifies one of the ends of a List
type Location int

const (
	// First is the head of the list
	First Location = iota

	// Last is the tail of the list
	Last
)

// Node of a singly linked list
type Node[T any] struct {
	Value T

	next *Node[T]
}

// NewNode creates a detached node holding v
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// Next returns the node that follows n in its list
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// String renders the node's value
func (n *Node[T]) String() string {
	return fmt.Sprint(n.Value)
}

// List is a singly linked list that keeps references
// to both of its ends so that appending is O(1)
type List[T any] struct {
	head *Node[T]
	tail *Node[T]
	len  int
}

// New creates an empty list
func New[T any]() *List[T] {
	return &List[T]{}
}

// Head returns the first node of the list or nil
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Tail returns the last node of the list or nil
func (l *List[T]) Tail() *Node[T] {
	return l.tail
}

// Empty returns true if the list has no nodes
func (l *List[T]) Empty() bool {
	return l.head == nil
}

// Len returns the number of nodes in the list
func (l *List[T]) Len() int {
	return l.len
}

func (l *List[T]) hasMultipleNodes() bool {
	return !l.Empty() && l.head != l.tail
}

// NodeAt returns the node at position index, or nil if
// the list is shorter than that. O(index)
func (l *List[T]) NodeAt(index int) *Node[T] {
	if index < 0 {
		return nil
	}

	curr := l.head
	for i := 0; curr != nil && i < index; i++ {
		curr = curr.next
	}

	return curr
}

// Append links n at the end of the list. O(1)
func (l *List[T]) Append(n *Node[T]) {
	if l.Empty() {
		l.Prepend(n)
		return
	}

	n.next = nil
	l.tail.next = n
	l.tail = n
	l.len++
}

// AppendValue appends a new node holding v. O(1)
func (l *List[T]) AppendValue(v T) {
	l.Append(NewNode(v))
}

// Prepend links n at the beginning of the list. O(1)
func (l *List[T]) Prepend(n *Node[T]) {
	if l.Empty() {
		n.next = nil
		l.head = n
		l.tail = n
		l.len = 1
		return
	}

	n.next = l.head
	l.head = n
	l.len++
}

// PrependValue prepends a new node holding v. O(1)
func (l *List[T]) PrependValue(v T) {
	l.Prepend(NewNode(v))
}

// InsertAfter links n right after the node after, which must
// belong to the list. It does nothing on an empty list. O(1)
func (l *List[T]) InsertAfter(n *Node[T], after *Node[T]) {
	if l.Empty() {
		return
	}

	if after == l.tail {
		l.Append(n)
		return
	}

	n.next = after.next
	after.next = n
	l.len++
}

// Move moves the node at from to the location to. Moving the
// first node to the end is O(1), the opposite is O(n)
func (l *List[T]) Move(from, to Location) {
	if from == to || !l.hasMultipleNodes() {
		return
	}

	if from == First {
		head := l.head
		l.head = head.next
		l.len--
		l.Append(head)
		return
	}

	tail := l.tail
	l.RemoveLast()
	l.Prepend(tail)
}

// RemoveAll drops every node of the list. O(1)
func (l *List[T]) RemoveAll() {
	l.head = nil
	l.tail = nil
	l.len = 0
}

// RemoveFirst unlinks the first node and returns it, or
// nil if the list is empty. O(1)
func (l *List[T]) RemoveFirst() *Node[T] {
	if l.Empty() {
		return nil
	}

	removed := l.head
	if !l.hasMultipleNodes() {
		l.RemoveAll()
		return removed
	}

	l.head = removed.next
	removed.next = nil
	l.len--
	return removed
}

// RemoveLast unlinks the last node. O(n)
func (l *List[T]) RemoveLast() {
	if l.Empty() {
		return
	}

	if !l.hasMultipleNodes() {
		l.RemoveAll()
		return
	}

	curr := l.head
	for curr.next != l.tail {
		curr = curr.next
	}

	curr.next = nil
	l.tail = curr
	l.len--
}

// Remove unlinks n if it belongs to the list. O(n)
func (l *List[T]) Remove(n *Node[T]) {
	switch {
	case l.Empty():
		return
	case l.Is(n, First):
		l.RemoveFirst()
		return
	case l.Is(n, Last):
		l.RemoveLast()
		return
	}

	for curr := l.head; curr.next != nil; curr = curr.next {
		if curr.next == n {
			curr.next = n.next
			n.next = nil
			l.len--
			return
		}
	}
}

// RemoveAfter unlinks the node that follows n, if any. O(1)
func (l *List[T]) RemoveAfter(n *Node[T]) {
	if l.Empty() || n == l.tail || n.next == nil {
		return
	}

	removed := n.next
	n.next = removed.next
	removed.next = nil
	if removed == l.tail {
		l.tail = n
	}
	l.len--
}

// Peek returns the node at loc without removing it
func (l *List[T]) Peek(loc Location) *Node[T] {
	if loc == First {
		return l.head
	}

	return l.tail
}

// Is returns true if n is the node at loc
func (l *List[T]) Is(n *Node[T], loc Location) bool {
	return n != nil && l.Peek(loc) == n
}

// Values returns the values of the list from head to tail
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.len)
	for curr := l.head; curr != nil; curr = curr.next {
		values = append(values, curr.Value)
	}

	return values
}

// String renders the list from head to tail
func (l *List[T]) String() string {
	if l.Empty() {
		return "Empty"
	}

	var b strings.Builder
	b.WriteString("List => ")
	for curr := l.head; curr != nil; curr = curr.next {
		b.WriteString(curr.String())
		b.WriteString(" ")
	}

	return b.String()
}
