package ntree

import (
	"fmt"
	"strings"

	"github.com/eaugeas/arbor/container/queue"
	"github.com/eaugeas/arbor/container/stack"
)

// WalkMethod selects the order in which a walk visits nodes
type WalkMethod int

const (
	// DepthFirst visits a node and then each of its subtrees,
	// from the first child to the last
	DepthFirst WalkMethod = iota

	// LevelOrder visits the nodes breadth first
	LevelOrder
)

// Node of a tree with any number of children
type Node[T comparable] struct {
	Value    T
	children []*Node[T]
}

// NewNode creates a node holding v and the given children
func NewNode[T comparable](v T, children ...*Node[T]) *Node[T] {
	return &Node[T]{Value: v, children: children}
}

// Add appends child as the last child of the node. O(1)
func (n *Node[T]) Add(child *Node[T]) {
	n.children = append(n.children, child)
}

// Children returns the children of the node in insertion order
func (n *Node[T]) Children() []*Node[T] {
	return n.children
}

// Walk visits every node of the subtree rooted at n. O(n)
func (n *Node[T]) Walk(method WalkMethod, fn func(*Node[T])) {
	if n == nil {
		return
	}

	switch method {
	case DepthFirst:
		pending := stack.New(n)
		for !pending.Empty() {
			curr, _ := pending.Pop()
			fn(curr)

			for i := len(curr.children) - 1; i >= 0; i-- {
				pending.Push(curr.children[i])
			}
		}

	case LevelOrder:
		pending := queue.New[*Node[T]]()
		pending.Enqueue(n)
		for !pending.Empty() {
			curr, _ := pending.Dequeue()
			fn(curr)

			for _, child := range curr.children {
				pending.Enqueue(child)
			}
		}
	}
}

// Search returns the first node holding v found by a level order
// walk, or nil. O(n)
func (n *Node[T]) Search(v T) *Node[T] {
	if n == nil {
		return nil
	}

	pending := queue.New[*Node[T]]()
	pending.Enqueue(n)
	for !pending.Empty() {
		curr, _ := pending.Dequeue()
		if curr.Value == v {
			return curr
		}

		for _, child := range curr.children {
			pending.Enqueue(child)
		}
	}

	return nil
}

type nodePair[T comparable] struct {
	a, b *Node[T]
}

// Equal returns true if both nodes hold the same value and have
// equal children in the same order
func (n *Node[T]) Equal(o *Node[T]) bool {
	pending := stack.New(nodePair[T]{n, o})
	for !pending.Empty() {
		p, _ := pending.Pop()

		switch {
		case p.a == nil && p.b == nil:
			continue
		case p.a == nil || p.b == nil:
			return false
		case p.a.Value != p.b.Value, len(p.a.children) != len(p.b.children):
			return false
		}

		for i := range p.a.children {
			pending.Push(nodePair[T]{p.a.children[i], p.b.children[i]})
		}
	}

	return true
}

func (n *Node[T]) String() string {
	return fmt.Sprint(n.Value)
}

// Tree is a rooted tree where every node can have any number
// of children. There is no ordering between the values
type Tree[T comparable] struct {
	root *Node[T]
}

// New creates a tree rooted at root, which may be nil
func New[T comparable](root *Node[T]) *Tree[T] {
	return &Tree[T]{root: root}
}

// Root returns the root of the tree, nil if it is empty
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Empty returns true if the tree has no nodes
func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// Walk visits every node of the tree
func (t *Tree[T]) Walk(method WalkMethod, fn func(*Node[T])) {
	t.root.Walk(method, fn)
}

// WalkFrom visits every node of the subtree rooted at start, or
// of the whole tree if start is nil
func (t *Tree[T]) WalkFrom(start *Node[T], method WalkMethod, fn func(*Node[T])) {
	if start == nil {
		start = t.root
	}

	start.Walk(method, fn)
}

// Search returns the first node holding v in level order, or nil
func (t *Tree[T]) Search(v T) *Node[T] {
	return t.root.Search(v)
}

// Equal returns true if both trees have the same shape and values
func (t *Tree[T]) Equal(o *Tree[T]) bool {
	return t.root.Equal(o.root)
}

// RemoveAll drops every node of the tree. O(1)
func (t *Tree[T]) RemoveAll() {
	t.root = nil
}

// String lists the values of the tree in level order
func (t *Tree[T]) String() string {
	if t.Empty() {
		return "Tree = Empty"
	}

	var labels []string
	t.Walk(LevelOrder, func(n *Node[T]) {
		labels = append(labels, n.String())
	})

	return "Tree:\n" + strings.Join(labels, "\n")
}
