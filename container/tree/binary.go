package tree

import "strings"

// BinaryTree is a binary tree without any ordering between
// its nodes. Callers assemble the nodes with NewBinaryNode,
// SetLeft and SetRight
type BinaryTree[T any] struct {
	root *BinaryNode[T]
}

// NewBinaryTree creates a tree rooted at root, which may be nil
func NewBinaryTree[T any](root *BinaryNode[T]) *BinaryTree[T] {
	return &BinaryTree[T]{root: root}
}

// Root returns the root of the tree. It returns
// nil for an empty tree
func (t *BinaryTree[T]) Root() *BinaryNode[T] {
	return t.root
}

// Empty returns true if the tree has no nodes
func (t *BinaryTree[T]) Empty() bool {
	return t.root == nil
}

// Len counts the nodes of the tree. O(n)
func (t *BinaryTree[T]) Len() int {
	return countNodes(t.root)
}

// RemoveAll drops every node of the tree. O(1)
func (t *BinaryTree[T]) RemoveAll() {
	t.root = nil
}

// Walk visits every node of the tree in the order given by method
func (t *BinaryTree[T]) Walk(method WalkMethod, fn func(*BinaryNode[T])) {
	walk(t.root, method, fn)
}

// WalkFrom visits every node of the subtree rooted at start, or
// of the whole tree if start is nil
func (t *BinaryTree[T]) WalkFrom(start *BinaryNode[T], method WalkMethod, fn func(*BinaryNode[T])) {
	if start == nil {
		start = t.root
	}

	walk(start, method, fn)
}

// String lists the values of the tree in level order
func (t *BinaryTree[T]) String() string {
	if t.Empty() {
		return "BinaryTree = " + emptyTree
	}

	var labels []string
	levelOrderWalk(t.root, func(n *BinaryNode[T]) {
		labels = append(labels, n.label())
	})

	return "BinaryTree:\n" + strings.Join(labels, "\n")
}
