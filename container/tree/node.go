package tree

import "fmt"

// BinaryNode of a binary tree. A node owns its children
// exclusively and has no reference to its parent
type BinaryNode[T any] struct {
	Value T

	cmp   Lesser[T]
	left  *BinaryNode[T]
	right *BinaryNode[T]
}

// NewBinaryNode creates a node without children that
// compares its value using cmp
func NewBinaryNode[T any](cmp Lesser[T], v T) *BinaryNode[T] {
	return &BinaryNode[T]{Value: v, cmp: cmp}
}

func (n *BinaryNode[T]) leftChild() *BinaryNode[T]      { return n.left }
func (n *BinaryNode[T]) rightChild() *BinaryNode[T]     { return n.right }
func (n *BinaryNode[T]) setLeftChild(c *BinaryNode[T])  { n.left = c }
func (n *BinaryNode[T]) setRightChild(c *BinaryNode[T]) { n.right = c }
func (n *BinaryNode[T]) label() string                  { return fmt.Sprint(n.Value) }
func (n *BinaryNode[T]) value() T                       { return n.Value }
func (n *BinaryNode[T]) lesser() Lesser[T]              { return n.cmp }

// Left returns the node's left child
func (n *BinaryNode[T]) Left() *BinaryNode[T] {
	return n.left
}

// Right returns the node's right child
func (n *BinaryNode[T]) Right() *BinaryNode[T] {
	return n.right
}

// SetLeft replaces the node's left child. It is meant for
// building plain binary trees, a search tree manages the
// links of its own nodes
func (n *BinaryNode[T]) SetLeft(child *BinaryNode[T]) {
	n.left = child
}

// SetRight replaces the node's right child. See SetLeft
func (n *BinaryNode[T]) SetRight(child *BinaryNode[T]) {
	n.right = child
}

// Min returns the node in the subtree of the
// lowest order, the node itself if it has no left child
func (n *BinaryNode[T]) Min() *BinaryNode[T] {
	return minNode(n)
}

// Max returns the node in the subtree of the
// highest order
func (n *BinaryNode[T]) Max() *BinaryNode[T] {
	return maxNode(n)
}

// Find returns the first node in the subtree that
// contains a value equal to the one provided
func (n *BinaryNode[T]) Find(v T) *BinaryNode[T] {
	return findNode[T](n, v)
}

// Contains returns true if the subtree contains at
// least one node with value v
func (n *BinaryNode[T]) Contains(v T) bool {
	return n.Find(v) != nil
}

// Equal returns true if both nodes hold equal values and
// their subtrees are equal
func (n *BinaryNode[T]) Equal(o *BinaryNode[T]) bool {
	return equalNodes[T](n, o)
}

// Compare orders two nodes by their values only
func (n *BinaryNode[T]) Compare(o *BinaryNode[T]) int {
	return n.cmp.Less(n.Value, o.Value)
}

// Walk visits every node of the subtree in the order given by
// method. fn may read the tree, but must not insert or remove
// nodes while the walk runs
func (n *BinaryNode[T]) Walk(method WalkMethod, fn func(*BinaryNode[T])) {
	walk(n, method, fn)
}

// InOrderWalk implements an in order walk
// on the subtree.
func (n *BinaryNode[T]) InOrderWalk(fn func(*BinaryNode[T])) {
	inOrderWalk(n, fn)
}

// PreOrderWalk implements a pre order walk
// on the subtree.
func (n *BinaryNode[T]) PreOrderWalk(fn func(*BinaryNode[T])) {
	preOrderWalk(n, fn)
}

// PostOrderWalk implements a post order walk
// on the subtree.
func (n *BinaryNode[T]) PostOrderWalk(fn func(*BinaryNode[T])) {
	postOrderWalk(n, fn)
}

// LevelOrderWalk visits the subtree breadth first
func (n *BinaryNode[T]) LevelOrderWalk(fn func(*BinaryNode[T])) {
	levelOrderWalk(n, fn)
}

// String renders the subtree as a diagram with the right
// subtree above the node and the left subtree below it
func (n *BinaryNode[T]) String() string {
	return diagram(n)
}
