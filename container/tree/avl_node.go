package tree

import "fmt"

// AVLNode of an AVL tree. Besides its value and children it
// caches the height of the subtree rooted at it
type AVLNode[T any] struct {
	Value T

	cmp    Lesser[T]
	height int
	left   *AVLNode[T]
	right  *AVLNode[T]
}

func newAVLNode[T any](cmp Lesser[T], v T) *AVLNode[T] {
	return &AVLNode[T]{Value: v, cmp: cmp}
}

func (n *AVLNode[T]) leftChild() *AVLNode[T]      { return n.left }
func (n *AVLNode[T]) rightChild() *AVLNode[T]     { return n.right }
func (n *AVLNode[T]) setLeftChild(c *AVLNode[T])  { n.left = c }
func (n *AVLNode[T]) setRightChild(c *AVLNode[T]) { n.right = c }
func (n *AVLNode[T]) label() string               { return fmt.Sprint(n.Value) }
func (n *AVLNode[T]) value() T                    { return n.Value }
func (n *AVLNode[T]) lesser() Lesser[T]           { return n.cmp }

// Left returns the node's left child
func (n *AVLNode[T]) Left() *AVLNode[T] {
	return n.left
}

// Right returns the node's right child
func (n *AVLNode[T]) Right() *AVLNode[T] {
	return n.right
}

// Height returns the height of the subtree rooted at the
// node. A leaf has height 0
func (n *AVLNode[T]) Height() int {
	if n == nil {
		return -1
	}

	return n.height
}

// LeftHeight returns the height of the left subtree, -1 if
// there is no left child
func (n *AVLNode[T]) LeftHeight() int {
	return n.left.Height()
}

// RightHeight returns the height of the right subtree, -1 if
// there is no right child
func (n *AVLNode[T]) RightHeight() int {
	return n.right.Height()
}

// BalanceFactor is the difference between the heights of
// the left and right subtrees
func (n *AVLNode[T]) BalanceFactor() int {
	return n.LeftHeight() - n.RightHeight()
}

func (n *AVLNode[T]) updateHeight() {
	n.height = max(n.LeftHeight(), n.RightHeight()) + 1
}

// Min returns the node in the subtree of the
// lowest order
func (n *AVLNode[T]) Min() *AVLNode[T] {
	return minNode(n)
}

// Max returns the node in the subtree of the
// highest order
func (n *AVLNode[T]) Max() *AVLNode[T] {
	return maxNode(n)
}

// Find returns the first node in the subtree that
// contains a value equal to the one provided
func (n *AVLNode[T]) Find(v T) *AVLNode[T] {
	return findNode[T](n, v)
}

// Contains returns true if the subtree contains at
// least one node with value v
func (n *AVLNode[T]) Contains(v T) bool {
	return n.Find(v) != nil
}

// Equal returns true if both nodes hold equal values and
// their subtrees are equal
func (n *AVLNode[T]) Equal(o *AVLNode[T]) bool {
	return equalNodes[T](n, o)
}

// Compare orders two nodes by their values only
func (n *AVLNode[T]) Compare(o *AVLNode[T]) int {
	return n.cmp.Less(n.Value, o.Value)
}

// Walk visits every node of the subtree in the order given
// by method. fn must not insert or remove nodes
func (n *AVLNode[T]) Walk(method WalkMethod, fn func(*AVLNode[T])) {
	walk(n, method, fn)
}

// String renders the subtree as a diagram with the right
// subtree above the node and the left subtree below it
func (n *AVLNode[T]) String() string {
	return diagram(n)
}
