package tree

import "golang.org/x/exp/constraints"

// SearchTree is a binary search tree that does not apply any
// balancing strategy. How balanced its branches are depends
// exclusively on the order of the insert and remove operations.
// Values equal to a node's value are stored in its right subtree
type SearchTree[T any] struct {
	root *BinaryNode[T]
	cmp  Lesser[T]
	len  int
}

// NewSearchTree creates an empty search tree for ordered values
func NewSearchTree[T constraints.Ordered]() *SearchTree[T] {
	return NewSearchTreeWithLesser[T](OrderedLesser[T]{})
}

// NewSearchTreeWithLesser creates an empty search tree that
// orders its values using cmp
func NewSearchTreeWithLesser[T any](cmp Lesser[T]) *SearchTree[T] {
	return &SearchTree[T]{cmp: cmp}
}

// Root returns the root of the tree. It returns
// nil for an empty tree
func (t *SearchTree[T]) Root() *BinaryNode[T] {
	return t.root
}

// Len returns the number of nodes in the tree
func (t *SearchTree[T]) Len() int {
	return t.len
}

// Empty returns true if the tree has no nodes
func (t *SearchTree[T]) Empty() bool {
	return t.root == nil
}

// Min returns the node in the tree with the
// lowest value. It returns nil if the tree
// is empty
func (t *SearchTree[T]) Min() *BinaryNode[T] {
	return t.root.Min()
}

// Max returns the node in the tree with the
// highest value. It returns nil if tree
// is empty
func (t *SearchTree[T]) Max() *BinaryNode[T] {
	return t.root.Max()
}

// Higher returns the node in the tree with the lowest
// value that is greater or equal than v
func (t *SearchTree[T]) Higher(v T) *BinaryNode[T] {
	return higherNode[T](t.root, v)
}

// Lower returns the node in the tree with the highest
// value that is lower or equal than v
func (t *SearchTree[T]) Lower(v T) *BinaryNode[T] {
	return lowerNode[T](t.root, v)
}

// Insert a value into the tree. O(h)
func (t *SearchTree[T]) Insert(v T) {
	t.root = t.insert(t.root, v)
	t.len++
}

func (t *SearchTree[T]) insert(n *BinaryNode[T], v T) *BinaryNode[T] {
	if n == nil {
		return NewBinaryNode(t.cmp, v)
	}

	if t.cmp.Less(v, n.Value) < 0 {
		n.left = t.insert(n.left, v)
	} else {
		n.right = t.insert(n.right, v)
	}

	return n
}

// Search returns the first node found from the root that
// contains a value equal to v, or nil. O(h)
func (t *SearchTree[T]) Search(v T) *BinaryNode[T] {
	return t.root.Find(v)
}

// Contains returns true if the tree contains at
// least one node with value v
func (t *SearchTree[T]) Contains(v T) bool {
	return t.Search(v) != nil
}

// Remove the first node found from the root with value
// equal to v. It returns false if there was no such node,
// in which case the tree is left unchanged. O(h)
func (t *SearchTree[T]) Remove(v T) bool {
	var removed bool
	t.root, removed = t.remove(t.root, v)
	if removed {
		t.len--
	}

	return removed
}

func (t *SearchTree[T]) remove(n *BinaryNode[T], v T) (*BinaryNode[T], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool

	switch c := t.cmp.Less(v, n.Value); {
	case c < 0:
		n.left, removed = t.remove(n.left, v)
	case c > 0:
		n.right, removed = t.remove(n.right, v)
	case n.left == nil:
		return n.right, true
	case n.right == nil:
		return n.left, true
	default:
		// the successor takes the place of the node and is then
		// removed from the right subtree, where it is the minimum
		n.Value = n.right.Min().Value
		n.right, removed = t.remove(n.right, n.Value)
	}

	return n, removed
}

// RemoveAll drops every node of the tree. O(1)
func (t *SearchTree[T]) RemoveAll() {
	t.root = nil
	t.len = 0
}

// Walk visits every node of the tree in the order given by method
func (t *SearchTree[T]) Walk(method WalkMethod, fn func(*BinaryNode[T])) {
	walk(t.root, method, fn)
}

// InOrderWalk implements an in order walk
// on the tree.
func (t *SearchTree[T]) InOrderWalk(fn func(*BinaryNode[T])) {
	inOrderWalk(t.root, fn)
}

// PreOrderWalk implements a pre order walk
// on the tree.
func (t *SearchTree[T]) PreOrderWalk(fn func(*BinaryNode[T])) {
	preOrderWalk(t.root, fn)
}

// PostOrderWalk implements a post order walk
// on the tree.
func (t *SearchTree[T]) PostOrderWalk(fn func(*BinaryNode[T])) {
	postOrderWalk(t.root, fn)
}

// LevelOrderWalk visits the tree breadth first
func (t *SearchTree[T]) LevelOrderWalk(fn func(*BinaryNode[T])) {
	levelOrderWalk(t.root, fn)
}

// Values returns the values of the tree in order
func (t *SearchTree[T]) Values() []T {
	values := make([]T, 0, t.len)
	morrisInOrderWalk(t.root, func(n *BinaryNode[T]) {
		values = append(values, n.Value)
	})
	return values
}

// Equal returns true if both trees have the same shape
// and hold equal values
func (t *SearchTree[T]) Equal(o *SearchTree[T]) bool {
	return t.root.Equal(o.root)
}

// Validate checks that an in order walk of the tree
// yields its values in non decreasing order
func (t *SearchTree[T]) Validate() error {
	return validateOrder[T](t.root)
}

func (t *SearchTree[T]) String() string {
	return describe("SearchTree", t.root)
}
