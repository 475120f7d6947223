package tree

import "golang.org/x/exp/constraints"

// AVLTree is a binary search tree that keeps the heights of the
// two subtrees of every node within one of each other. Every insert
// and remove rebalances the nodes on the path back to the root with
// rotations, so all operations are O(log n)
type AVLTree[T any] struct {
	root *AVLNode[T]
	cmp  Lesser[T]
	len  int
}

// NewAVLTree creates an empty AVL tree for ordered values
func NewAVLTree[T constraints.Ordered]() *AVLTree[T] {
	return NewAVLTreeWithLesser[T](OrderedLesser[T]{})
}

// NewAVLTreeWithLesser creates an empty AVL tree that
// orders its values using cmp
func NewAVLTreeWithLesser[T any](cmp Lesser[T]) *AVLTree[T] {
	return &AVLTree[T]{cmp: cmp}
}

// Root returns the root of the tree. It returns
// nil for an empty tree
func (t *AVLTree[T]) Root() *AVLNode[T] {
	return t.root
}

// Len returns the number of nodes in the tree
func (t *AVLTree[T]) Len() int {
	return t.len
}

// Empty returns true if the tree has no nodes
func (t *AVLTree[T]) Empty() bool {
	return t.root == nil
}

// Height returns the height of the tree, -1 if it is empty
func (t *AVLTree[T]) Height() int {
	return t.root.Height()
}

// Min returns the node in the tree with the
// lowest value. It returns nil if the tree
// is empty
func (t *AVLTree[T]) Min() *AVLNode[T] {
	return t.root.Min()
}

// Max returns the node in the tree with the
// highest value. It returns nil if tree
// is empty
func (t *AVLTree[T]) Max() *AVLNode[T] {
	return t.root.Max()
}

// Higher returns the node in the tree with the lowest
// value that is greater or equal than v
func (t *AVLTree[T]) Higher(v T) *AVLNode[T] {
	return higherNode[T](t.root, v)
}

// Lower returns the node in the tree with the highest
// value that is lower or equal than v
func (t *AVLTree[T]) Lower(v T) *AVLNode[T] {
	return lowerNode[T](t.root, v)
}

// Insert a value into the tree. O(log n)
func (t *AVLTree[T]) Insert(v T) {
	t.root = t.insert(t.root, v)
	t.len++
}

func (t *AVLTree[T]) insert(n *AVLNode[T], v T) *AVLNode[T] {
	if n == nil {
		return newAVLNode(t.cmp, v)
	}

	if t.cmp.Less(v, n.Value) < 0 {
		n.left = t.insert(n.left, v)
	} else {
		n.right = t.insert(n.right, v)
	}

	n = balanced(n)
	n.updateHeight()
	return n
}

// Search returns the first node found from the root that
// contains a value equal to v, or nil. O(log n)
func (t *AVLTree[T]) Search(v T) *AVLNode[T] {
	return t.root.Find(v)
}

// Contains returns true if the tree contains at
// least one node with value v
func (t *AVLTree[T]) Contains(v T) bool {
	return t.Search(v) != nil
}

// Remove the first node found from the root with value
// equal to v. It returns false if there was no such node,
// in which case the tree is left unchanged. O(log n)
func (t *AVLTree[T]) Remove(v T) bool {
	var removed bool
	t.root, removed = t.remove(t.root, v)
	if removed {
		t.len--
	}

	return removed
}

func (t *AVLTree[T]) remove(n *AVLNode[T], v T) (*AVLNode[T], bool) {
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
		n.Value = n.right.Min().Value
		n.right, removed = t.remove(n.right, n.Value)
	}

	// every level unwound by the recursion is rebalanced, not
	// only the parent of the removed node
	n = balanced(n)
	n.updateHeight()
	return n, removed
}

// RemoveAll drops every node of the tree. O(1)
func (t *AVLTree[T]) RemoveAll() {
	t.root = nil
	t.len = 0
}

// Walk visits every node of the tree in the order given by method
func (t *AVLTree[T]) Walk(method WalkMethod, fn func(*AVLNode[T])) {
	walk(t.root, method, fn)
}

// InOrderWalk implements an in order walk
// on the tree.
func (t *AVLTree[T]) InOrderWalk(fn func(*AVLNode[T])) {
	inOrderWalk(t.root, fn)
}

// PreOrderWalk implements a pre order walk
// on the tree.
func (t *AVLTree[T]) PreOrderWalk(fn func(*AVLNode[T])) {
	preOrderWalk(t.root, fn)
}

// PostOrderWalk implements a post order walk
// on the tree.
func (t *AVLTree[T]) PostOrderWalk(fn func(*AVLNode[T])) {
	postOrderWalk(t.root, fn)
}

// LevelOrderWalk visits the tree breadth first
func (t *AVLTree[T]) LevelOrderWalk(fn func(*AVLNode[T])) {
	levelOrderWalk(t.root, fn)
}

// Values returns the values of the tree in order
func (t *AVLTree[T]) Values() []T {
	values := make([]T, 0, t.len)
	morrisInOrderWalk(t.root, func(n *AVLNode[T]) {
		values = append(values, n.Value)
	})
	return values
}

// Equal returns true if both trees have the same shape
// and hold equal values
func (t *AVLTree[T]) Equal(o *AVLTree[T]) bool {
	return t.root.Equal(o.root)
}

// Validate checks the ordering of the tree, that the cached
// heights are right and that every node is balanced
func (t *AVLTree[T]) Validate() error {
	if err := validateOrder[T](t.root); err != nil {
		return err
	}

	return validateBalance(t.root)
}

func (t *AVLTree[T]) String() string {
	return describe("AVLTree", t.root)
}
