package tree

// rotateLeft makes the right child of n the root of the subtree.
// n must have a right child
func rotateLeft[T any](n *AVLNode[T]) *AVLNode[T] {
	pivot := n.right

	n.right = pivot.left
	pivot.left = n

	n.updateHeight()
	pivot.updateHeight()
	return pivot
}

// rotateRight makes the left child of n the root of the subtree.
// n must have a left child
func rotateRight[T any](n *AVLNode[T]) *AVLNode[T] {
	pivot := n.left

	n.left = pivot.right
	pivot.right = n

	n.updateHeight()
	pivot.updateHeight()
	return pivot
}

func rotateLeftRight[T any](n *AVLNode[T]) *AVLNode[T] {
	n.left = rotateLeft(n.left)
	return rotateRight(n)
}

func rotateRightLeft[T any](n *AVLNode[T]) *AVLNode[T] {
	n.right = rotateRight(n.right)
	return rotateLeft(n)
}

// balanced restores the balance of n, whose subtrees are balanced
// and differ at most by two in height, and returns the new root
// of the subtree
func balanced[T any](n *AVLNode[T]) *AVLNode[T] {
	switch n.BalanceFactor() {
	case 2:
		if n.left.BalanceFactor() == -1 {
			return rotateLeftRight(n)
		}
		return rotateRight(n)
	case -2:
		if n.right.BalanceFactor() == 1 {
			return rotateRightLeft(n)
		}
		return rotateLeft(n)
	default:
		return n
	}
}
