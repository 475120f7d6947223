package tree

func validateOrder[T any, N orderedNode[T, N]](root N) error {
	var prev N
	var null N
	var err error

	morrisInOrderWalk(root, func(n N) {
		if err == nil && prev != null && n.lesser().Less(prev.value(), n.value()) > 0 {
			err = ErrOrderViolation{Prev: prev.label(), Value: n.label()}
		}
		prev = n
	})

	return err
}

// validateBalance recomputes the height of every subtree bottom up
// and compares it with the cached one
func validateBalance[T any](root *AVLNode[T]) error {
	heights := make(map[*AVLNode[T]]int)
	height := func(n *AVLNode[T]) int {
		if n == nil {
			return -1
		}
		return heights[n]
	}

	var err error
	postOrderWalk(root, func(n *AVLNode[T]) {
		if err != nil {
			return
		}

		left, right := height(n.left), height(n.right)
		actual := max(left, right) + 1
		heights[n] = actual

		switch {
		case n.height != actual:
			err = ErrHeightMismatch{Value: n.label(), Cached: n.height, Actual: actual}
		case left-right > 1 || right-left > 1:
			err = ErrImbalance{Value: n.label(), BalanceFactor: left - right}
		}
	})

	return err
}
