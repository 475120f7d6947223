package tree

import "fmt"

// ErrOrderViolation is returned when an in order walk of a
// search tree finds a value lower than the one visited before it
type ErrOrderViolation struct {
	Prev  string
	Value string
}

func (e ErrOrderViolation) Error() string {
	return fmt.Sprintf("value %s found after %s in an in order walk", e.Value, e.Prev)
}

// ErrImbalance is returned when the heights of the subtrees of
// a node in an AVL tree differ by more than one
type ErrImbalance struct {
	Value         string
	BalanceFactor int
}

func (e ErrImbalance) Error() string {
	return fmt.Sprintf("node %s has balance factor %d", e.Value, e.BalanceFactor)
}

// ErrHeightMismatch is returned when the cached height of a node
// in an AVL tree is not the height of its subtree
type ErrHeightMismatch struct {
	Value  string
	Cached int
	Actual int
}

func (e ErrHeightMismatch) Error() string {
	return fmt.Sprintf("node %s caches height %d but its subtree has height %d",
		e.Value, e.Cached, e.Actual)
}
