package tree

import (
	"github.com/eaugeas/arbor/container/queue"
	"github.com/eaugeas/arbor/container/stack"
)

// WalkMethod selects the order in which a walk visits nodes
type WalkMethod int

const (
	// InOrder visits the left subtree, the node and then the right subtree
	InOrder WalkMethod = iota

	// PreOrder visits the node before its subtrees
	PreOrder

	// PostOrder visits the node after its subtrees
	PostOrder

	// LevelOrder visits the nodes breadth first, from left to right
	LevelOrder
)

func (m WalkMethod) String() string {
	switch m {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	case LevelOrder:
		return "level-order"
	default:
		return "unknown"
	}
}

// linkedNode is implemented by the binary node types of the package
// so that walks, rendering and comparisons are written once
type linkedNode[N any] interface {
	comparable
	leftChild() N
	rightChild() N
	setLeftChild(N)
	setRightChild(N)
	label() string
}

// orderedNode is a linkedNode that carries a value and the
// Lesser used to order it
type orderedNode[T any, N any] interface {
	linkedNode[N]
	value() T
	lesser() Lesser[T]
}

func walk[N linkedNode[N]](root N, method WalkMethod, fn func(N)) {
	switch method {
	case InOrder:
		inOrderWalk(root, fn)
	case PreOrder:
		preOrderWalk(root, fn)
	case PostOrder:
		postOrderWalk(root, fn)
	case LevelOrder:
		levelOrderWalk(root, fn)
	}
}

// inOrderWalk keeps the path to the current node on a stack. The
// tree is not modified, so fn can read the tree while the walk runs
func inOrderWalk[N linkedNode[N]](root N, fn func(N)) {
	var null N
	pending := stack.New[N]()

	for curr := root; curr != null || !pending.Empty(); {
		if curr != null {
			pending.Push(curr)
			curr = curr.leftChild()
			continue
		}

		top, _ := pending.Pop()
		fn(top)
		curr = top.rightChild()
	}
}

func preOrderWalk[N linkedNode[N]](root N, fn func(N)) {
	var null N
	if root == null {
		return
	}

	pending := stack.New(root)
	for !pending.Empty() {
		n, _ := pending.Pop()
		fn(n)

		if right := n.rightChild(); right != null {
			pending.Push(right)
		}
		if left := n.leftChild(); left != null {
			pending.Push(left)
		}
	}
}

// morrisInOrderWalk is an in order walk that uses no extra space.
// Right links of some nodes are threaded back to their successors
// while the walk runs, so it is only used where fn reads values
func morrisInOrderWalk[N linkedNode[N]](root N, fn func(N)) {
	var null N

	for curr := root; curr != null; {
		left := curr.leftChild()
		if left == null {
			fn(curr)
			curr = curr.rightChild()
			continue
		}

		prev := left
		for prev.rightChild() != null && prev.rightChild() != curr {
			prev = prev.rightChild()
		}

		if prev.rightChild() == null {
			// thread prev back to curr so that once the left subtree
			// is visited the walk can come back to curr
			prev.setRightChild(curr)
			curr = left
		} else {
			// restore the value of prev.right
			prev.setRightChild(null)
			fn(curr)
			curr = curr.rightChild()
		}
	}
}

// postOrderWalk keeps the path to the current node on a stack, along
// with the last node visited to know when a right subtree is done
func postOrderWalk[N linkedNode[N]](root N, fn func(N)) {
	var null, last N
	pending := stack.New[N]()

	for curr := root; curr != null || !pending.Empty(); {
		if curr != null {
			pending.Push(curr)
			curr = curr.leftChild()
			continue
		}

		top, _ := pending.Peek()
		if right := top.rightChild(); right != null && right != last {
			curr = right
			continue
		}

		fn(top)
		last = top
		pending.Pop()
	}
}

func levelOrderWalk[N linkedNode[N]](root N, fn func(N)) {
	var null N
	if root == null {
		return
	}

	pending := queue.New[N]()
	pending.Enqueue(root)

	for !pending.Empty() {
		n, _ := pending.Dequeue()
		fn(n)

		if left := n.leftChild(); left != null {
			pending.Enqueue(left)
		}
		if right := n.rightChild(); right != null {
			pending.Enqueue(right)
		}
	}
}

func minNode[N linkedNode[N]](n N) N {
	var null N
	if n == null {
		return null
	}

	for n.leftChild() != null {
		n = n.leftChild()
	}

	return n
}

func maxNode[N linkedNode[N]](n N) N {
	var null N
	if n == null {
		return null
	}

	for n.rightChild() != null {
		n = n.rightChild()
	}

	return n
}

// findNode returns the first node found descending from n whose
// value is equal to v. Equal values are stored to the right
func findNode[T any, N orderedNode[T, N]](n N, v T) N {
	var null N

	for curr := n; curr != null; {
		switch c := curr.lesser().Less(v, curr.value()); {
		case c == 0:
			return curr
		case c < 0:
			curr = curr.leftChild()
		default:
			curr = curr.rightChild()
		}
	}

	return null
}

// higherNode returns the node with the lowest value that is
// greater or equal than v
func higherNode[T any, N orderedNode[T, N]](n N, v T) N {
	var higher, null N

	for curr := n; curr != null; {
		if curr.lesser().Less(v, curr.value()) <= 0 {
			higher = curr
			curr = curr.leftChild()
		} else {
			curr = curr.rightChild()
		}
	}

	return higher
}

// lowerNode returns the node with the highest value that is
// lower or equal than v
func lowerNode[T any, N orderedNode[T, N]](n N, v T) N {
	var lower, null N

	for curr := n; curr != null; {
		if curr.lesser().Less(v, curr.value()) < 0 {
			curr = curr.leftChild()
		} else {
			lower = curr
			curr = curr.rightChild()
		}
	}

	return lower
}

type nodePair[N any] struct {
	a, b N
}

// equalNodes compares two subtrees node by node. It uses an explicit
// stack so that degenerate trees do not grow the goroutine stack
func equalNodes[T any, N orderedNode[T, N]](a, b N) bool {
	var null N

	pending := stack.New(nodePair[N]{a, b})
	for !pending.Empty() {
		p, _ := pending.Pop()

		switch {
		case p.a == null && p.b == null:
			continue
		case p.a == null || p.b == null:
			return false
		case p.a.lesser().Less(p.a.value(), p.b.value()) != 0:
			return false
		}

		pending.Push(nodePair[N]{p.a.leftChild(), p.b.leftChild()})
		pending.Push(nodePair[N]{p.a.rightChild(), p.b.rightChild()})
	}

	return true
}

func countNodes[N linkedNode[N]](root N) int {
	count := 0
	postOrderWalk(root, func(N) { count++ })
	return count
}
