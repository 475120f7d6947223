package script

import (
	"github.com/eaugeas/arbor/container/tree"
)

const (
	// KindBST selects an unbalanced binary search tree
	KindBST = "bst"

	// KindAVL selects an AVL tree
	KindAVL = "avl"
)

// Tree is the set of operations a script can apply
type Tree interface {
	Insert(v int)
	Remove(v int) bool
	RemoveAll()
	Len() int
	Validate() error
	String() string
}

// NewTree creates an empty tree of the given kind
func NewTree(kind string) (Tree, error) {
	switch kind {
	case KindBST:
		return tree.NewSearchTree[int](), nil
	case KindAVL:
		return tree.NewAVLTree[int](), nil
	default:
		return nil, ErrUnknownKind{Kind: kind}
	}
}
