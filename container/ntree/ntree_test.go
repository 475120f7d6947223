package ntree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTree builds
//
//	beverages
//	├── hot: tea, coffee
//	└── cold: soda, milk
func sampleTree() *Tree[string] {
	hot := NewNode("hot", NewNode("tea"), NewNode("coffee"))
	cold := NewNode("cold")
	cold.Add(NewNode("soda"))
	cold.Add(NewNode("milk"))

	return New(NewNode("beverages", hot, cold))
}

func values(tree *Tree[string], start *Node[string], method WalkMethod) []string {
	var res []string
	tree.WalkFrom(start, method, func(n *Node[string]) {
		res = append(res, n.Value)
	})
	return res
}

func TestTreeEmpty(t *testing.T) {
	tree := New[int](nil)

	assert.True(t, tree.Empty())
	assert.Nil(t, tree.Search(1))
	assert.Equal(t, "Tree = Empty", tree.String())

	called := false
	tree.Walk(DepthFirst, func(*Node[int]) { called = true })
	assert.False(t, called)
}

func TestTreeWalkDepthFirst(t *testing.T) {
	tree := sampleTree()

	assert.Equal(t,
		[]string{"beverages", "hot", "tea", "coffee", "cold", "soda", "milk"},
		values(tree, nil, DepthFirst))
}

func TestTreeWalkLevelOrder(t *testing.T) {
	tree := sampleTree()

	assert.Equal(t,
		[]string{"beverages", "hot", "cold", "tea", "coffee", "soda", "milk"},
		values(tree, nil, LevelOrder))
}

func TestTreeWalkFrom(t *testing.T) {
	tree := sampleTree()
	cold := tree.Root().Children()[1]

	assert.Equal(t, []string{"cold", "soda", "milk"}, values(tree, cold, LevelOrder))
}

func TestTreeSearch(t *testing.T) {
	tree := sampleTree()

	n := tree.Search("soda")
	require.NotNil(t, n)
	assert.Equal(t, "soda", n.Value)
	assert.Empty(t, n.Children())

	assert.Equal(t, tree.Root(), tree.Search("beverages"))
	assert.Nil(t, tree.Search("juice"))
}

func TestTreeSearchReturnsShallowestMatch(t *testing.T) {
	deep := NewNode(1)
	shallow := NewNode(1)
	tree := New(NewNode(0, NewNode(2, deep), shallow))

	assert.Same(t, shallow, tree.Search(1))
}

func TestTreeEqual(t *testing.T) {
	assert.True(t, sampleTree().Equal(sampleTree()))
	assert.True(t, New[string](nil).Equal(New[string](nil)))
	assert.False(t, sampleTree().Equal(New[string](nil)))

	other := sampleTree()
	other.Root().Children()[0].Add(NewNode("cocoa"))
	assert.False(t, sampleTree().Equal(other))

	other = sampleTree()
	other.Root().Children()[1].Children()[0].Value = "juice"
	assert.False(t, sampleTree().Equal(other))
}

func TestTreeRemoveAll(t *testing.T) {
	tree := sampleTree()

	tree.RemoveAll()
	assert.True(t, tree.Empty())
	assert.Nil(t, tree.Root())
}

func TestTreeString(t *testing.T) {
	assert.Equal(t, "Tree:\nbeverages\nhot\ncold\ntea\ncoffee\nsoda\nmilk", sampleTree().String())
}
