package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func prePopulatedList() *List[int] {
	l := New[int]()
	for i := 1; i <= 4; i++ {
		l.AppendValue(i)
	}
	return l
}

func TestListEmpty(t *testing.T) {
	l := New[int]()

	assert.True(t, l.Empty())
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Head())
	assert.Nil(t, l.Tail())
	assert.Nil(t, l.RemoveFirst())
	assert.Equal(t, "Empty", l.String())
}

func TestListAppend(t *testing.T) {
	l := prePopulatedList()

	assert.Equal(t, []int{1, 2, 3, 4}, l.Values())
	assert.Equal(t, 1, l.Head().Value)
	assert.Equal(t, 4, l.Tail().Value)
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, "List => 1 2 3 4 ", l.String())
}

func TestListPrepend(t *testing.T) {
	l := New[int]()
	l.PrependValue(2)
	l.PrependValue(1)

	assert.Equal(t, []int{1, 2}, l.Values())
	assert.Equal(t, 2, l.Tail().Value)
}

func TestListNodeAt(t *testing.T) {
	l := prePopulatedList()

	assert.Equal(t, 1, l.NodeAt(0).Value)
	assert.Equal(t, 3, l.NodeAt(2).Value)
	assert.Nil(t, l.NodeAt(4))
	assert.Nil(t, l.NodeAt(-1))
}

func TestListInsertAfter(t *testing.T) {
	l := prePopulatedList()

	l.InsertAfter(NewNode(10), l.NodeAt(1))
	l.InsertAfter(NewNode(20), l.Tail())

	assert.Equal(t, []int{1, 2, 10, 3, 4, 20}, l.Values())
	assert.Equal(t, 20, l.Tail().Value)
	assert.Equal(t, 6, l.Len())
}

func TestListInsertAfterEmpty(t *testing.T) {
	l := New[int]()
	n := NewNode(1)
	l.InsertAfter(NewNode(2), n)

	assert.True(t, l.Empty())
}

func TestListMoveFirstToLast(t *testing.T) {
	l := prePopulatedList()

	l.Move(First, Last)

	assert.Equal(t, []int{2, 3, 4, 1}, l.Values())
	assert.Equal(t, 4, l.Len())
}

func TestListMoveLastToFirst(t *testing.T) {
	l := prePopulatedList()

	l.Move(Last, First)

	assert.Equal(t, []int{4, 1, 2, 3}, l.Values())
	assert.Equal(t, 3, l.Tail().Value)
}

func TestListMoveSingleNode(t *testing.T) {
	l := New[int]()
	l.AppendValue(1)

	l.Move(First, Last)

	assert.Equal(t, []int{1}, l.Values())
}

func TestListRemoveFirst(t *testing.T) {
	l := prePopulatedList()

	n := l.RemoveFirst()

	assert.Equal(t, 1, n.Value)
	assert.Nil(t, n.Next())
	assert.Equal(t, []int{2, 3, 4}, l.Values())
}

func TestListRemoveLast(t *testing.T) {
	l := prePopulatedList()

	l.RemoveLast()

	assert.Equal(t, []int{1, 2, 3}, l.Values())
	assert.Equal(t, 3, l.Tail().Value)
	assert.Nil(t, l.Tail().Next())
}

func TestListRemoveUntilEmpty(t *testing.T) {
	l := prePopulatedList()

	for !l.Empty() {
		l.RemoveLast()
	}

	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Head())
	assert.Nil(t, l.Tail())
}

func TestListRemove(t *testing.T) {
	l := prePopulatedList()

	l.Remove(l.NodeAt(2))
	assert.Equal(t, []int{1, 2, 4}, l.Values())

	l.Remove(l.Head())
	assert.Equal(t, []int{2, 4}, l.Values())

	l.Remove(l.Tail())
	assert.Equal(t, []int{2}, l.Values())

	l.Remove(NewNode(7))
	assert.Equal(t, []int{2}, l.Values())
}

func TestListRemoveAfter(t *testing.T) {
	l := prePopulatedList()

	l.RemoveAfter(l.NodeAt(2))
	assert.Equal(t, []int{1, 2, 3}, l.Values())
	assert.Equal(t, 3, l.Tail().Value)

	l.RemoveAfter(l.Tail())
	assert.Equal(t, []int{1, 2, 3}, l.Values())

	l.RemoveAfter(l.Head())
	assert.Equal(t, []int{1, 3}, l.Values())
}

func TestListPeekAndIs(t *testing.T) {
	l := prePopulatedList()

	assert.Equal(t, 1, l.Peek(First).Value)
	assert.Equal(t, 4, l.Peek(Last).Value)
	assert.True(t, l.Is(l.Head(), First))
	assert.False(t, l.Is(l.Head(), Last))
	assert.False(t, l.Is(nil, First))
}
