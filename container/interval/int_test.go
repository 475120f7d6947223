package interval

import (
	"container/heap"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// An IntHeap is a min-heap of ints. A heap is a useful
// data structure to compare benchmarks against
type IntHeap []Int

func (h IntHeap) Len() int           { return len(h) }
func (h IntHeap) Less(i, j int) bool { return h[i].min < h[j].min }
func (h IntHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *IntHeap) Push(x interface{}) {
	// Push and Pop use pointer receivers because they modify the slice's length,
	// not just its contents.
	*h = append(*h, x.(Int))
}

func (h *IntHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

func TestIntNewOK(t *testing.T) {
	i := NewInt(1, 5)

	assert.Equal(t, 5, i.Len())
	assert.Equal(t, 1, i.Min())
	assert.Equal(t, 5, i.Max())
}

func TestIntNewErrPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewInt(0, -1)
	})
}

func TestIntRelations(t *testing.T) {
	base := NewInt(1, 5)

	tests := []struct {
		name      string
		other     Int
		contains  bool
		disjoints bool
		canMerge  bool
	}{
		{"left bound", NewInt(1, 1), true, false, true},
		{"same", NewInt(1, 5), true, false, true},
		{"inner suffix", NewInt(3, 5), true, false, true},
		{"superset", NewInt(0, 6), false, false, true},
		{"overlaps right", NewInt(3, 6), false, false, true},
		{"adjacent left", NewInt(0, 0), false, true, true},
		{"adjacent right", NewInt(6, 10), false, true, true},
		{"far left", NewInt(-3, -1), false, true, false},
		{"far right", NewInt(7, 9), false, true, false},
	}

	for _, test := range tests {
		assert.Equal(t, test.contains, base.Contains(test.other), test.name)
		assert.Equal(t, test.disjoints, base.Disjoints(test.other), test.name)
		assert.Equal(t, test.disjoints, test.other.Disjoints(base), test.name)
		assert.Equal(t, test.canMerge, base.CanMerge(test.other), test.name)
	}
}

func TestIntIntersectionErrPanics(t *testing.T) {
	i := NewInt(1, 5)

	assert.Panics(t, func() {
		i.Intersection(NewInt(0, 0))
	})
}

func TestIntIntersectionAndMerge(t *testing.T) {
	base := NewInt(1, 5)

	tests := []struct {
		other        Int
		intersection Int
		merge        Int
	}{
		{NewInt(2, 4), NewInt(2, 4), NewInt(1, 5)},
		{NewInt(3, 10), NewInt(3, 5), NewInt(1, 10)},
		{NewInt(5, 8), NewInt(5, 5), NewInt(1, 8)},
		{NewInt(-1, 1), NewInt(1, 1), NewInt(-1, 5)},
	}

	for _, test := range tests {
		assert.Equal(t, test.intersection, base.Intersection(test.other), test.other.String())
		assert.Equal(t, test.merge, base.Merge(test.other), test.other.String())
		assert.Equal(t, test.merge, test.other.Merge(base), test.other.String())
	}

	assert.Equal(t, NewInt(1, 8), base.Merge(NewInt(6, 8)))
	assert.Equal(t, NewInt(-1, 5), base.Merge(NewInt(-1, 0)))
}

func TestIntMergeErrPanics(t *testing.T) {
	i := NewInt(1, 5)

	assert.Panics(t, func() {
		i.Merge(NewInt(-1, -1))
	})
}

func TestIntSetContains(t *testing.T) {
	s := NewIntSet()
	s.Insert(NewInt(1, 3))
	s.Insert(NewInt(7, 10))
	s.Insert(NewInt(13, 20))

	tests := []struct {
		i        Int
		contains bool
	}{
		{NewInt(1, 1), true},
		{NewInt(1, 3), true},
		{NewInt(1, 2), true},
		{NewInt(8, 10), true},
		{NewInt(14, 19), true},
		{NewInt(0, 0), false},
		{NewInt(3, 5), false},
		{NewInt(4, 6), false},
		{NewInt(5, 7), false},
		{NewInt(7, 11), false},
		{NewInt(12, 21), false},
		{NewInt(100, 200), false},
	}

	for _, test := range tests {
		assert.Equal(t, test.contains, s.Contains(test.i), test.i.String())
	}
}

func TestIntSetContainsEmpty(t *testing.T) {
	assert.False(t, NewIntSet().Contains(NewInt(0, 0)))
}

func TestIntSetInsertOKDisjoints(t *testing.T) {
	s := NewIntSet()
	assert.Equal(t, 0, s.Len())

	s.Insert(NewInt(1, 3))
	assert.Equal(t, 1, s.Len())

	s.Insert(NewInt(5, 7))
	assert.Equal(t, 2, s.Len())

	assert.True(t, s.Contains(NewInt(1, 3)))
	assert.True(t, s.Contains(NewInt(5, 7)))
}

func TestIntSetInsertOKMergeOne(t *testing.T) {
	s := NewIntSet()
	assert.Equal(t, 0, s.Len())

	s.Insert(NewInt(1, 3))
	assert.Equal(t, 1, s.Len())

	s.Insert(NewInt(2, 5))
	assert.Equal(t, 1, s.Len())

	s.Insert(NewInt(5, 7))
	assert.Equal(t, 1, s.Len())

	s.Insert(NewInt(8, 10))
	assert.Equal(t, 1, s.Len())

	assert.True(t, s.Contains(NewInt(1, 10)))
	assert.False(t, s.Contains(NewInt(1, 11)))
	assert.False(t, s.Contains(NewInt(0, 10)))
}

func TestIntSetInsertOKMergeAll(t *testing.T) {
	s := NewIntSet()
	assert.Equal(t, 0, s.Len())

	s.Insert(NewInt(1, 3))
	s.Insert(NewInt(5, 7))
	s.Insert(NewInt(9, 12))
	s.Insert(NewInt(15, 20))
	s.Insert(NewInt(25, 30))
	s.Insert(NewInt(35, 40))
	assert.Equal(t, 6, s.Len())

	s.Insert(NewInt(2, 38))
	assert.Equal(t, 1, s.Len())

	assert.True(t, s.Contains(NewInt(1, 40)))
	assert.False(t, s.Contains(NewInt(1, 41)))
	assert.False(t, s.Contains(NewInt(0, 40)))
}

func TestIntSetIntervals(t *testing.T) {
	s := NewIntSet()
	assert.Equal(t, "{}", s.String())

	s.Insert(NewInt(9, 12))
	s.Insert(NewInt(1, 3))
	s.Insert(NewInt(5, 5))
	s.Insert(NewInt(4, 4))

	assert.Equal(t, []Int{NewInt(1, 5), NewInt(9, 12)}, s.Intervals())
	assert.Equal(t, "{[1, 5] [9, 12]}", s.String())
	assert.Equal(t, "[7]", NewInt(7, 7).String())
}

func TestIntSetRandomInsertStaysBalanced(t *testing.T) {
	s := NewIntSet()
	r := rand.New(rand.NewSource(3))
	present := make(map[int]bool)

	for n := 0; n < 2000; n++ {
		v := r.Intn(1000)
		present[v] = true
		s.Insert(NewInt(v, v))
		require.NoError(t, s.Validate())
	}

	prev := -2
	for _, i := range s.Intervals() {
		assert.Greater(t, i.Min(), prev+1, "intervals %d and %v should have been merged", prev, i)
		for v := i.Min(); v <= i.Max(); v++ {
			assert.True(t, present[v], "%d is not in the set", v)
		}
		prev = i.Max()
	}

	for v := range present {
		assert.True(t, s.Contains(NewInt(v, v)))
	}
}

func BenchmarkIntSetAddSeq(b *testing.B) {
	s := NewIntSet()
	for i := 0; i < b.N; i++ {
		s.Insert(NewInt(i, i))
	}

	assert.Equal(b, 1, s.Len())
	assert.True(b, s.Contains(NewInt(0, b.N-1)))
}

func BenchmarkHeapAddSeq(b *testing.B) {
	h := &IntHeap{}
	heap.Init(h)

	for i := 0; i < b.N; i++ {
		heap.Push(h, NewInt(i, i))
	}
}
