package interval

import (
	"fmt"
	"strings"

	"github.com/eaugeas/arbor/container/tree"
)

// IntLesser orders intervals within a tree by their
// minimum only
type IntLesser struct{}

func (IntLesser) Less(a, b Int) int {
	return tree.OrderedLesser[int]{}.Less(a.Min(), b.Min())
}

// Int represents an interval with integers. An interval
// is represented by two integers a, b such that
// [a, b]. An interval is immutable.
type Int struct {
	min int
	max int
}

// NewInt returns a new interval
func NewInt(min, max int) Int {
	if min > max {
		panic("min cannot be greater than max")
	}

	return Int{min: min, max: max}
}

// Min returns the a of the interval [a, b]
func (i Int) Min() int {
	return i.min
}

// Max returns the b of the interval [a, b]
func (i Int) Max() int {
	return i.max
}

// Len returns the length of the interval
func (i Int) Len() int {
	return i.max - i.min + 1
}

// Contains returns true if the interval represented
// by j is contained by i
func (i Int) Contains(j Int) bool {
	return i.min <= j.min && j.max <= i.max
}

// Disjoints returns true if the intersection between
// i and j is empty
func (i Int) Disjoints(j Int) bool {
	return i.max < j.min || j.max < i.min
}

// Intersection returns the interval of intersection
// between i and j
func (i Int) Intersection(j Int) Int {
	if i.Disjoints(j) {
		panic("intersection between two disjoint intervals")
	}

	return Int{min: max(i.min, j.min), max: min(i.max, j.max)}
}

// CanMerge returns true if the both intervals can be
// merged into one. That is, if i and j are not disjoints
// or they share a boundary. For example, i = [a, b] and
// j = [b + 1, c], in which case the resulting merged
// interval would be k = [a, c]
func (i Int) CanMerge(j Int) bool {
	return !i.Disjoints(j) || i.min == j.max+1 || i.max+1 == j.min
}

// Merge merges two intervals and returns the result
// in a new interval. Only a pair of non disjoints
// intervals can be merged. If j is disjoint with i
// Merge will panic
func (i Int) Merge(j Int) Int {
	if !i.CanMerge(j) {
		panic("cannot merge intervals")
	}

	return Int{min: min(i.min, j.min), max: max(i.max, j.max)}
}

func (i Int) String() string {
	if i.min == i.max {
		return fmt.Sprintf("[%d]", i.min)
	}
	return fmt.Sprintf("[%d, %d]", i.min, i.max)
}

// IntSet represents a set of intervals
// of the type {[Ii.Min(), Ii.Max()], i = 0 .. Len()}, where
// the intervals are disjoints.
//
// A use case for this is to keep track of message offsets
// that are continous. Instead of keeping [1, 2, 3, 5],
// for example, a set can keep [1, 3], [5] and when 4
// is added to the set, the result will be [1, 5],
// instead of [1, 2, 3, 4, 5].
type IntSet struct {
	intervals *tree.AVLTree[Int]
}

// NewIntSet creates a new instance of a interval set
func NewIntSet() *IntSet {
	return &IntSet{intervals: tree.NewAVLTreeWithLesser[Int](IntLesser{})}
}

// Len returns the number of disjoint intervals
func (s *IntSet) Len() int {
	return s.intervals.Len()
}

// Contains returns true if the set contains
// any interval which contains the interval
func (s *IntSet) Contains(i Int) bool {
	lower, ok := s.lower(i)
	return ok && lower.Contains(i)
}

// Insert inserts an interval to the set. If there already
// is an interval in the tree which is not disjoint with i
// the two will be merged
func (s *IntSet) Insert(i Int) {
	if lower, ok := s.lower(i); ok && i.CanMerge(lower) {
		if !s.intervals.Remove(lower) {
			panic("failed to remove lower interval")
		}

		i = i.Merge(lower)
	}

	for {
		higher, ok := s.higher(i)
		if !ok || !i.CanMerge(higher) {
			break
		}

		if !s.intervals.Remove(higher) {
			panic("failed to remove higher interval")
		}

		i = i.Merge(higher)
	}

	s.intervals.Insert(i)
}

// Intervals returns the disjoint intervals of the set
// sorted by their minimum
func (s *IntSet) Intervals() []Int {
	return s.intervals.Values()
}

// Validate checks the tree that holds the intervals
func (s *IntSet) Validate() error {
	return s.intervals.Validate()
}

func (s *IntSet) String() string {
	intervals := s.Intervals()
	labels := make([]string, 0, len(intervals))
	for _, i := range intervals {
		labels = append(labels, i.String())
	}

	return "{" + strings.Join(labels, " ") + "}"
}

func (s *IntSet) higher(i Int) (Int, bool) {
	node := s.intervals.Higher(i)
	if node == nil {
		return Int{}, false
	}

	return node.Value, true
}

func (s *IntSet) lower(i Int) (Int, bool) {
	node := s.intervals.Lower(i)
	if node == nil {
		return Int{}, false
	}

	return node.Value, true
}
