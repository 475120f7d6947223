package graph

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/eaugeas/arbor/container/hashmap"
	"github.com/eaugeas/arbor/container/queue"
)

// EdgeKind tells whether an edge can be followed in one
// direction or in both
type EdgeKind int

const (
	// Directed edges go from one vertex to another
	Directed EdgeKind = iota

	// Undirected edges are stored as a pair of directed edges
	Undirected
)

// Vertex of a graph. The index is assigned by the graph
// in creation order, starting at 0
type Vertex[T comparable] struct {
	Index int
	Value T
}

func (v Vertex[T]) String() string {
	return fmt.Sprintf("%d: %v", v.Index, v.Value)
}

// Edge from a vertex to another. Weighted is false for edges
// created without a weight
type Edge[T comparable] struct {
	From     Vertex[T]
	To       Vertex[T]
	Weight   float64
	Weighted bool
}

// Graph is a graph stored as adjacency lists, one list of
// outgoing edges per vertex
type Graph[T comparable] struct {
	adjacency *hashmap.Map[Vertex[T], []Edge[T]]
}

// New creates a graph without vertices
func New[T comparable]() *Graph[T] {
	return &Graph[T]{adjacency: hashmap.New[Vertex[T], []Edge[T]]()}
}

// Len returns the number of vertices
func (g *Graph[T]) Len() int {
	return g.adjacency.Len()
}

// Empty returns true if the graph has no vertices
func (g *Graph[T]) Empty() bool {
	return g.adjacency.Empty()
}

// CreateVertex adds a vertex holding v to the graph. O(1)
func (g *Graph[T]) CreateVertex(v T) Vertex[T] {
	vertex := Vertex[T]{Index: g.Len(), Value: v}
	g.adjacency.Add(vertex, nil)
	return vertex
}

// AddEdge adds an edge without weight between two vertices
// of the graph. O(1)
func (g *Graph[T]) AddEdge(kind EdgeKind, from, to Vertex[T]) {
	g.addEdge(kind, Edge[T]{From: from, To: to})
}

// AddWeightedEdge adds an edge with weight w between two
// vertices of the graph. O(1)
func (g *Graph[T]) AddWeightedEdge(kind EdgeKind, from, to Vertex[T], w float64) {
	g.addEdge(kind, Edge[T]{From: from, To: to, Weight: w, Weighted: true})
}

func (g *Graph[T]) addEdge(kind EdgeKind, edge Edge[T]) {
	g.appendEdge(edge)

	if kind == Undirected {
		edge.From, edge.To = edge.To, edge.From
		g.appendEdge(edge)
	}
}

// appendEdge is a no op when the origin of the edge is
// not a vertex of the graph
func (g *Graph[T]) appendEdge(edge Edge[T]) {
	edges, ok := g.adjacency.Value(edge.From)
	if !ok {
		return
	}

	g.adjacency.Update(edge.From, append(edges, edge))
}

// Edges returns a copy of the edges that go out of from, in
// the order in which they were added
func (g *Graph[T]) Edges(from Vertex[T]) []Edge[T] {
	edges, _ := g.adjacency.Value(from)
	return slices.Clone(edges)
}

// Weight returns the weight of the first edge from one vertex
// to the other. The boolean is false if there is no such edge
// or if it has no weight. O(e) on the edges of from
func (g *Graph[T]) Weight(from, to Vertex[T]) (float64, bool) {
	edges, _ := g.adjacency.Value(from)
	for _, edge := range edges {
		if edge.To == to {
			return edge.Weight, edge.Weighted
		}
	}

	return 0, false
}

// BreadthFirst visits every vertex reachable from start once,
// closest vertices first
func (g *Graph[T]) BreadthFirst(start Vertex[T], fn func(Vertex[T])) {
	if !g.adjacency.Contains(start) {
		return
	}

	visited := hashmap.New[Vertex[T], bool]()
	pending := queue.New[Vertex[T]]()

	visited.Add(start, true)
	pending.Enqueue(start)

	for !pending.Empty() {
		v, _ := pending.Dequeue()
		fn(v)

		edges, _ := g.adjacency.Value(v)
		for _, edge := range edges {
			if !visited.Contains(edge.To) {
				visited.Add(edge.To, true)
				pending.Enqueue(edge.To)
			}
		}
	}
}

// Vertices returns the vertices of the graph sorted by index
func (g *Graph[T]) Vertices() []Vertex[T] {
	vertices := g.adjacency.Keys()
	slices.SortFunc(vertices, func(a, b Vertex[T]) int {
		return a.Index - b.Index
	})
	return vertices
}

// String lists, for each vertex, the vertices its edges go to
func (g *Graph[T]) String() string {
	var b strings.Builder

	for _, v := range g.Vertices() {
		edges := g.Edges(v)
		targets := make([]string, 0, len(edges))
		for _, edge := range edges {
			targets = append(targets, edge.To.String())
		}

		fmt.Fprintf(&b, "%s ---> [ %s ]\n", v, strings.Join(targets, ", "))
	}

	return b.String()
}
