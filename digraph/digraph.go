// Package digraph implements a directed graph over adjacency lists, with
// Dijkstra shortest paths and a strong-connectivity check.
package digraph

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrVertexNotFound is returned when an operation names a vertex that
	// is not in the graph.
	ErrVertexNotFound = errors.New("digraph: vertex not found")
	// ErrVertexExists is returned when adding a vertex number already in use.
	ErrVertexExists = errors.New("digraph: vertex already exists")
	// ErrEdgeNotFound is returned when an operation names an absent edge.
	ErrEdgeNotFound = errors.New("digraph: edge not found")
	// ErrEdgeExists is returned when adding an edge that is already present.
	ErrEdgeExists = errors.New("digraph: edge already exists")
)

// Edge records a connection between two vertex numbers and its payload.
type Edge[E any] struct {
	From int
	To   int
	Info E
}

type vertex[V, E any] struct {
	info  V
	edges []Edge[E]
}

// Graph is a directed graph keyed by integer vertex numbers, carrying a
// payload per vertex and per edge. Not safe for concurrent use.
type Graph[V, E any] struct {
	vertices map[int]*vertex[V, E]
}

// New returns an empty graph.
func New[V, E any]() *Graph[V, E] {
	return &Graph[V, E]{vertices: make(map[int]*vertex[V, E])}
}

// AddVertex adds a vertex with the given number and payload.
func (g *Graph[V, E]) AddVertex(number int, info V) error {
	if _, ok := g.vertices[number]; ok {
		return fmt.Errorf("%w: %d", ErrVertexExists, number)
	}
	g.vertices[number] = &vertex[V, E]{info: info}
	return nil
}

// AddEdge adds an edge from one vertex number to another with the given
// payload. Both vertices must exist and the edge must not.
func (g *Graph[V, E]) AddEdge(from, to int, info E) error {
	if err := g.checkVertices(from, to); err != nil {
		return err
	}
	if g.hasEdge(from, to) {
		return fmt.Errorf("%w: %d -> %d", ErrEdgeExists, from, to)
	}
	v := g.vertices[from]
	v.edges = append(v.edges, Edge[E]{From: from, To: to, Info: info})
	return nil
}

// RemoveVertex removes a vertex along with all of its incoming and outgoing
// edges.
func (g *Graph[V, E]) RemoveVertex(number int) error {
	if _, ok := g.vertices[number]; !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, number)
	}
	delete(g.vertices, number)
	for _, v := range g.vertices {
		v.edges = slices.DeleteFunc(v.edges, func(e Edge[E]) bool {
			return e.To == number
		})
	}
	return nil
}

// RemoveEdge removes the edge between the two vertex numbers.
func (g *Graph[V, E]) RemoveEdge(from, to int) error {
	if err := g.checkVertices(from, to); err != nil {
		return err
	}
	v := g.vertices[from]
	before := len(v.edges)
	v.edges = slices.DeleteFunc(v.edges, func(e Edge[E]) bool {
		return e.To == to
	})
	if len(v.edges) == before {
		return fmt.Errorf("%w: %d -> %d", ErrEdgeNotFound, from, to)
	}
	return nil
}

// Vertices returns every vertex number in ascending order.
func (g *Graph[V, E]) Vertices() []int {
	out := make([]int, 0, len(g.vertices))
	for n := range g.vertices {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Edges returns every edge in the graph, grouped by origin vertex in
// ascending order.
func (g *Graph[V, E]) Edges() []Edge[E] {
	var out []Edge[E]
	for _, n := range g.Vertices() {
		out = append(out, g.vertices[n].edges...)
	}
	return out
}

// EdgesFrom returns the edges outgoing from the given vertex number.
func (g *Graph[V, E]) EdgesFrom(number int) ([]Edge[E], error) {
	v, ok := g.vertices[number]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, number)
	}
	return slices.Clone(v.edges), nil
}

// VertexInfo returns the payload of the given vertex number.
func (g *Graph[V, E]) VertexInfo(number int) (V, error) {
	v, ok := g.vertices[number]
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %d", ErrVertexNotFound, number)
	}
	return v.info, nil
}

// EdgeInfo returns the payload of the edge between the two vertex numbers.
func (g *Graph[V, E]) EdgeInfo(from, to int) (E, error) {
	var zero E
	if err := g.checkVertices(from, to); err != nil {
		return zero, err
	}
	for _, e := range g.vertices[from].edges {
		if e.To == to {
			return e.Info, nil
		}
	}
	return zero, fmt.Errorf("%w: %d -> %d", ErrEdgeNotFound, from, to)
}

// VertexCount returns the number of vertices.
func (g *Graph[V, E]) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the total number of edges, counting edges outgoing from
// every vertex.
func (g *Graph[V, E]) EdgeCount() int {
	count := 0
	for _, v := range g.vertices {
		count += len(v.edges)
	}
	return count
}

// EdgeCountFrom returns the number of edges outgoing from the given vertex.
func (g *Graph[V, E]) EdgeCountFrom(number int) (int, error) {
	v, ok := g.vertices[number]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, number)
	}
	return len(v.edges), nil
}

// Clone returns an independent deep copy of the graph structure. Payloads
// are copied by value.
func (g *Graph[V, E]) Clone() *Graph[V, E] {
	c := New[V, E]()
	for n, v := range g.vertices {
		c.vertices[n] = &vertex[V, E]{info: v.info, edges: slices.Clone(v.edges)}
	}
	return c
}

func (g *Graph[V, E]) checkVertices(from, to int) error {
	if _, ok := g.vertices[from]; !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, from)
	}
	if _, ok := g.vertices[to]; !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, to)
	}
	return nil
}

func (g *Graph[V, E]) hasEdge(from, to int) bool {
	for _, e := range g.vertices[from].edges {
		if e.To == to {
			return true
		}
	}
	return false
}
