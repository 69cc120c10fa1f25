package digraph

import (
	"container/heap"
	"fmt"
	"math"
)

// StronglyConnected reports whether every vertex is reachable from every
// other vertex. The empty graph is vacuously strongly connected.
func (g *Graph[V, E]) StronglyConnected() bool {
	for start := range g.vertices {
		if g.reachableFrom(start) != len(g.vertices) {
			return false
		}
	}
	return true
}

func (g *Graph[V, E]) reachableFrom(start int) int {
	visited := map[int]bool{start: true}
	stack := []int{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range g.vertices[v].edges {
			if !visited[e.To] {
				visited[e.To] = true
				stack = append(stack, e.To)
			}
		}
	}
	return len(visited)
}

// ShortestPaths runs Dijkstra's algorithm from the start vertex, deriving
// each edge's weight through the given function. It returns a map from every
// vertex number to its predecessor on a shortest path from start; the start
// vertex and any unreachable vertex map to themselves. Weights must be
// non-negative.
func (g *Graph[V, E]) ShortestPaths(start int, weight func(E) float64) (map[int]int, error) {
	if _, ok := g.vertices[start]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, start)
	}

	dist := make(map[int]float64, len(g.vertices))
	prev := make(map[int]int, len(g.vertices))
	done := make(map[int]bool, len(g.vertices))
	for n := range g.vertices {
		dist[n] = math.Inf(1)
		prev[n] = n
	}
	dist[start] = 0

	q := &pathQueue{{vertex: start, dist: 0}}
	for q.Len() > 0 {
		item := heap.Pop(q).(pathItem)
		if done[item.vertex] {
			continue
		}
		done[item.vertex] = true

		for _, e := range g.vertices[item.vertex].edges {
			d := dist[item.vertex] + weight(e.Info)
			if d < dist[e.To] {
				dist[e.To] = d
				prev[e.To] = item.vertex
				heap.Push(q, pathItem{vertex: e.To, dist: d})
			}
		}
	}

	return prev, nil
}

type pathItem struct {
	vertex int
	dist   float64
}

// pathQueue is a min-heap of tentative distances for Dijkstra.
type pathQueue []pathItem

func (q pathQueue) Len() int           { return len(q) }
func (q pathQueue) Less(i, j int) bool { return q[i].dist < q[j].dist }
func (q pathQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *pathQueue) Push(x any) {
	*q = append(*q, x.(pathItem))
}

func (q *pathQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
