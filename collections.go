// Package collections provides generic in-memory containers: a probabilistic
// ordered set (skipset), a separate-chaining hash set (hashset), a doubly
// linked list with bidirectional iterators (dlist) and a directed graph
// (digraph).
//
// None of the containers are safe for concurrent use. Callers that share a
// container across goroutines must serialize every operation themselves.
package collections

// Set is the contract shared by the set implementations. Add is idempotent:
// inserting an element that is already present leaves the set unchanged.
// Contains and Len are pure queries; Len runs in constant time.
type Set[E any] interface {
	Add(element E)
	Contains(element E) bool
	Len() int
}
