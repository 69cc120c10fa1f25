// Package hashset implements an unordered set with separate chaining and
// dynamic resizing.
package hashset

import (
	"hash/fnv"

	"github.com/metailurini/collections"
)

// Hash maps an element to a bucket-selection value. A good hash spreads
// elements uniformly across buckets; with one, lookups run in expected
// constant time.
type Hash[E any] func(E) uint64

const (
	defaultCapacity = 10
	maxLoadFactor   = 0.8
)

// entry is one cell of a bucket chain.
type entry[E comparable] struct {
	element E
	next    *entry[E]
}

// Set is a hash set with one chain per bucket. Whenever the ratio of stored
// elements to buckets would reach 0.8 the bucket array doubles and every
// element is rehashed.
//
// A Set is not safe for concurrent use.
type Set[E comparable] struct {
	hash    Hash[E]
	buckets []*entry[E]
	size    int
}

var _ collections.Set[string] = (*Set[string])(nil)

// New returns an empty Set distributing elements with the given hash.
func New[E comparable](hash Hash[E]) *Set[E] {
	return &Set[E]{
		hash:    hash,
		buckets: make([]*entry[E], defaultCapacity),
	}
}

// NewString returns a Set of strings hashed with FNV-1a.
func NewString() *Set[string] {
	return New(func(s string) uint64 {
		h := fnv.New64a()
		h.Write([]byte(s))
		return h.Sum64()
	})
}

func (s *Set[E]) index(element E, capacity int) int {
	return int(s.hash(element) % uint64(capacity))
}

// Add inserts element; inserting a duplicate is a no-op.
func (s *Set[E]) Add(element E) {
	if s.Contains(element) {
		return
	}
	i := s.index(element, len(s.buckets))
	s.buckets[i] = &entry[E]{element: element, next: s.buckets[i]}
	s.size++

	if float64(s.size)/float64(len(s.buckets)) >= maxLoadFactor {
		s.grow()
	}
}

func (s *Set[E]) grow() {
	next := make([]*entry[E], len(s.buckets)*2)
	for _, chain := range s.buckets {
		for e := chain; e != nil; e = e.next {
			i := s.index(e.element, len(next))
			next[i] = &entry[E]{element: e.element, next: next[i]}
		}
	}
	s.buckets = next
}

// Contains reports whether element is in the set.
func (s *Set[E]) Contains(element E) bool {
	for e := s.buckets[s.index(element, len(s.buckets))]; e != nil; e = e.next {
		if e.element == element {
			return true
		}
	}
	return false
}

// Len returns the number of elements. It runs in constant time.
func (s *Set[E]) Len() int { return s.size }

// Capacity returns the current bucket count.
func (s *Set[E]) Capacity() int { return len(s.buckets) }

// ElementsAtIndex returns how many elements live in the given bucket, or 0
// when the index is out of range.
func (s *Set[E]) ElementsAtIndex(index int) int {
	if index < 0 || index >= len(s.buckets) {
		return 0
	}
	count := 0
	for e := s.buckets[index]; e != nil; e = e.next {
		count++
	}
	return count
}

// IsElementAtIndex reports whether element is stored in the given bucket. It
// returns false, not an error, when the index is out of range.
func (s *Set[E]) IsElementAtIndex(element E, index int) bool {
	if index < 0 || index >= len(s.buckets) {
		return false
	}
	return s.index(element, len(s.buckets)) == index && s.Contains(element)
}

// Clone returns an independent deep copy sharing only the hash function.
func (s *Set[E]) Clone() *Set[E] {
	c := &Set[E]{
		hash:    s.hash,
		buckets: make([]*entry[E], len(s.buckets)),
		size:    s.size,
	}
	for i, chain := range s.buckets {
		for e := chain; e != nil; e = e.next {
			c.buckets[i] = &entry[E]{element: e.element, next: c.buckets[i]}
		}
	}
	return c
}
