// Package skipset implements an ordered set as a skip list: a stack of
// sorted singly linked level chains in which membership tests and inserts
// run in expected logarithmic time.
//
// All nodes live in a single index-addressed arena, so a deep copy is a
// clone of the arena plus the per-level bounds; no pointer re-wiring or
// key re-matching pass is needed.
package skipset

import (
	"cmp"
	"slices"

	"github.com/metailurini/collections"
)

// Less reports whether a orders strictly before b.
type Less[E any] func(a, b E) bool

// maxHeight caps tower growth so a misbehaving Promoter cannot grow the
// level stack without bound on a single insertion.
const maxHeight = 32

// ref is an index into a Set's node arena. nilRef means "no node".
type ref = int32

const nilRef ref = -1

// node is one cell of one level chain. next points along the same level;
// below points at the node carrying the same key one level down, or nilRef
// on level 0.
type node[E comparable] struct {
	key   key[E]
	next  ref
	below ref
}

// Set is an ordered set of unique elements. The level stack only grows over
// the set's lifetime; level 0 holds every element, and an element occupying
// level L occupies every level beneath it.
//
// A Set is not safe for concurrent use.
type Set[E comparable] struct {
	less    Less[E]
	promote Promoter[E]
	arena   []node[E]
	heads   []ref // heads[l] is the negInf sentinel of level l, bottom first
	tails   []ref // tails[l] is the posInf sentinel of level l
	size    int
}

var _ collections.Set[int] = (*Set[int])(nil)

// Option configures a Set at construction time.
type Option[E comparable] func(*Set[E])

// WithPromoter substitutes the promotion policy, typically with a
// deterministic one for reproducible tests.
func WithPromoter[E comparable](p Promoter[E]) Option[E] {
	return func(s *Set[E]) { s.promote = p }
}

// New returns an empty Set ordered by less: a single level holding only the
// two sentinels. The default promotion policy flips a fair coin per level.
func New[E comparable](less Less[E], opts ...Option[E]) *Set[E] {
	s := &Set[E]{
		less:    less,
		promote: NewCoinFlip[E](),
		arena:   make([]node[E], 0, 8),
	}
	for _, opt := range opts {
		opt(s)
	}
	neg := s.alloc(key[E]{kind: negInf}, nilRef, nilRef)
	pos := s.alloc(key[E]{kind: posInf}, nilRef, nilRef)
	s.arena[neg].next = pos
	s.heads = []ref{neg}
	s.tails = []ref{pos}
	return s
}

// NewOrdered returns a Set for any naturally ordered element type.
func NewOrdered[E cmp.Ordered](opts ...Option[E]) *Set[E] {
	return New(cmp.Less[E], opts...)
}

func (s *Set[E]) alloc(k key[E], below, next ref) ref {
	s.arena = append(s.arena, node[E]{key: k, next: next, below: below})
	return ref(len(s.arena) - 1)
}

// search runs the ladder search from the topmost level down to minLevel:
// advance right while the next key is less than the target, otherwise
// descend. When the element is already in the set the returned ref is the
// matching node and found is true; otherwise found is false and the ref is
// the rightmost node whose key is less than the target on minLevel, i.e.
// the attachment point for an insertion there. The two outcomes are never
// conflated.
func (s *Set[E]) search(element E, minLevel int) (ref, bool) {
	target := key[E]{kind: normal, elem: element}
	x := s.heads[len(s.heads)-1]
	for level := len(s.heads) - 1; ; level-- {
		for {
			next := s.arena[x].next
			if next == nilRef {
				break
			}
			nk := s.arena[next].key
			if nk.equal(target) {
				return next, true
			}
			if !nk.less(target, s.less) {
				break
			}
			x = next
		}
		if level == minLevel {
			return x, false
		}
		x = s.arena[x].below
	}
}

// Add inserts element. Inserting a duplicate is a true no-op: no node is
// created, the count is unchanged and the promotion policy is never
// consulted. After the bottom-level insert the element's tower grows one
// level per positive promotion decision, stacking brand-new levels on top
// when the policy keeps promoting past the current topmost one.
func (s *Set[E]) Add(element E) {
	at, found := s.search(element, 0)
	if found {
		return
	}
	k := key[E]{kind: normal, elem: element}
	below := s.insertAfter(at, k, nilRef)
	s.size++

	for level := 1; level < maxHeight && s.promote.ShouldPromote(element); level++ {
		if level >= len(s.heads) {
			below = s.growLevel(k, below)
			continue
		}
		at, _ := s.search(element, level)
		below = s.insertAfter(at, k, below)
	}
}

func (s *Set[E]) insertAfter(pred ref, k key[E], below ref) ref {
	n := s.alloc(k, below, s.arena[pred].next)
	s.arena[pred].next = n
	return n
}

// growLevel stacks a fresh level on top: new sentinels bounding a single
// normal node whose below link points at the tower cell one level down.
func (s *Set[E]) growLevel(k key[E], below ref) ref {
	top := len(s.heads) - 1
	neg := s.alloc(key[E]{kind: negInf}, s.heads[top], nilRef)
	n := s.alloc(k, below, nilRef)
	pos := s.alloc(key[E]{kind: posInf}, s.tails[top], nilRef)
	s.arena[neg].next = n
	s.arena[n].next = pos
	s.heads = append(s.heads, neg)
	s.tails = append(s.tails, pos)
	return n
}

// Contains reports whether element is in the set.
func (s *Set[E]) Contains(element E) bool {
	_, found := s.search(element, 0)
	return found
}

// Len returns the number of elements. It runs in constant time.
func (s *Set[E]) Len() int { return s.size }

// LevelCount returns the number of levels currently stacked. It is at least
// 1 and never decreases over the set's lifetime.
func (s *Set[E]) LevelCount() int { return len(s.heads) }

// ElementsOnLevel returns the number of non-sentinel nodes on the given
// level, or 0 when the level does not exist.
func (s *Set[E]) ElementsOnLevel(level int) int {
	if level < 0 || level >= len(s.heads) {
		return 0
	}
	count := 0
	for x := s.arena[s.heads[level]].next; x != nilRef; x = s.arena[x].next {
		if s.arena[x].key.kind == normal {
			count++
		}
	}
	return count
}

// IsElementOnLevel reports whether element occupies the given level. It
// returns false, not an error, when the level does not exist.
func (s *Set[E]) IsElementOnLevel(element E, level int) bool {
	if level < 0 || level >= len(s.heads) {
		return false
	}
	target := key[E]{kind: normal, elem: element}
	for x := s.arena[s.heads[level]].next; x != nilRef; x = s.arena[x].next {
		if s.arena[x].key.equal(target) {
			return true
		}
	}
	return false
}

// Elements returns the elements in ascending order.
func (s *Set[E]) Elements() []E {
	out := make([]E, 0, s.size)
	for x := s.arena[s.heads[0]].next; x != nilRef; x = s.arena[x].next {
		if s.arena[x].key.kind == normal {
			out = append(out, s.arena[x].key.elem)
		}
	}
	return out
}

// Clone returns an independent deep copy preserving the exact tower shape of
// s: existing structure is copied, never re-randomized. The promotion policy
// is cloned as well, so the two sets share no randomness source and a later
// Add into either one cannot affect the other.
func (s *Set[E]) Clone() *Set[E] {
	return &Set[E]{
		less:    s.less,
		promote: s.promote.Clone(),
		arena:   slices.Clone(s.arena),
		heads:   slices.Clone(s.heads),
		tails:   slices.Clone(s.tails),
		size:    s.size,
	}
}
