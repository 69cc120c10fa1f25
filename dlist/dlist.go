// Package dlist implements a doubly linked list with bidirectional,
// splicing iterators.
package dlist

import "errors"

var (
	// ErrEmpty is returned by operations that need at least one element.
	ErrEmpty = errors.New("dlist: empty list")
	// ErrOutOfRange is returned when an iterator is asked to act while it
	// is not positioned on an element.
	ErrOutOfRange = errors.New("dlist: iterator out of range")
)

type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// List is a doubly linked list. Not safe for concurrent use.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New returns an empty list.
func New[T any]() *List[T] { return &List[T]{} }

// PushFront adds value at the start of the list.
func (l *List[T]) PushFront(value T) {
	n := &node[T]{value: value, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++
}

// PushBack adds value at the end of the list.
func (l *List[T]) PushBack(value T) {
	n := &node[T]{value: value, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
}

// PopFront removes the first value. It returns ErrEmpty on an empty list.
func (l *List[T]) PopFront() error {
	if l.head == nil {
		return ErrEmpty
	}
	l.unlink(l.head)
	return nil
}

// PopBack removes the last value. It returns ErrEmpty on an empty list.
func (l *List[T]) PopBack() error {
	if l.tail == nil {
		return ErrEmpty
	}
	l.unlink(l.tail)
	return nil
}

// Front returns the first value, or ErrEmpty on an empty list.
func (l *List[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	return l.head.value, nil
}

// Back returns the last value, or ErrEmpty on an empty list.
func (l *List[T]) Back() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmpty
	}
	return l.tail.value, nil
}

// IsEmpty reports whether the list holds no values.
func (l *List[T]) IsEmpty() bool { return l.size == 0 }

// Len returns the number of values.
func (l *List[T]) Len() int { return l.size }

// Clone returns an independent copy holding the same values in order.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	for n := l.head; n != nil; n = n.next {
		c.PushBack(n.value)
	}
	return c
}

func (l *List[T]) unlink(n *node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	l.size--
}

func (l *List[T]) insertBefore(n *node[T], value T) *node[T] {
	fresh := &node[T]{value: value, prev: n.prev, next: n}
	if n.prev != nil {
		n.prev.next = fresh
	} else {
		l.head = fresh
	}
	n.prev = fresh
	l.size++
	return fresh
}

func (l *List[T]) insertAfter(n *node[T], value T) *node[T] {
	fresh := &node[T]{value: value, prev: n, next: n.next}
	if n.next != nil {
		n.next.prev = fresh
	} else {
		l.tail = fresh
	}
	n.next = fresh
	l.size++
	return fresh
}
