package dlist

import "github.com/metailurini/collections"

// Iterator walks a List in both directions and can splice values in and out
// at its cursor. A fresh iterator sits before the first element; the cursor
// becomes attached to an element by the first successful Next or Last call.
//
// Mutating the list through anything other than this iterator invalidates it.
type Iterator[T any] struct {
	list *List[T]
	curr *node[T]
}

var _ collections.Iterator[int] = (*Iterator[int])(nil)

// Iterator returns a new iterator positioned before the first element.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{list: l}
}

// HasNext reports whether calling Next will succeed.
func (it *Iterator[T]) HasNext() bool {
	if it.curr == nil {
		return it.list.head != nil
	}
	return it.curr.next != nil
}

// Next advances to the next element and returns it. It returns EOI when the
// iteration is exhausted.
func (it *Iterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, collections.EOI
	}
	if it.curr == nil {
		it.curr = it.list.head
	} else {
		it.curr = it.curr.next
	}
	return it.curr.value, nil
}

// HasPrev reports whether calling Prev will succeed.
func (it *Iterator[T]) HasPrev() bool {
	return it.curr != nil
}

// Prev returns the current element and moves the cursor one step backward.
// It returns EOI when no more elements remain.
func (it *Iterator[T]) Prev() (T, error) {
	if it.curr == nil {
		var zero T
		return zero, collections.EOI
	}
	value := it.curr.value
	it.curr = it.curr.prev
	return value, nil
}

// Last returns the final element and leaves the cursor on its predecessor,
// so the subsequent Prev call yields the element before it.
func (it *Iterator[T]) Last() (T, error) {
	if it.list.tail == nil {
		var zero T
		return zero, collections.EOI
	}
	value := it.list.tail.value
	it.curr = it.list.tail.prev
	return value, nil
}

// Value returns the element the cursor is attached to, or ErrOutOfRange if
// the cursor sits before the start of the list.
func (it *Iterator[T]) Value() (T, error) {
	if it.curr == nil {
		var zero T
		return zero, ErrOutOfRange
	}
	return it.curr.value, nil
}

// InsertBefore splices value in immediately before the cursor's element.
func (it *Iterator[T]) InsertBefore(value T) error {
	if it.curr == nil {
		return ErrOutOfRange
	}
	it.list.insertBefore(it.curr, value)
	return nil
}

// InsertAfter splices value in immediately after the cursor's element.
func (it *Iterator[T]) InsertAfter(value T) error {
	if it.curr == nil {
		return ErrOutOfRange
	}
	it.list.insertAfter(it.curr, value)
	return nil
}

// Remove unlinks the cursor's element. The cursor moves to the following
// element when moveForward is true, otherwise to the preceding one; either
// neighbor may not exist, leaving the cursor detached.
func (it *Iterator[T]) Remove(moveForward bool) error {
	if it.curr == nil {
		return ErrOutOfRange
	}
	target := it.curr
	if moveForward {
		it.curr = target.next
	} else {
		it.curr = target.prev
	}
	it.list.unlink(target)
	return nil
}
