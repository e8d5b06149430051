package list

import (
	"iter"
)

// Iterator is a bidirectional cursor over list nodes.
//
// Two iterators are equal when they point to the same node, so Iterator
// values may be compared with ==. An iterator stays valid until the node it
// points to is erased. Reading or writing through End() or REnd() positions
// is not allowed: sentinels hold no element.
type Iterator[T any] struct {
	node *Node[T]
}

// Value returns element value at the iterator position.
func (it Iterator[T]) Value() T {
	return it.node.value
}

// Ptr returns mutable reference to element value at the iterator position.
func (it Iterator[T]) Ptr() *T {
	return &it.node.value
}

// Set overwrites element value at the iterator position.
func (it Iterator[T]) Set(v T) {
	it.node.value = v
}

// Next returns iterator to the following node.
// Next of End() is End().
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{node: it.node.next}
}

// Prev returns iterator to the preceding node.
// Prev of Begin() is the before-the-beginning position, equal to REnd().Base().
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{node: it.node.prev}
}

// Equal reports whether both iterators point to the same node.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.node == other.node
}

// IsNil reports whether the iterator points nowhere (zero Iterator).
func (it Iterator[T]) IsNil() bool {
	return it.node == nil
}

// ReverseIterator walks a list backwards: Next follows prev links.
type ReverseIterator[T any] struct {
	node *Node[T]
}

func (it ReverseIterator[T]) Value() T {
	return it.node.value
}

func (it ReverseIterator[T]) Ptr() *T {
	return &it.node.value
}

func (it ReverseIterator[T]) Set(v T) {
	it.node.value = v
}

func (it ReverseIterator[T]) Next() ReverseIterator[T] {
	return ReverseIterator[T]{node: it.node.prev}
}

func (it ReverseIterator[T]) Prev() ReverseIterator[T] {
	return ReverseIterator[T]{node: it.node.next}
}

func (it ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return it.node == other.node
}

// Base returns forward iterator pointing to the same node.
func (it ReverseIterator[T]) Base() Iterator[T] {
	return Iterator[T](it)
}

////////////////////////////////////////////////////////////////
// Positions
////////////////////////////////////////////////////////////////

// Begin returns iterator to the first element, End() for an empty list.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{node: l.head}
}

// Tail returns iterator to the last element, End() for an empty list.
func (l *List[T]) Tail() Iterator[T] {
	return Iterator[T]{node: l.tail}
}

// End returns the past-the-end position (the sentinel node).
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{node: l.sent}
}

// RBegin returns reverse iterator to the last element.
func (l *List[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{node: l.sent.prev}
}

// REnd returns the before-the-beginning position (the pre node).
func (l *List[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{node: l.pre}
}

////////////////////////////////////////////////////////////////
// Range functions
////////////////////////////////////////////////////////////////

// All yields element indexes and values from front to back.
// The list must not be modified during iteration.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head; n != l.sent; n = n.next {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}

// Values yields element values from front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != l.sent; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward yields element values from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.sent.prev; n != l.pre; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Slice copies element values into a new slice.
func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.size)
	for n := l.head; n != l.sent; n = n.next {
		s = append(s, n.value)
	}
	return s
}
