package list

import (
	"gopkg.in/typ.v4"
)

////////////////////////////////////////////////////////////////
// Copy & move
////////////////////////////////////////////////////////////////

// Clone creates a deep copy of list l using the same allocator and cloner.
func (l *List[T]) Clone() (*List[T], error) {
	return NewFromRange(l.Begin(), l.End(), WithAllocator(l.alloc), WithCloner(l.clone))
}

// CopyFrom replaces contents of list l with copies of elements of other.
// Existing nodes of l are reused. Copying a list into itself is a noop.
func (l *List[T]) CopyFrom(other *List[T]) error {
	if l == other {
		return nil
	}
	return l.Assign(other.Begin(), other.End())
}

// Move transfers the node chain, sentinels and allocator of l to a new list in O(1).
// List l is left empty with fresh sentinels. On allocation failure l is not modified.
func (l *List[T]) Move() (*List[T], error) {
	pre, sent, err := l.allocSentinels()
	if err != nil {
		return nil, err
	}
	moved := new(List[T])
	*moved = *l
	l.setSentinels(pre, sent)
	return moved, nil
}

// MoveFrom replaces contents of list l with the node chain of other in O(1)
// after releasing elements of l. Other receives the emptied sentinels of l
// together with its allocator, so it stays a valid empty list.
func (l *List[T]) MoveFrom(other *List[T]) {
	if l == other {
		return
	}
	l.Clear()
	l.Swap(other)
}

// Swap exchanges contents of lists l and other in O(1). No node is touched.
func (l *List[T]) Swap(other *List[T]) {
	*l, *other = *other, *l
}

////////////////////////////////////////////////////////////////
// Assign & resize
////////////////////////////////////////////////////////////////

// Assign replaces contents of list l with copies of elements in [first, last).
// Existing elements are overwritten in place while both ranges have elements,
// then the rest of the range is appended or the rest of the list is erased.
// Elements overwritten before a failure keep their new values.
func (l *List[T]) Assign(first, last Iterator[T]) error {
	cur := l.head
	for ; cur != l.sent && first != last && !first.node.isSentinel(); cur, first = cur.next, first.Next() {
		v, err := l.copyValue(first.node.value)
		if err != nil {
			return err
		}
		cur.value = v
	}
	if cur == l.sent {
		return l.appendRange(first, last)
	}
	l.eraseFrom(cur)
	return nil
}

// AssignValues replaces contents of list l with given values, reusing existing nodes.
func (l *List[T]) AssignValues(values ...T) error {
	cur := l.head
	for ; cur != l.sent && len(values) > 0; cur, values = cur.next, values[1:] {
		v, err := l.copyValue(values[0])
		if err != nil {
			return err
		}
		cur.value = v
	}
	if cur != l.sent {
		l.eraseFrom(cur)
		return nil
	}
	for _, v := range values {
		if err := l.PushBack(v); err != nil {
			return err
		}
	}
	return nil
}

// Resize appends copies of v or pops elements from the back until list l has count elements.
// Elements appended before a failure are kept.
func (l *List[T]) Resize(count int, v T) error {
	if count < 0 {
		return ErrorNegativeCount
	}
	for l.size < count {
		if err := l.PushBack(v); err != nil {
			return err
		}
	}
	for l.size > count {
		l.erase(l.tail)
	}
	return nil
}

// ResizeDefault is Resize with zero value.
func (l *List[T]) ResizeDefault(count int) error {
	var zero T
	return l.Resize(count, zero)
}

// ResizeUninitialized is Resize that links raw allocator nodes without writing values.
// New elements hold whatever the allocator left in the node and must be set
// by the caller before being read.
func (l *List[T]) ResizeUninitialized(count int) error {
	if count < 0 {
		return ErrorNegativeCount
	}
	for l.size < count {
		node, err := l.getNode()
		if err != nil {
			return err
		}
		l.insert(l.sent, node)
	}
	for l.size > count {
		l.erase(l.tail)
	}
	return nil
}

////////////////////////////////////////////////////////////////
// Operations
////////////////////////////////////////////////////////////////

// Merge is MergeFunc ordering elements ascending.
func Merge[T typ.Ordered](l, other *List[T]) error {
	return l.MergeFunc(other, typ.Compare[T])
}

// MergeFunc moves all elements of other to list l and orders the result by cmp.
//
// The node chain of other is spliced after the last element of l in O(1), then
// the stable ordering pass of SortFunc runs over the combined chain. When both
// lists are already sorted by cmp, the pass is a single linear interleave; any
// input order is accepted. Equal elements of l stay before those of other.
// Other is left empty with freshly allocated sentinels. Lists must share
// the allocator. On failure neither list is modified.
func (l *List[T]) MergeFunc(other *List[T], cmp func(a, b T) int) error {
	if l == other {
		return nil
	}
	if !sameAllocator(l.alloc, other.alloc) {
		return ErrorAllocatorMismatch
	}
	if other.size > 0 {
		pre, sent, err := other.allocSentinels()
		if err != nil {
			return err
		}

		// splice
		last := l.sent.prev
		last.next = other.head
		other.head.prev = last
		other.tail.next = l.sent
		l.sent.prev = other.tail
		if l.size == 0 {
			l.head = other.head
		}
		l.tail = other.tail
		l.size += other.size

		// orphaned sentinels
		other.freeNode(other.pre)
		other.freeNode(other.sent)
		other.setSentinels(pre, sent)
	}
	l.SortFunc(cmp)
	return nil
}

// Reverse reverses the order of elements in place by relinking nodes.
// Iterators keep pointing to the same elements, now at mirrored positions.
func (l *List[T]) Reverse() {
	if l.size < 2 {
		return
	}
	for n := l.head; n != l.sent; {
		next := n.next
		n.prev, n.next = n.next, n.prev
		n = next
	}
	l.head, l.tail = l.tail, l.head
	l.head.prev = l.pre
	l.tail.next = l.sent
	l.pre.next = l.head
	l.sent.prev = l.tail
}

// Equal reports whether lists have the same length and equal elements in order.
func Equal[T comparable](a, b *List[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

// EqualFunc reports whether lists have the same length and eq holds for elements in order.
func (l *List[T]) EqualFunc(other *List[T], eq func(a, b T) bool) bool {
	if l.size != other.size {
		return false
	}
	for n, m := l.head, other.head; n != l.sent; n, m = n.next, m.next {
		if !eq(n.value, m.value) {
			return false
		}
	}
	return true
}

// sameAllocator reports whether nodes of one allocator may be released to the other.
// Heap nodes are interchangeable.
func sameAllocator[T any](a, b Allocator[T]) bool {
	if _, ok := a.(*HeapAllocator[T]); ok {
		_, ok = b.(*HeapAllocator[T])
		return ok
	}
	return a == b
}
