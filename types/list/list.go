package list

import (
	"math"
)

// List represents a doubly linked list.
//
// A doubly linked list (DLL) is a special type of linked list in which each node contains
// a pointer to the previous node as well as the next node of the linked list.
//
// The list keeps two sentinel nodes that hold no element: pre, placed before the
// first element, and sent, placed after the last one. Both are self-looped at
// their outer side (pre.prev == pre, sent.next == sent), so insertion and
// erasure never deal with nil links. For an empty list head == tail == sent.
//
// List is not safe for concurrent use.
type List[T any] struct {
	alloc Allocator[T]       // node allocator, shared with the node chain on move
	clone func(T) (T, error) // optional copier used when values enter the list
	pre   *Node[T]           // node before the first element
	sent  *Node[T]           // node after the last element
	head  *Node[T]           // first element or sent
	tail  *Node[T]           // last element or sent
	size  int                // current list length excluding sentinels
}

// Option configures List instance on creation.
type Option[T any] func(l *List[T])

// WithAllocator makes the list take nodes (sentinels included) from given allocator.
func WithAllocator[T any](alloc Allocator[T]) Option[T] {
	return func(l *List[T]) {
		l.alloc = alloc
	}
}

// WithCloner makes the list store clone(v) instead of v whenever a value is
// copied into the list. A failing clone aborts the operation.
func WithCloner[T any](clone func(T) (T, error)) Option[T] {
	return func(l *List[T]) {
		l.clone = clone
	}
}

// New creates new empty List instance.
// Error is returned only when the allocator fails to provide sentinel nodes.
func New[T any](opts ...Option[T]) (*List[T], error) {
	l := new(List[T])
	for _, opt := range opts {
		opt(l)
	}
	if l.alloc == nil {
		l.alloc = NewHeapAllocator[T]()
	}
	pre, sent, err := l.allocSentinels()
	if err != nil {
		return nil, err
	}
	l.setSentinels(pre, sent)
	return l, nil
}

// NewList creates new empty List instance using heap allocation.
func NewList[T any]() *List[T] {
	l, err := New[T]()
	if err != nil {
		// heap allocator never fails
		panic(err)
	}
	return l
}

// Of creates new List instance holding given values in order.
func Of[T any](values ...T) *List[T] {
	l := NewList[T]()
	for _, v := range values {
		l.insert(l.sent, &Node[T]{value: v})
	}
	return l
}

// NewFromRange creates new List instance holding copies of elements in [first, last).
func NewFromRange[T any](first, last Iterator[T], opts ...Option[T]) (*List[T], error) {
	l, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err = l.appendRange(first, last); err != nil {
		l.Release()
		return nil, err
	}
	return l, nil
}

// NewSized creates new List instance holding count zero values.
func NewSized[T any](count int, opts ...Option[T]) (*List[T], error) {
	if count < 0 {
		return nil, ErrorNegativeCount
	}
	l, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err = l.ResizeDefault(count); err != nil {
		l.Release()
		return nil, err
	}
	return l, nil
}

////////////////////////////////////////////////////////////////
// Element access & capacity
////////////////////////////////////////////////////////////////

// Front returns the first element of list l.
// The list must not be empty.
func (l *List[T]) Front() T {
	return l.head.value
}

// Back returns the last element of list l.
// The list must not be empty.
func (l *List[T]) Back() T {
	return l.tail.value
}

// FrontPtr returns mutable reference to the first element of list l.
// The list must not be empty.
func (l *List[T]) FrontPtr() *T {
	return &l.head.value
}

// BackPtr returns mutable reference to the last element of list l.
// The list must not be empty.
func (l *List[T]) BackPtr() *T {
	return &l.tail.value
}

// Empty reports whether list l has no elements.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Len returns the number of elements of list l.
func (l *List[T]) Len() int {
	return l.size
}

// MaxSize returns the largest length a list can have.
func (l *List[T]) MaxSize() int {
	return math.MaxInt
}

// Allocator returns the allocator used by list l.
func (l *List[T]) Allocator() Allocator[T] {
	return l.alloc
}

////////////////////////////////////////////////////////////////
// Modifiers
////////////////////////////////////////////////////////////////

// Insert inserts a copy of v immediately before pos and returns its position.
// The list is not modified when node allocation or value cloning fails.
func (l *List[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	if pos.node == nil {
		return Iterator[T]{}, ErrorIteratorIsNil
	}
	if pos.node == l.pre {
		return Iterator[T]{}, ErrorPositionIsSentinel
	}
	node, err := l.getNodeValue(v)
	if err != nil {
		return Iterator[T]{}, err
	}
	return Iterator[T]{node: l.insert(pos.node, node)}, nil
}

// Erase removes the element at pos and returns position of the following element.
func (l *List[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	if pos.node == nil {
		return Iterator[T]{}, ErrorIteratorIsNil
	}
	if pos.node == l.sent || pos.node == l.pre {
		return pos, ErrorPositionIsSentinel
	}
	return Iterator[T]{node: l.erase(pos.node)}, nil
}

// PushBack inserts a copy of v at the back of list l.
func (l *List[T]) PushBack(v T) error {
	_, err := l.Insert(l.End(), v)
	return err
}

// PushFront inserts a copy of v at the front of list l.
func (l *List[T]) PushFront(v T) error {
	_, err := l.Insert(l.Begin(), v)
	return err
}

// PopBack removes the last element of list l and returns it.
func (l *List[T]) PopBack() (v T, err error) {
	if l.size == 0 {
		err = ErrorListIsEmpty
		return
	}
	v = l.tail.value
	l.erase(l.tail)
	return
}

// PopFront removes the first element of list l and returns it.
func (l *List[T]) PopFront() (v T, err error) {
	if l.size == 0 {
		err = ErrorListIsEmpty
		return
	}
	v = l.head.value
	l.erase(l.head)
	return
}

// Clear removes all elements of list l. Sentinels are kept, so the list stays usable.
func (l *List[T]) Clear() {
	l.eraseFrom(l.head)
}

// Release frees every node of list l including sentinels.
// Released list must not be used anymore, releasing it again is a noop.
func (l *List[T]) Release() {
	if l.pre == nil {
		return
	}
	l.Clear()
	l.freeNode(l.pre)
	l.freeNode(l.sent)
	l.pre, l.sent, l.head, l.tail = nil, nil, nil, nil
}

////////////////////////////////////////////////////////////////
// Internals
////////////////////////////////////////////////////////////////

// insert links node immediately before at, increments l.len, and returns node.
func (l *List[T]) insert(at, node *Node[T]) *Node[T] {
	node.next = at
	node.prev = at.prev
	node.prev.next = node
	at.prev = node
	if at == l.head {
		l.head = node
	}
	if at == l.sent {
		l.tail = node
	}
	l.size++
	return node
}

// erase unlinks and frees node, decrements l.len, and returns the following node.
func (l *List[T]) erase(node *Node[T]) *Node[T] {
	next := node.next
	node.prev.next = node.next
	node.next.prev = node.prev
	if node == l.head {
		l.head = next
	}
	if node == l.tail {
		if l.size == 1 {
			l.tail = l.head
		} else {
			l.tail = node.prev
		}
	}
	l.size--
	l.freeNode(node)
	return next
}

// eraseFrom erases node and every node after it.
func (l *List[T]) eraseFrom(node *Node[T]) {
	for node != l.sent {
		node = l.erase(node)
	}
}

// appendRange pushes copies of [first, last) to the back of l.
// Walking stops at a sentinel in case last is not reachable from first.
func (l *List[T]) appendRange(first, last Iterator[T]) error {
	for ; first != last && !first.node.isSentinel(); first = first.Next() {
		if err := l.PushBack(first.node.value); err != nil {
			return err
		}
	}
	return nil
}

func (l *List[T]) setSentinels(pre, sent *Node[T]) {
	pre.prev = pre
	pre.next = sent
	sent.prev = pre
	sent.next = sent
	l.pre, l.sent = pre, sent
	l.head, l.tail = sent, sent
	l.size = 0
}

// allocSentinels allocates both sentinels or none of them.
func (l *List[T]) allocSentinels() (pre, sent *Node[T], err error) {
	if pre, err = l.getNode(); err != nil {
		return nil, nil, err
	}
	if sent, err = l.getNode(); err != nil {
		l.freeNode(pre)
		return nil, nil, err
	}
	pre.reset()
	sent.reset()
	return pre, sent, nil
}

// getNode returns raw node storage.
func (l *List[T]) getNode() (*Node[T], error) {
	return l.alloc.Allocate()
}

// getNodeValue returns unlinked node holding a copy of v.
func (l *List[T]) getNodeValue(v T) (*Node[T], error) {
	node, err := l.alloc.Allocate()
	if err != nil {
		return nil, err
	}
	if v, err = l.copyValue(v); err != nil {
		l.freeNode(node)
		return nil, err
	}
	node.prev, node.next = nil, nil
	node.value = v
	return node, nil
}

// freeNode destroys node contents and gives it back to the allocator.
func (l *List[T]) freeNode(node *Node[T]) {
	node.reset()
	l.alloc.Deallocate(node)
}

func (l *List[T]) copyValue(v T) (T, error) {
	if l.clone == nil {
		return v, nil
	}
	return l.clone(v)
}
