package list

import (
	"sync"
)

// Allocator provides storage for list nodes.
//
// Allocate returns node storage whose value is unspecified: the list always
// writes the value before linking the node, except for ResizeUninitialized.
// Deallocate receives nodes already reset by the list.
// Implementations must be comparable (use pointer receivers), lists compare
// allocators before exchanging nodes.
type Allocator[T any] interface {
	Allocate() (*Node[T], error)
	Deallocate(node *Node[T])
}

////////////////////////////////////////////////////////////////
// Heap
////////////////////////////////////////////////////////////////

// HeapAllocator allocates every node on the heap and leaves releasing to the GC.
type HeapAllocator[T any] struct{}

// NewHeapAllocator creates new HeapAllocator instance.
func NewHeapAllocator[T any]() *HeapAllocator[T] {
	return &HeapAllocator[T]{}
}

func (a *HeapAllocator[T]) Allocate() (*Node[T], error) {
	return new(Node[T]), nil
}

func (a *HeapAllocator[T]) Deallocate(*Node[T]) {}

////////////////////////////////////////////////////////////////
// Pool
////////////////////////////////////////////////////////////////

// PoolAllocator recycles nodes using sync.Pool internally.
// It may be shared by several lists.
type PoolAllocator[T any] struct {
	nodes sync.Pool
}

// NewPoolAllocator creates new PoolAllocator instance.
func NewPoolAllocator[T any]() *PoolAllocator[T] {
	a := new(PoolAllocator[T])
	a.nodes = sync.Pool{New: func() any {
		return new(Node[T])
	}}
	return a
}

// Allocate gets node from the pool.
func (a *PoolAllocator[T]) Allocate() (*Node[T], error) {
	return a.nodes.Get().(*Node[T]), nil
}

// Deallocate puts node back to the pool.
func (a *PoolAllocator[T]) Deallocate(node *Node[T]) {
	a.nodes.Put(node)
}

////////////////////////////////////////////////////////////////
// Bounded
////////////////////////////////////////////////////////////////

// BoundedAllocator caps the number of live nodes produced by the wrapped
// allocator. Sentinel nodes count as live nodes. Not safe for concurrent use.
type BoundedAllocator[T any] struct {
	base  Allocator[T]
	limit int
	live  int
}

// NewBoundedAllocator creates new BoundedAllocator instance.
// Nil base means heap allocation.
func NewBoundedAllocator[T any](base Allocator[T], limit int) *BoundedAllocator[T] {
	if base == nil {
		base = NewHeapAllocator[T]()
	}
	return &BoundedAllocator[T]{
		base:  base,
		limit: limit,
	}
}

// Allocate returns ErrorAllocatorExhausted when the limit is reached.
func (a *BoundedAllocator[T]) Allocate() (*Node[T], error) {
	if a.live >= a.limit {
		return nil, ErrorAllocatorExhausted
	}
	node, err := a.base.Allocate()
	if err != nil {
		return nil, err
	}
	a.live++
	return node, nil
}

func (a *BoundedAllocator[T]) Deallocate(node *Node[T]) {
	a.live--
	a.base.Deallocate(node)
}

// Live returns the number of nodes allocated and not yet deallocated.
func (a *BoundedAllocator[T]) Live() int {
	return a.live
}

// Limit returns the maximal number of live nodes.
func (a *BoundedAllocator[T]) Limit() int {
	return a.limit
}
