package list

// Node is a list node holding one element value.
//
// Links are structural only: the list owns the whole chain, a node never owns
// its neighbours. Sentinel nodes are Node values too but never hold a valid
// element.
type Node[T any] struct {
	prev  *Node[T]
	next  *Node[T]
	value T
}

// Value returns the value stored in the node.
func (n *Node[T]) Value() T {
	return n.value
}

// isSentinel reports whether n is a pre or sent node; only those are self-looped.
func (n *Node[T]) isSentinel() bool {
	return n.next == n || n.prev == n
}

// reset destroys the node contents so it can be handed back to an allocator.
func (n *Node[T]) reset() {
	var zero T
	n.prev, n.next, n.value = nil, nil, zero
}
