package list

// Walker walks a list from front to back and keeps its place when the current
// element is erased from the list. Only the current element may be erased
// while walking.
type Walker[T any] struct {
	list    *List[T]
	prev    *Node[T]
	current *Node[T]
	next    *Node[T]
}

// Creates walker. Walker is not valid until Next() call.
func NewWalker[T any](list *List[T]) Walker[T] {
	return Walker[T]{
		list:    list,
		prev:    list.pre,
		current: nil,
		next:    nil,
	}
}

// Walker creates walker over list l.
func (l *List[T]) Walker() Walker[T] {
	return NewWalker(l)
}

func (w *Walker[T]) Current() Iterator[T] {
	return Iterator[T]{node: w.current}
}

func (w *Walker[T]) Next() bool {
	pre := w.list.pre
	// 1. start walking
	if w.prev == pre && w.current == nil {
		w.current = pre.next
	} else // 2. check first element is erased
	if w.prev == pre && w.current != pre.next {
		w.current = pre.next
	} else // 3. check middle element is erased
	if w.prev != pre && w.prev.next != w.current {
		w.current = w.prev.next
	} else { // 4. no changes in list
		w.prev = w.current
		w.current = w.next
	}

	if w.current == nil || w.current == w.list.sent {
		w.current = nil
		return false
	}
	w.next = w.current.next
	return true
}

func (w *Walker[T]) Valid() bool {
	return w.current != nil
}
