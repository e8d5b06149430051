package list

import (
	"gopkg.in/typ.v4"
)

// Sort is SortFunc ordering elements ascending.
func Sort[T typ.Ordered](l *List[T]) {
	l.SortFunc(typ.Compare[T])
}

// SortFunc orders elements of list l by cmp, which is expected to return
// 0 if a == b, a negative number if a < b and a positive number if a > b.
//
// The sort is stable and relinks nodes instead of moving values, so iterators
// follow their elements. It is a natural merge sort: already ordered runs are
// merged pairwise, which makes sorted input O(n).
func (l *List[T]) SortFunc(cmp func(a, b T) int) {
	if l.size < 2 {
		return
	}

	// Detach the chain from sentinels, only next links are used while sorting.
	l.tail.next = nil
	head := sortChain(l.head, cmp)

	// Restore prev links and sentinels.
	prev := l.pre
	for n := head; n != nil; n = n.next {
		n.prev = prev
		prev = n
	}
	l.pre.next = head
	prev.next = l.sent
	l.sent.prev = prev
	l.head, l.tail = head, prev
}

// sortChain sorts nil terminated chain linked by next pointers.
func sortChain[T any](head *Node[T], cmp func(a, b T) int) *Node[T] {
	for {
		var (
			result *Node[T]
			last   *Node[T]
			merges int
		)
		for head != nil {
			a, aTail, rest := cutRun(head, cmp)
			var b, bTail *Node[T]
			if rest != nil {
				b, bTail, rest = cutRun(rest, cmp)
			}
			first, tail := mergeRuns(a, aTail, b, bTail, cmp)
			if last == nil {
				result = first
			} else {
				last.next = first
			}
			last = tail
			head = rest
			merges++
		}
		if merges <= 1 {
			return result
		}
		head = result
	}
}

// cutRun detaches the longest ordered prefix of chain and returns it with its
// last node and the remaining chain.
func cutRun[T any](head *Node[T], cmp func(a, b T) int) (run, tail, rest *Node[T]) {
	tail = head
	for tail.next != nil && cmp(tail.value, tail.next.value) <= 0 {
		tail = tail.next
	}
	rest = tail.next
	tail.next = nil
	return head, tail, rest
}

// mergeRuns merges two ordered runs, taking from a on ties.
func mergeRuns[T any](a, aTail, b, bTail *Node[T], cmp func(a, b T) int) (head, tail *Node[T]) {
	if b == nil {
		return a, aTail
	}
	var root Node[T]
	last := &root
	for a != nil && b != nil {
		if cmp(a.value, b.value) <= 0 {
			last.next = a
			a = a.next
		} else {
			last.next = b
			b = b.next
		}
		last = last.next
	}
	if a != nil {
		last.next = a
		tail = aTail
	} else {
		last.next = b
		tail = bTail
	}
	return root.next, tail
}
