package list

import (
	"fmt"

	"github.com/graxinc/errutil"
	"github.com/tidwall/hashmap"
)

// Validate checks structural invariants of list l: sentinel self-loops,
// head/tail placement, prev/next symmetry, absence of cycles, and that the
// tracked length matches the number of reachable elements in both directions.
// It walks the whole list, use it in tests and debugging only.
func (l *List[T]) Validate() error {
	switch {
	case l.pre == nil || l.sent == nil:
		return corrupted(errutil.Tags{"reason": "missing sentinels"})
	case l.pre.prev != l.pre:
		return corrupted(errutil.Tags{"reason": "pre is not self-looped"})
	case l.sent.next != l.sent:
		return corrupted(errutil.Tags{"reason": "sent is not self-looped"})
	case l.size < 0:
		return corrupted(errutil.Tags{"reason": "negative length", "len": l.size})
	}

	if l.size == 0 {
		if l.head != l.sent || l.tail != l.sent || l.pre.next != l.sent || l.sent.prev != l.pre {
			return corrupted(errutil.Tags{"reason": "empty list is not bound to sentinels"})
		}
		return nil
	}
	if l.pre.next != l.head {
		return corrupted(errutil.Tags{"reason": "pre does not point to head"})
	}
	if l.sent.prev != l.tail {
		return corrupted(errutil.Tags{"reason": "sent does not point to tail"})
	}

	visited := hashmap.New[*Node[T], struct{}](l.size)
	count := 0
	for n := l.head; n != l.sent; n = n.next {
		if n == nil {
			return corrupted(errutil.Tags{"reason": "nil next link", "index": count})
		}
		if _, ok := visited.Set(n, struct{}{}); ok {
			return corrupted(errutil.Tags{"reason": "cycle", "index": count})
		}
		if n.next == nil || n.next.prev != n {
			return corrupted(errutil.Tags{"reason": "asymmetric link", "index": count})
		}
		if n == l.pre {
			return corrupted(errutil.Tags{"reason": "pre reached from head", "index": count})
		}
		count++
		if count > l.size {
			return corrupted(errutil.Tags{"reason": "more elements than tracked", "len": l.size})
		}
	}
	if count != l.size {
		return corrupted(errutil.Tags{"reason": "length mismatch", "len": l.size, "counted": count})
	}

	count = 0
	for n := l.tail; n != l.pre; n = n.prev {
		if _, ok := visited.Get(n); !ok {
			return corrupted(errutil.Tags{"reason": "backward walk left the chain", "index": count})
		}
		count++
		if count > l.size {
			return corrupted(errutil.Tags{"reason": "backward walk exceeds length", "len": l.size})
		}
	}
	if count != l.size {
		return corrupted(errutil.Tags{"reason": "backward length mismatch", "len": l.size, "counted": count})
	}
	return nil
}

func corrupted(tags errutil.Tags) error {
	return fmt.Errorf("%w: %w", ErrorListCorrupted, errutil.New(tags))
}
