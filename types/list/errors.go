package list

import (
	"errors"
)

var (
	ErrorListIsEmpty        = errors.New("list is empty")
	ErrorIteratorIsNil      = errors.New("list iterator is nil")
	ErrorPositionIsSentinel = errors.New("list position is a sentinel")
	ErrorNegativeCount      = errors.New("list element count is negative")
	ErrorListCorrupted      = errors.New("list is corrupted")

	ErrorAllocatorExhausted = errors.New("list allocator is exhausted")
	ErrorAllocatorMismatch  = errors.New("lists use different allocators")
)
